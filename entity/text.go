package entity

import (
	"strings"
	"unicode"
)

// Text cleanup for free text fields before they are embedded in encoded
// array literals and SQL statements.

type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

type Normalizer interface {
	Normalize(string) string
}

// StripQuotesNormalizer removes double quote characters, which have no escape
// in the encoded array literal format.
type StripQuotesNormalizer struct{}

func (s *StripQuotesNormalizer) Normalize(v string) string {
	return strings.ReplaceAll(v, `"`, "")
}

// CollapseWSNormalizer turns any run of whitespace into a single space and
// trims the ends.
type CollapseWSNormalizer struct{}

func (s *CollapseWSNormalizer) Normalize(v string) string {
	var b strings.Builder
	var inWS bool
	for _, c := range v {
		if unicode.IsSpace(c) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteRune(' ')
		}
		inWS = false
		b.WriteRune(c)
	}
	return b.String()
}

// NameCleanup is the pipeline applied to alternative display names.
var NameCleanup = &Pipeline{
	Normalizer: []Normalizer{
		&StripQuotesNormalizer{},
		&CollapseWSNormalizer{},
	},
}
