package entity

import (
	"strings"

	"github.com/araddon/dateparse"
)

// Timestamps in the snapshot come in two families: updated dates are stored
// with no zone component, truncated to whole seconds; created and publication
// dates keep an explicit zone when the input carries one. Which family a
// field belongs to is fixed per field.

const naiveLayout = "2006-01-02T15:04:05"

// NoTZ parses any reasonable timestamp string and formats it zone-naive with
// whole second precision. Idempotent on already normalized values.
func NoTZ(s string) (string, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", err
	}
	return t.Format(naiveLayout), nil
}

// ISO8601 parses any reasonable timestamp string and formats it ISO-8601. A
// zone offset is kept only when the input spelled one out; a bare date
// expands to midnight. Idempotent on already normalized values.
func ISO8601(s string) (string, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", err
	}
	if hasZone(s) {
		return t.Format("2006-01-02T15:04:05-07:00"), nil
	}
	return t.Format(naiveLayout), nil
}

// hasZone reports whether a timestamp string spells out an explicit zone. A
// minus sign counts only after the time-of-day part, date separators do not.
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return true
	}
	i := strings.IndexAny(s, "Tt ")
	if i == -1 {
		return false
	}
	rest := s[i+1:]
	return strings.ContainsRune(rest, '+') || strings.ContainsRune(rest, '-')
}
