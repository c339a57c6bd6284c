// Package normalize builds canonical entities from raw snapshot JSON. For
// each root kind a fixed, ordered rule pipeline runs over the raw key-value
// structure (identifier replication, shape coercion, fan-out, relation
// wrapping, denormalized flattening), then the structure is decoded into its
// typed form, defaults applied, and cross-field invariants checked. Every
// rule is pure and idempotent, so normalization can be reapplied to already
// normalized data, which is exactly what the hydration path does.
package normalize

import (
	"fmt"

	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/schema"
	"github.com/segmentio/encoding/json"
)

// SchemaViolation marks a single record as unusable: a required field is
// missing, a value cannot be coerced to its declared type, or a cross-field
// invariant does not hold. Fatal for the record, never for a batch.
type SchemaViolation struct {
	Kind string
	ID   string
	Rule string
	Msg  string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: kind=%s id=%q rule=%s: %s", e.Kind, e.ID, e.Rule, e.Msg)
}

// UnknownKindError signals a caller bug: a kind that is not in the registry.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown kind: %s", e.Kind)
}

func violation(kind, id, rule, format string, args ...any) error {
	return &SchemaViolation{Kind: kind, ID: id, Rule: rule, Msg: fmt.Sprintf(format, args...)}
}

// Normalize turns one raw record of a known kind into its canonical form.
// The input map is never mutated.
func Normalize(kind string, raw map[string]any) (entity.Canonical, error) {
	if _, ok := schema.Lookup(kind); !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	switch kind {
	case schema.KindWorks:
		return Work(raw)
	case schema.KindAuthors:
		return Author(raw)
	case schema.KindSources:
		return Source(raw)
	case schema.KindInstitutions:
		return Institution(raw)
	case schema.KindPublishers:
		return Publisher(raw)
	case schema.KindFunders:
		return Funder(raw)
	case schema.KindTopics:
		return Topic(raw)
	case schema.KindConcepts:
		return Concept(raw)
	}
	return nil, &UnknownKindError{Kind: kind}
}

// requireID extracts the mandatory root identifier.
func requireID(kind string, m map[string]any) (string, error) {
	s, ok := m["id"].(string)
	if !ok || s == "" {
		return "", violation(kind, "", "id", "missing or empty required field id")
	}
	return s, nil
}

// decode runs the normalized raw structure through JSON into the typed form.
// Literal values that do not fit their declared type surface here.
func decode(kind, id string, m map[string]any, dst any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return violation(kind, id, "encode", "%v", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return violation(kind, id, "coerce", "%v", err)
	}
	return nil
}

// fixDate normalizes an optional date field in place with the given format
// function, absent values pass through.
func fixDate(kind, id, field string, p **string, f func(string) (string, error)) error {
	if *p == nil {
		return nil
	}
	s, err := f(**p)
	if err != nil {
		return violation(kind, id, field, "bad timestamp %q: %v", **p, err)
	}
	*p = &s
	return nil
}
