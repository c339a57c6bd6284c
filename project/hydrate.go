package project

import (
	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/normalize"
	"github.com/miku/oatables/schema"
)

// Hydrate rebuilds a canonical entity from its relational image. Rows are
// zipped against the registry's column order back into a raw record, which
// then passes through the same normalization pipeline as snapshot input, so
// hydration shares all coercion rules and invariant checks with ingest.
func Hydrate(kind string, root Row, subs map[string][]Row) (entity.Canonical, error) {
	k, ok := schema.Lookup(kind)
	if !ok {
		return nil, &normalize.UnknownKindError{Kind: kind}
	}
	raw := zip(k.Root.Columns, root)
	for _, sub := range k.Subs {
		rows := subs[sub.Table.Name]
		if len(rows) == 0 {
			continue
		}
		if sub.Many {
			l := make([]any, 0, len(rows))
			for _, row := range rows {
				l = append(l, zip(sub.Table.Columns, row))
			}
			raw[sub.Name] = l
		} else {
			raw[sub.Name] = zip(sub.Table.Columns, rows[0])
		}
	}
	return normalize.Normalize(kind, raw)
}

// Rehydrate round trips an already projected image, mostly a consistency
// check.
func Rehydrate(r *Rows) (entity.Canonical, error) {
	return Hydrate(r.Kind.Name, r.Root(), r.Tables)
}

// zip pairs column names with row values, dropping storage nulls so absent
// stays absent.
func zip(columns []string, row Row) map[string]any {
	m := make(map[string]any, len(columns))
	for i, col := range columns {
		if i >= len(row) || row[i] == nil {
			continue
		}
		m[col] = row[i]
	}
	return m
}
