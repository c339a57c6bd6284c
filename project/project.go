// Package project flattens canonical entities into relational rows and turns
// rows back into canonical entities. A projected row is a positional value
// list aligned with the column order the schema registry declares for its
// table, nothing more. The inverse direction, hydration, rebuilds a raw
// record from rows and funnels it through normalization again, so a
// hydrated entity satisfies the same invariants as one decoded from a
// snapshot line.
package project

import (
	"fmt"

	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/schema"
)

// Row is one table row, values aligned with the table's column order.
type Row []any

// Rows is the complete relational image of one record: the root row plus
// all subentity rows, keyed by table name.
type Rows struct {
	Kind   *schema.Kind
	Tables map[string][]Row
}

// Root returns the single root table row.
func (r *Rows) Root() Row {
	return r.Tables[r.Kind.Root.Name][0]
}

// Count returns the total number of rows across all tables.
func (r *Rows) Count() int {
	var n int
	for _, rows := range r.Tables {
		n += len(rows)
	}
	return n
}

// Project emits the full relational image of a canonical entity. Absent
// subentities emit no row at all.
func Project(c entity.Canonical) (*Rows, error) {
	k, ok := schema.Lookup(c.Kind())
	if !ok {
		return nil, fmt.Errorf("project: no layout for kind %s", c.Kind())
	}
	out := &Rows{Kind: k, Tables: make(map[string][]Row)}
	root, err := rowFor(c, k.Root)
	if err != nil {
		return nil, fmt.Errorf("project: %s %s: %w", k.Name, c.RecordID(), err)
	}
	out.Tables[k.Root.Name] = []Row{root}
	for _, sub := range k.Subs {
		sr := c.Sub(sub.Name)
		if sr.Absent() {
			continue
		}
		var rows []Row
		for _, e := range instances(sr) {
			row, err := rowFor(e, sub.Table)
			if err != nil {
				return nil, fmt.Errorf("project: %s %s: %s: %w", k.Name, c.RecordID(), sub.Name, err)
			}
			rows = append(rows, row)
		}
		if len(rows) > 0 {
			out.Tables[sub.Table.Name] = rows
		}
	}
	return out, nil
}

func instances(sr entity.Subrecord) []entity.Subentity {
	if sr.One != nil {
		return []entity.Subentity{sr.One}
	}
	return sr.Many
}

// rowFor reads every declared column off the typed accessor. A column the
// accessor does not know means registry and entity definitions diverged.
func rowFor(f entity.Subentity, t schema.Table) (Row, error) {
	row := make(Row, len(t.Columns))
	for i, col := range t.Columns {
		v, ok := f.Field(col)
		if !ok {
			return nil, fmt.Errorf("table %s: no accessor for column %s", t.Name, col)
		}
		row[i] = v
	}
	return row, nil
}
