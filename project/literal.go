package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miku/oatables/schema"
	"github.com/segmentio/encoding/json"
)

// Literal renders a single row value as a SQL literal: nil becomes NULL,
// booleans TRUE and FALSE, numbers stay bare, strings are quoted with single
// quotes doubled, and any structured value is embedded as a JSON document
// inside a string literal.
func Literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return quote(t)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			// only unrepresentable values end up here, which the typed
			// entities never produce
			return quote(fmt.Sprintf("%v", v))
		}
		return quote(string(b))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Arg converts a row value into a driver friendly argument for parameterized
// statements: structured values travel as their JSON text, scalars as is.
func Arg(v any) any {
	switch v.(type) {
	case nil, bool, int, int64, float64, string:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// Args converts a whole row for a parameterized statement.
func Args(row Row) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = Arg(v)
	}
	return out
}

// InsertStatement renders a multi row INSERT with inline literals, the form
// emitted by the streaming converter.
func InsertStatement(t schema.Table, rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(t.Name)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(t.Columns, ", "))
	sb.WriteString(") VALUES ")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Literal(v))
		}
		sb.WriteString(")")
	}
	sb.WriteString(";")
	return sb.String()
}

// ParamStatement renders a single row INSERT with positional placeholders
// for the postgres wire protocol.
func ParamStatement(t schema.Table) string {
	ph := make([]string, len(t.Columns))
	for i := range ph {
		ph[i] = "$" + strconv.Itoa(i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(t.Columns, ", "), strings.Join(ph, ", "))
}

// Statements renders the full relational image of one record as inline
// INSERT statements, tables in declared order.
func Statements(r *Rows) []string {
	var out []string
	if rows := r.Tables[r.Kind.Root.Name]; len(rows) > 0 {
		out = append(out, InsertStatement(r.Kind.Root, rows))
	}
	for _, sub := range r.Kind.Subs {
		if rows := r.Tables[sub.Table.Name]; len(rows) > 0 {
			out = append(out, InsertStatement(sub.Table, rows))
		}
	}
	return out
}
