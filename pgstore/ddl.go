package pgstore

import (
	"fmt"
	"strings"

	"github.com/miku/oatables/schema"
)

// CreateDDL renders CREATE TABLE statements for all tables of a kind.
func CreateDDL(k *schema.Kind) []string {
	stmts := []string{createTable(k.Root)}
	for _, sub := range k.Subs {
		stmts = append(stmts, createTable(sub.Table))
	}
	return stmts
}

// DropDDL renders DROP TABLE statements, subentity tables first.
func DropDDL(k *schema.Kind) []string {
	names := k.TableNames()
	var stmts []string
	for i := len(names) - 1; i >= 0; i-- {
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s", names[i]))
	}
	return stmts
}

func createTable(t schema.Table) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = fmt.Sprintf("%s %s", c, columnType(c))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n)", t.Name, strings.Join(cols, ",\n    "))
}

// columnType maps a column name to its storage type. Everything not
// recognizably numeric or boolean travels as text, including the JSON blob
// columns.
func columnType(name string) string {
	switch name {
	case "year", "publication_year", "hierarchy_level", "level",
		"works_count", "cited_by_count", "oa_works_count", "grants_count",
		"apc_usd", "mag":
		return "BIGINT"
	case "score", "latitude", "longitude":
		return "DOUBLE PRECISION"
	}
	if strings.HasPrefix(name, "is_") || name == "any_repository_has_fulltext" {
		return "BOOLEAN"
	}
	return "TEXT"
}
