package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryConsistency(t *testing.T) {
	for _, name := range Kinds {
		k, ok := Lookup(name)
		require.True(t, ok, "kind %s must be registered", name)
		assert.Equal(t, name, k.Name)
		require.NotEmpty(t, k.Root.Columns, "%s root needs columns", name)
		assert.Equal(t, "id", k.Root.Columns[0], "%s root starts with id", name)
		assert.True(t, strings.HasPrefix(k.Root.Name, Namespace+"."), "%s root table in namespace", name)
		fk := strings.TrimSuffix(name, "s") + "_id"
		for _, sub := range k.Subs {
			assert.True(t, strings.HasPrefix(sub.Table.Name, Namespace+"."), "%s.%s in namespace", name, sub.Name)
			assert.Equal(t, fk, sub.Table.FK(), "%s.%s foreign key column", name, sub.Name)
			got, ok := k.Sub(sub.Name)
			require.True(t, ok)
			assert.Equal(t, sub.Table.Name, got.Table.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("venues")
	assert.False(t, ok)
}

func TestTableNames(t *testing.T) {
	k, ok := Lookup(KindAuthors)
	require.True(t, ok)
	assert.Equal(t, []string{
		"openalex.authors",
		"openalex.authors_counts_by_year",
		"openalex.authors_ids",
	}, k.TableNames())
}

func TestCountsByYearForeignKeys(t *testing.T) {
	// every counts_by_year table names its owner, not a copy-pasted column
	for _, name := range Kinds {
		k, _ := Lookup(name)
		sub, ok := k.Sub("counts_by_year")
		if !ok {
			continue
		}
		assert.True(t, sub.Many, "%s counts_by_year is one to many", name)
		assert.Equal(t, strings.TrimSuffix(name, "s")+"_id", sub.Table.FK())
	}
}

func TestTopicsHaveNoSubtables(t *testing.T) {
	k, ok := Lookup(KindTopics)
	require.True(t, ok)
	assert.Empty(t, k.Subs)
	assert.Contains(t, k.Root.Columns, "subfield_id")
	assert.Contains(t, k.Root.Columns, "domain_display_name")
}

func TestWorkLocationTablesShareColumns(t *testing.T) {
	k, _ := Lookup(KindWorks)
	primary, _ := k.Sub("primary_location")
	best, _ := k.Sub("best_oa_location")
	all, _ := k.Sub("locations")
	assert.Equal(t, primary.Table.Columns, best.Table.Columns)
	assert.Equal(t, primary.Table.Columns, all.Table.Columns)
	assert.False(t, primary.Many)
	assert.False(t, best.Many)
	assert.True(t, all.Many)
}
