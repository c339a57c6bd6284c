package project

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/normalize"
	"github.com/miku/oatables/schema"
	"github.com/segmentio/encoding/json"
)

func mustWork(t *testing.T, s string) *entity.Work {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatal(err)
	}
	w, err := normalize.Work(m)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{true, "TRUE"},
		{false, "FALSE"},
		{int64(42), "42"},
		{3.14, "3.14"},
		{"plain", "'plain'"},
		{"it's", "'it''s'"},
		{[]string{"a", "b"}, `'["a","b"]'`},
		{[]string{"o'brien"}, `'["o''brien"]'`},
		{map[string]any{"id": "x"}, `'{"id":"x"}'`},
	}
	for _, c := range cases {
		if got := Literal(c.in); got != c.want {
			t.Errorf("Literal(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestArg(t *testing.T) {
	if got := Arg("s"); got != "s" {
		t.Errorf("got %v", got)
	}
	if got := Arg(nil); got != nil {
		t.Errorf("got %v", got)
	}
	if got := Arg([]string{"a"}); got != `["a"]` {
		t.Errorf("got %v", got)
	}
}

func TestProjectWork(t *testing.T) {
	w := mustWork(t, `{
		"id": "https://openalex.org/W1",
		"display_name": "On things",
		"title": "On things",
		"publication_year": 2017,
		"is_retracted": false,
		"authorships": [
			{"author_position": "first",
			 "author": {"id": "https://openalex.org/A1"},
			 "institutions": [{"id": "https://openalex.org/I1"}, {"id": "https://openalex.org/I2"}]}
		],
		"biblio": {"volume": "12", "issue": "3"},
		"referenced_works": ["https://openalex.org/W2", "https://openalex.org/W3"],
		"abstract_inverted_index": {"On": [0], "things": [1]}
	}`)
	rows, err := Project(w)
	if err != nil {
		t.Fatal(err)
	}
	root := rows.Root()
	if got := root[0]; got != "https://openalex.org/W1" {
		t.Errorf("root id = %v", got)
	}
	k, _ := schema.Lookup(schema.KindWorks)
	if len(root) != len(k.Root.Columns) {
		t.Errorf("root row has %d values, want %d", len(root), len(k.Root.Columns))
	}
	// abstract column carries the reconstructed text
	var abstractIdx int
	for i, c := range k.Root.Columns {
		if c == "abstract" {
			abstractIdx = i
		}
	}
	if got := root[abstractIdx]; got != "On things" {
		t.Errorf("abstract = %v", got)
	}
	// fan-out: one authorship row per institution
	auth := rows.Tables["openalex.works_authorships"]
	if len(auth) != 2 {
		t.Fatalf("got %d authorship rows, want 2", len(auth))
	}
	// columns: work_id, author_position, author_id, institution_id, raw_affiliation_string
	if auth[0][3] != "https://openalex.org/I1" || auth[1][3] != "https://openalex.org/I2" {
		t.Errorf("institution columns: %v / %v", auth[0][3], auth[1][3])
	}
	refs := rows.Tables["openalex.works_referenced_works"]
	if len(refs) != 2 {
		t.Fatalf("got %d referenced rows, want 2", len(refs))
	}
	if refs[0][0] != "https://openalex.org/W1" || refs[0][1] != "https://openalex.org/W2" {
		t.Errorf("referenced row: %v", refs[0])
	}
	// absent subentities emit nothing
	if _, ok := rows.Tables["openalex.works_mesh"]; ok {
		t.Error("absent mesh should emit no rows")
	}
	if got := rows.Tables["openalex.works_biblio"]; len(got) != 1 {
		t.Fatalf("got %d biblio rows, want 1", len(got))
	}
}

func TestInsertStatement(t *testing.T) {
	tbl := schema.Table{Name: "openalex.things", Columns: []string{"id", "name", "n"}}
	got := InsertStatement(tbl, []Row{
		{"x", "it's", int64(1)},
		{"y", nil, true},
	})
	want := "INSERT INTO openalex.things (id, name, n) VALUES ('x', 'it''s', 1), ('y', NULL, TRUE);"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestParamStatement(t *testing.T) {
	tbl := schema.Table{Name: "openalex.things", Columns: []string{"id", "name"}}
	got := ParamStatement(tbl)
	if !strings.Contains(got, "($1, $2)") {
		t.Errorf("got %s", got)
	}
}

func TestRoundTripWork(t *testing.T) {
	w := mustWork(t, `{
		"id": "https://openalex.org/W1",
		"doi": "https://doi.org/10.1/x",
		"display_name": "On things",
		"publication_year": 2017,
		"publication_date": "2017-08-08",
		"type": "article",
		"cited_by_count": 9,
		"is_retracted": false,
		"authorships": [
			{"author_position": "first",
			 "author": {"id": "https://openalex.org/A1", "display_name": "A. One"},
			 "raw_affiliation_string": "Inst One",
			 "institutions": [{"id": "https://openalex.org/I1"}]}
		],
		"biblio": {"volume": "12"},
		"open_access": {"is_oa": true, "oa_status": "gold"},
		"primary_location": {"is_oa": true, "source": {"id": "https://openalex.org/S1"}},
		"topics": [{"id": "https://openalex.org/T1", "score": 0.9}],
		"referenced_works": ["https://openalex.org/W2"],
		"mesh": [{"descriptor_ui": "D000001", "descriptor_name": "Things", "is_major_topic": true}],
		"ids": {"openalex": "https://openalex.org/W1", "doi": "https://doi.org/10.1/x"}
	}`)
	rows, err := Project(w)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Rehydrate(rows)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := back.(*entity.Work)
	if !ok {
		t.Fatalf("got %T", back)
	}
	// only table backed data survives the trip: compare the projections
	rows2, err := Project(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows.Tables, rows2.Tables); diff != "" {
		t.Errorf("projection not stable across hydration (-first +second):\n%s", diff)
	}
	// spot check hydrated fields
	if got.RecordID() != "https://openalex.org/W1" {
		t.Errorf("id = %s", got.RecordID())
	}
	if *got.Authorships[0].AuthorID != "https://openalex.org/A1" {
		t.Errorf("author_id = %v", *got.Authorships[0].AuthorID)
	}
	if *got.PrimaryLocation.SourceID != "https://openalex.org/S1" {
		t.Errorf("source_id = %v", *got.PrimaryLocation.SourceID)
	}
}

func TestRoundTripAuthor(t *testing.T) {
	var m map[string]any
	fixture := `{
		"id": "https://openalex.org/A1",
		"orcid": "https://orcid.org/0000-0001",
		"display_name": "A. One",
		"display_name_alternatives": ["A One"],
		"works_count": 10,
		"cited_by_count": 100,
		"works_api_url": "https://api.openalex.org/works?filter=author.id:A1",
		"updated_date": "2023-07-21T13:44:01",
		"ids": {"openalex": "https://openalex.org/A1", "orcid": "https://orcid.org/0000-0001", "mag": 12345},
		"counts_by_year": [
			{"year": 2023, "works_count": 2, "cited_by_count": 20, "oa_works_count": 1},
			{"year": 2022, "works_count": 8, "cited_by_count": 80, "oa_works_count": 4}
		]
	}`
	if err := json.Unmarshal([]byte(fixture), &m); err != nil {
		t.Fatal(err)
	}
	a, err := normalize.Author(m)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Project(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(rows.Tables["openalex.authors_counts_by_year"]); got != 2 {
		t.Fatalf("got %d counts rows, want 2", got)
	}
	back, err := Rehydrate(rows)
	if err != nil {
		t.Fatal(err)
	}
	got := back.(*entity.Author)
	if *got.ORCID != "https://orcid.org/0000-0001" {
		t.Errorf("orcid = %v", *got.ORCID)
	}
	if *got.IDs.Mag != 12345 {
		t.Errorf("ids.mag = %v", *got.IDs.Mag)
	}
	rows2, err := Project(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows.Tables, rows2.Tables); diff != "" {
		t.Errorf("author projection not stable (-first +second):\n%s", diff)
	}
}

func TestRoundTripTopic(t *testing.T) {
	var m map[string]any
	fixture := `{
		"id": "https://openalex.org/T1",
		"display_name": "Ion channels",
		"description": "Membrane proteins",
		"keywords": ["Ion Channels", "Electrophysiology"],
		"domain": {"id": "https://openalex.org/domains/1", "display_name": "Life Sciences"},
		"field": {"id": "https://openalex.org/fields/13", "display_name": "Biochemistry"},
		"subfield": {"id": "https://openalex.org/subfields/1304", "display_name": "Biophysics"},
		"works_count": 5000,
		"updated_date": "2024-02-05T05:00:03"
	}`
	if err := json.Unmarshal([]byte(fixture), &m); err != nil {
		t.Fatal(err)
	}
	topic, err := normalize.Topic(m)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Project(topic)
	if err != nil {
		t.Fatal(err)
	}
	if n := rows.Count(); n != 1 {
		t.Fatalf("topics project to a single row, got %d", n)
	}
	back, err := Rehydrate(rows)
	if err != nil {
		t.Fatal(err)
	}
	got := back.(*entity.Topic)
	if *got.DomainID != "https://openalex.org/domains/1" {
		t.Errorf("domain_id = %v", *got.DomainID)
	}
	if diff := cmp.Diff(topic.Keywords, got.Keywords); diff != "" {
		t.Errorf("keywords (-want +got):\n%s", diff)
	}
}
