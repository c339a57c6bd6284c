package normalize

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/encoding/json"
)

func mustMap(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestNormalizeUnknownKind(t *testing.T) {
	_, err := Normalize("venues", map[string]any{"id": "V1"})
	var uk *UnknownKindError
	if !errors.As(err, &uk) {
		t.Fatalf("got %v, want UnknownKindError", err)
	}
}

func TestNormalizeMissingID(t *testing.T) {
	_, err := Normalize("works", map[string]any{"title": "no id"})
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Rule != "id" {
		t.Errorf("got rule %q, want id", sv.Rule)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := mustMap(t, `{"id": "https://openalex.org/W1", "ids": {"doi": "x"}}`)
	if _, err := Work(raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["ids"].(map[string]any)["work_id"]; ok {
		t.Error("input map was mutated")
	}
}

func TestWorkAuthorshipFanOut(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"authorships": [
			{
				"author_position": "first",
				"author": {"id": "https://openalex.org/A1"},
				"institutions": [
					{"id": "https://openalex.org/I1"},
					{"id": "https://openalex.org/I2"},
					{"id": "https://openalex.org/I3"}
				]
			},
			{
				"author_position": "last",
				"author": {"id": "https://openalex.org/A2"},
				"institutions": []
			}
		]
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Authorships) != 4 {
		t.Fatalf("got %d authorships, want 4", len(w.Authorships))
	}
	var instIDs []string
	for _, a := range w.Authorships[:3] {
		if got := *a.AuthorID; got != "https://openalex.org/A1" {
			t.Errorf("got author_id %s, want A1", got)
		}
		if len(a.Institutions) != 1 {
			t.Fatalf("got %d institutions after fan-out, want 1", len(a.Institutions))
		}
		instIDs = append(instIDs, a.Institutions[0].ID)
	}
	want := []string{
		"https://openalex.org/I1",
		"https://openalex.org/I2",
		"https://openalex.org/I3",
	}
	if diff := cmp.Diff(want, instIDs); diff != "" {
		t.Errorf("institution order mismatch (-want +got):\n%s", diff)
	}
	// an authorship without institutions keeps one row and no institution
	last := w.Authorships[3]
	if len(last.Institutions) != 0 || last.InstitutionID != nil {
		t.Errorf("got institutions %v, want none", last.Institutions)
	}
}

func TestWorkAuthorIDMismatch(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"authorships": [
			{"author_id": "https://openalex.org/A9", "author": {"id": "https://openalex.org/A1"}}
		]
	}`)
	_, err := Work(raw)
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Rule != "authorship.author_id" {
		t.Errorf("got rule %q", sv.Rule)
	}
}

func TestWorkBestOALocationMustBeOA(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"best_oa_location": {"is_oa": false, "landing_page_url": "https://example.org"}
	}`)
	_, err := Work(raw)
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Rule != "best_oa_location.is_oa" {
		t.Errorf("got rule %q", sv.Rule)
	}
	// and a missing flag counts as a violation too
	raw = mustMap(t, `{"id": "https://openalex.org/W1", "best_oa_location": {"version": "publishedVersion"}}`)
	if _, err := Work(raw); !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation for missing is_oa", err)
	}
}

func TestWorkRelationWrapping(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"referenced_works": ["https://openalex.org/W2", "https://openalex.org/W3"],
		"related_works": ["https://openalex.org/W4"]
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.ReferencedWorks) != 2 {
		t.Fatalf("got %d referenced works, want 2", len(w.ReferencedWorks))
	}
	r := w.ReferencedWorks[0]
	if *r.WorkID != "https://openalex.org/W1" || *r.ReferencedWorkID != "https://openalex.org/W2" {
		t.Errorf("got %v/%v", *r.WorkID, *r.ReferencedWorkID)
	}
	if *w.RelatedWorks[0].RelatedWorkID != "https://openalex.org/W4" {
		t.Errorf("got %v", *w.RelatedWorks[0].RelatedWorkID)
	}
}

func TestWorkRelationWrappingBadElement(t *testing.T) {
	raw := mustMap(t, `{"id": "https://openalex.org/W1", "referenced_works": [42]}`)
	_, err := Work(raw)
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
}

func TestWorkEmptyListsCollapse(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"locations": [],
		"referenced_works": [],
		"mesh": []
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if w.Locations != nil || w.ReferencedWorks != nil || w.Mesh != nil {
		t.Errorf("empty lists should collapse to absent")
	}
}

func TestWorkAbstractFromIndex(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"abstract_inverted_index": {"Despite": [0], "growing": [1], "interest": [2]}
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if w.Abstract == nil || *w.Abstract != "Despite growing interest" {
		t.Errorf("got %v", w.Abstract)
	}
}

func TestWorkDates(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"publication_date": "2017-08-08",
		"created_date": "2017-08-08",
		"updated_date": "2023-07-21T22:05:47.334447"
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *w.PublicationDate != "2017-08-08T00:00:00" {
		t.Errorf("publication_date = %q", *w.PublicationDate)
	}
	if *w.UpdatedDate != "2023-07-21T22:05:47" {
		t.Errorf("updated_date = %q", *w.UpdatedDate)
	}
}

func TestWorkLocationSourceID(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"primary_location": {"is_oa": true, "source": {"id": "https://openalex.org/S1"}},
		"locations": [{"source": {"id": "https://openalex.org/S2"}}]
	}`)
	w, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *w.PrimaryLocation.SourceID != "https://openalex.org/S1" {
		t.Errorf("got %v", w.PrimaryLocation.SourceID)
	}
	if *w.Locations[0].SourceID != "https://openalex.org/S2" {
		t.Errorf("got %v", w.Locations[0].SourceID)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/W1",
		"display_name": "On things",
		"authorships": [
			{"author": {"id": "https://openalex.org/A1"},
			 "institutions": [{"id": "https://openalex.org/I1"}, {"id": "https://openalex.org/I2"}]}
		],
		"referenced_works": ["https://openalex.org/W2"],
		"abstract_inverted_index": {"On": [0], "things": [1]}
	}`)
	first, err := Work(raw)
	if err != nil {
		t.Fatal(err)
	}
	// feed the normalized entity back through as a raw map
	b, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	var again map[string]any
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatal(err)
	}
	second, err := Work(again)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("normalization is not idempotent (-first +second):\n%s", diff)
	}
}

func TestAuthorNameCleanupAndFKs(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/A1",
		"display_name_alternatives": ["John \"Jack\" Smith", "J.  Smith"],
		"ids": {"openalex": "https://openalex.org/A1", "orcid": "https://orcid.org/0000-0001"},
		"counts_by_year": [{"year": 2022, "works_count": 3}],
		"updated_date": "2023-07-21T13:44:01.528055"
	}`)
	a, err := Author(raw)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"John Jack Smith", "J. Smith"}
	if diff := cmp.Diff(want, a.DisplayNameAlternatives); diff != "" {
		t.Errorf("alternatives (-want +got):\n%s", diff)
	}
	if *a.IDs.AuthorID != "https://openalex.org/A1" {
		t.Errorf("ids.author_id = %v", a.IDs.AuthorID)
	}
	if *a.CountsByYear[0].AuthorID != "https://openalex.org/A1" {
		t.Errorf("counts_by_year.author_id = %v", a.CountsByYear[0].AuthorID)
	}
	if *a.UpdatedDate != "2023-07-21T13:44:01" {
		t.Errorf("updated_date = %q", *a.UpdatedDate)
	}
}

func TestInstitutionRepositoryHostCheck(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/I1",
		"repositories": [
			{"id": "https://openalex.org/S1", "host_organization": "https://openalex.org/I1"}
		]
	}`)
	if _, err := Institution(raw); err != nil {
		t.Fatalf("matching host: %v", err)
	}
	var sv *SchemaViolation
	raw = mustMap(t, `{
		"id": "https://openalex.org/I1",
		"repositories": [{"id": "https://openalex.org/S1", "host_organization": "https://openalex.org/I2"}]
	}`)
	if _, err := Institution(raw); !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation for foreign host", err)
	}
	// a repository without host organization is a violation as well
	raw = mustMap(t, `{
		"id": "https://openalex.org/I1",
		"repositories": [{"id": "https://openalex.org/S1"}]
	}`)
	if _, err := Institution(raw); !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation for null host", err)
	}
}

func TestInstitutionAssociatedInstitutions(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/I1",
		"associated_institutions": [
			{"id": "https://openalex.org/I2", "relationship": "parent"}
		]
	}`)
	inst, err := Institution(raw)
	if err != nil {
		t.Fatal(err)
	}
	a := inst.AssociatedInstitutions[0]
	if *a.InstitutionID != "https://openalex.org/I1" {
		t.Errorf("institution_id = %v", *a.InstitutionID)
	}
	if *a.AssociatedInstitutionID != "https://openalex.org/I2" {
		t.Errorf("associated_institution_id = %v", *a.AssociatedInstitutionID)
	}
}

func TestPublisherParentShapes(t *testing.T) {
	// object form
	raw := mustMap(t, `{"id": "https://openalex.org/P1",
		"parent_publisher": {"id": "https://openalex.org/P2", "display_name": "Parent"}}`)
	p, err := Publisher(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *p.ParentPublisher.ID != "https://openalex.org/P2" {
		t.Errorf("got %v", p.ParentPublisher.ID)
	}
	// bare identifier form
	raw = mustMap(t, `{"id": "https://openalex.org/P1", "parent_publisher": "https://openalex.org/P2"}`)
	p, err = Publisher(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *p.ParentPublisher.ID != "https://openalex.org/P2" {
		t.Errorf("got %v", p.ParentPublisher.ID)
	}
	// embedded JSON document form, as read back from a blob column
	raw = mustMap(t, `{"id": "https://openalex.org/P1"}`)
	raw["parent_publisher"] = `{"id":"https://openalex.org/P2","display_name":"Parent"}`
	p, err = Publisher(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *p.ParentPublisher.DisplayName != "Parent" {
		t.Errorf("got %v", p.ParentPublisher.DisplayName)
	}
}

func TestFunderCrossrefCoercion(t *testing.T) {
	raw := mustMap(t, `{"id": "https://openalex.org/F1", "ids": {"crossref": 100000002}}`)
	f, err := Funder(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *f.IDs.Crossref != "100000002" {
		t.Errorf("got %q, want 100000002", *f.IDs.Crossref)
	}
}

func TestTopicFlattenAndKeywords(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/T1",
		"display_name": "Ion channels",
		"domain": {"id": "https://openalex.org/domains/1", "display_name": "Life Sciences"},
		"field": {"id": "https://openalex.org/fields/13", "display_name": "Biochemistry"},
		"subfield": {"id": "https://openalex.org/subfields/1304", "display_name": "Biophysics"},
		"keywords": ["Ion Channels", "Electrophysiology"],
		"ids": {"openalex": "https://openalex.org/T1"}
	}`)
	topic, err := Topic(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *topic.DomainID != "https://openalex.org/domains/1" || *topic.DomainDisplayName != "Life Sciences" {
		t.Errorf("domain = %v %v", topic.DomainID, topic.DomainDisplayName)
	}
	if *topic.FieldID != "https://openalex.org/fields/13" {
		t.Errorf("field_id = %v", topic.FieldID)
	}
	if *topic.SubfieldDisplayName != "Biophysics" {
		t.Errorf("subfield_display_name = %v", topic.SubfieldDisplayName)
	}
	// keywords as embedded JSON string, the blob column read back
	raw = mustMap(t, `{"id": "https://openalex.org/T1"}`)
	raw["keywords"] = `["Ion Channels","Electrophysiology"]`
	topic, err = Topic(raw)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Ion Channels", "Electrophysiology"}, topic.Keywords); diff != "" {
		t.Errorf("keywords (-want +got):\n%s", diff)
	}
}

func TestTopicIDMismatch(t *testing.T) {
	raw := mustMap(t, `{"id": "https://openalex.org/T1", "ids": {"openalex": "https://openalex.org/T2"}}`)
	_, err := Topic(raw)
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Rule != "ids.openalex" {
		t.Errorf("got rule %q", sv.Rule)
	}
}

func TestConceptRelations(t *testing.T) {
	raw := mustMap(t, `{
		"id": "https://openalex.org/C1",
		"ancestors": [{"id": "https://openalex.org/C0"}],
		"related_concepts": [{"id": "https://openalex.org/C2", "score": 0.5}],
		"ids": {"umls_cui": ["C0001"]}
	}`)
	c, err := Concept(raw)
	if err != nil {
		t.Fatal(err)
	}
	if *c.Ancestors[0].ConceptID != "https://openalex.org/C1" {
		t.Errorf("ancestor concept_id = %v", *c.Ancestors[0].ConceptID)
	}
	if *c.Ancestors[0].AncestorID != "https://openalex.org/C0" {
		t.Errorf("ancestor_id = %v", *c.Ancestors[0].AncestorID)
	}
	if *c.RelatedConcepts[0].RelatedConceptID != "https://openalex.org/C2" {
		t.Errorf("related_concept_id = %v", *c.RelatedConcepts[0].RelatedConceptID)
	}
	if diff := cmp.Diff([]string{"C0001"}, c.IDs.UmlsCui); diff != "" {
		t.Errorf("umls_cui (-want +got):\n%s", diff)
	}
}
