package normalize

import (
	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/schema"
)

// Author normalizes one raw author record.
func Author(raw map[string]any) (*entity.Author, error) {
	const kind = schema.KindAuthors
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if err := decodeJSONString(kind, id, m, "display_name_alternatives"); err != nil {
		return nil, err
	}
	injectFK(m, "ids", "author_id")
	injectFK(m, "counts_by_year", "author_id")
	collapseEmpty(m, "display_name_alternatives", "counts_by_year", "last_known_institutions", "affiliations")
	var a entity.Author
	if err := decode(kind, id, m, &a); err != nil {
		return nil, err
	}
	for i, s := range a.DisplayNameAlternatives {
		a.DisplayNameAlternatives[i] = entity.NameCleanup.Normalize(s)
	}
	if err := fixDate(kind, id, "created_date", &a.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &a.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &a, nil
}

// Source normalizes one raw source record.
func Source(raw map[string]any) (*entity.Source, error) {
	const kind = schema.KindSources
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if err := decodeJSONString(kind, id, m, "issn"); err != nil {
		return nil, err
	}
	if ids, ok := asMap(m["ids"]); ok {
		if err := decodeJSONString(kind, id, ids, "issn"); err != nil {
			return nil, err
		}
	}
	injectFK(m, "ids", "source_id")
	injectFK(m, "counts_by_year", "source_id")
	collapseEmpty(m, "issn", "alternate_titles", "apc_prices", "counts_by_year", "host_organization_lineage")
	var s entity.Source
	if err := decode(kind, id, m, &s); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "created_date", &s.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &s.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &s, nil
}

// Institution normalizes one raw institution record.
func Institution(raw map[string]any) (*entity.Institution, error) {
	const kind = schema.KindInstitutions
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"display_name_acronyms", "display_name_alternatives"} {
		if err := decodeJSONString(kind, id, m, key); err != nil {
			return nil, err
		}
	}
	injectFK(m, "ids", "institution_id")
	injectFK(m, "geo", "institution_id")
	injectFK(m, "counts_by_year", "institution_id")
	injectFK(m, "associated_institutions", "institution_id")
	aliasInList(m, "associated_institutions", "id", "associated_institution_id")
	collapseEmpty(m, "lineage", "display_name_acronyms", "display_name_alternatives",
		"counts_by_year", "associated_institutions", "repositories", "roles")
	var inst entity.Institution
	if err := decode(kind, id, m, &inst); err != nil {
		return nil, err
	}
	for _, repo := range inst.Repositories {
		if repo == nil {
			continue
		}
		if repo.HostOrganization == nil || *repo.HostOrganization != inst.ID {
			return nil, violation(kind, id, "repositories.host_organization",
				"repository %s is not hosted by this institution", repo.ID)
		}
	}
	if err := fixDate(kind, id, "created_date", &inst.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &inst.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Publisher normalizes one raw publisher record.
func Publisher(raw map[string]any) (*entity.Publisher, error) {
	const kind = schema.KindPublishers
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if err := coerceParentPublisher(kind, id, m); err != nil {
		return nil, err
	}
	for _, key := range []string{"alternate_titles", "country_codes"} {
		if err := decodeJSONString(kind, id, m, key); err != nil {
			return nil, err
		}
	}
	injectFK(m, "ids", "publisher_id")
	injectFK(m, "counts_by_year", "publisher_id")
	collapseEmpty(m, "alternate_titles", "country_codes", "counts_by_year", "lineage", "roles")
	var p entity.Publisher
	if err := decode(kind, id, m, &p); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "created_date", &p.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &p.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &p, nil
}

// coerceParentPublisher accepts all three shapes the field shows up in: an
// object, a bare identifier string, or an embedded JSON document coming back
// from a blob column.
func coerceParentPublisher(kind, id string, m map[string]any) error {
	s, ok := m["parent_publisher"].(string)
	if !ok {
		return nil
	}
	if len(s) > 0 && s[0] == '{' {
		return decodeJSONString(kind, id, m, "parent_publisher")
	}
	m["parent_publisher"] = map[string]any{"id": s}
	return nil
}

// Funder normalizes one raw funder record.
func Funder(raw map[string]any) (*entity.Funder, error) {
	const kind = schema.KindFunders
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if err := decodeJSONString(kind, id, m, "alternate_titles"); err != nil {
		return nil, err
	}
	injectFK(m, "ids", "funder_id")
	injectFK(m, "counts_by_year", "funder_id")
	stringifyID(m, "crossref")
	collapseEmpty(m, "alternate_titles", "counts_by_year", "roles")
	var f entity.Funder
	if err := decode(kind, id, m, &f); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "created_date", &f.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &f.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &f, nil
}

// Topic normalizes one raw topic record. Topics project into a single table,
// the domain, field and subfield objects flatten into id and display name
// column pairs.
func Topic(raw map[string]any) (*entity.Topic, error) {
	const kind = schema.KindTopics
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if err := decodeJSONString(kind, id, m, "keywords"); err != nil {
		return nil, err
	}
	flattenTopicLevel(m, "domain")
	flattenTopicLevel(m, "field")
	flattenTopicLevel(m, "subfield")
	if ids, ok := asMap(m["ids"]); ok {
		setIfAbsent(ids, "openalex", id)
	}
	collapseEmpty(m, "keywords", "siblings")
	var t entity.Topic
	if err := decode(kind, id, m, &t); err != nil {
		return nil, err
	}
	if t.IDs != nil && t.IDs.Openalex != nil && *t.IDs.Openalex != t.ID {
		return nil, violation(kind, id, "ids.openalex", "identifier map disagrees with record id %s", *t.IDs.Openalex)
	}
	if err := fixDate(kind, id, "updated_date", &t.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &t, nil
}

func flattenTopicLevel(m map[string]any, key string) {
	lv, ok := asMap(m[key])
	if !ok {
		return
	}
	if v, ok := lv["id"]; ok {
		setIfAbsent(m, key+"_id", v)
	}
	if v, ok := lv["display_name"]; ok {
		setIfAbsent(m, key+"_display_name", v)
	}
}

// Concept normalizes one raw concept record. Concepts are deprecated
// upstream but still part of snapshots.
func Concept(raw map[string]any) (*entity.Concept, error) {
	const kind = schema.KindConcepts
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	if ids, ok := asMap(m["ids"]); ok {
		for _, key := range []string{"umls_aui", "umls_cui"} {
			if err := decodeJSONString(kind, id, ids, key); err != nil {
				return nil, err
			}
		}
	}
	injectFK(m, "ids", "concept_id")
	injectFK(m, "counts_by_year", "concept_id")
	injectFK(m, "ancestors", "concept_id")
	injectFK(m, "related_concepts", "concept_id")
	aliasInList(m, "ancestors", "id", "ancestor_id")
	aliasInList(m, "related_concepts", "id", "related_concept_id")
	collapseEmpty(m, "ancestors", "related_concepts", "counts_by_year")
	var c entity.Concept
	if err := decode(kind, id, m, &c); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "created_date", &c.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &c.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	return &c, nil
}
