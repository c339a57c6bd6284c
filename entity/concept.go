package entity

// Concept is the deprecated sibling of Topic, still part of the snapshot and
// kept for backward compatibility.
type Concept struct {
	ID                string                   `json:"id"`
	Wikidata          *string                  `json:"wikidata,omitempty"`
	DisplayName       *string                  `json:"display_name,omitempty"`
	Level             *int64                   `json:"level,omitempty"`
	Description       *string                  `json:"description,omitempty"`
	WorksCount        *int64                   `json:"works_count,omitempty"`
	CitedByCount      *int64                   `json:"cited_by_count,omitempty"`
	ImageURL          *string                  `json:"image_url,omitempty"`
	ImageThumbnailURL *string                  `json:"image_thumbnail_url,omitempty"`
	WorksAPIURL       *string                  `json:"works_api_url,omitempty"`
	UpdatedDate       *string                  `json:"updated_date,omitempty"`
	CreatedDate       *string                  `json:"created_date,omitempty"`
	Ancestors         []*ConceptAncestor       `json:"ancestors,omitempty"`
	RelatedConcepts   []*ConceptRelatedConcept `json:"related_concepts,omitempty"`
	CountsByYear      []*ConceptCountByYear    `json:"counts_by_year,omitempty"`
	IDs               *ConceptIDs              `json:"ids,omitempty"`
}

func (c *Concept) Kind() string { return "concepts" }

func (c *Concept) RecordID() string { return c.ID }

func (c *Concept) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "wikidata":
		return deref(c.Wikidata), true
	case "display_name":
		return deref(c.DisplayName), true
	case "level":
		return deref(c.Level), true
	case "description":
		return deref(c.Description), true
	case "works_count":
		return deref(c.WorksCount), true
	case "cited_by_count":
		return deref(c.CitedByCount), true
	case "image_url":
		return deref(c.ImageURL), true
	case "image_thumbnail_url":
		return deref(c.ImageThumbnailURL), true
	case "works_api_url":
		return deref(c.WorksAPIURL), true
	case "updated_date":
		return deref(c.UpdatedDate), true
	}
	return nil, false
}

func (c *Concept) Sub(name string) Subrecord {
	switch name {
	case "ancestors":
		return many(c.Ancestors)
	case "related_concepts":
		return many(c.RelatedConcepts)
	case "counts_by_year":
		return many(c.CountsByYear)
	case "ids":
		return one(c.IDs)
	}
	return Subrecord{}
}

type ConceptAncestor struct {
	ConceptID  *string `json:"concept_id,omitempty"`
	AncestorID *string `json:"ancestor_id,omitempty"`
}

func (a *ConceptAncestor) Field(name string) (any, bool) {
	switch name {
	case "concept_id":
		return deref(a.ConceptID), true
	case "ancestor_id":
		return deref(a.AncestorID), true
	}
	return nil, false
}

type ConceptRelatedConcept struct {
	ConceptID        *string  `json:"concept_id,omitempty"`
	RelatedConceptID *string  `json:"related_concept_id,omitempty"`
	Score            *float64 `json:"score,omitempty"`
}

func (r *ConceptRelatedConcept) Field(name string) (any, bool) {
	switch name {
	case "concept_id":
		return deref(r.ConceptID), true
	case "related_concept_id":
		return deref(r.RelatedConceptID), true
	case "score":
		return deref(r.Score), true
	}
	return nil, false
}

type ConceptCountByYear struct {
	ConceptID *string `json:"concept_id,omitempty"`
	countsCore
}

func (c *ConceptCountByYear) Field(name string) (any, bool) {
	if name == "concept_id" {
		return deref(c.ConceptID), true
	}
	return c.countsCore.field(name)
}

type ConceptIDs struct {
	ConceptID *string  `json:"concept_id,omitempty"`
	Openalex  *string  `json:"openalex,omitempty"`
	Wikidata  *string  `json:"wikidata,omitempty"`
	Wikipedia *string  `json:"wikipedia,omitempty"`
	UmlsAui   []string `json:"umls_aui,omitempty"`
	UmlsCui   []string `json:"umls_cui,omitempty"`
	Mag       *int64   `json:"mag,omitempty"`
}

func (i *ConceptIDs) Field(name string) (any, bool) {
	switch name {
	case "concept_id":
		return deref(i.ConceptID), true
	case "openalex":
		return deref(i.Openalex), true
	case "wikidata":
		return deref(i.Wikidata), true
	case "wikipedia":
		return deref(i.Wikipedia), true
	case "umls_aui":
		return strlist(i.UmlsAui), true
	case "umls_cui":
		return strlist(i.UmlsCui), true
	case "mag":
		return deref(i.Mag), true
	}
	return nil, false
}
