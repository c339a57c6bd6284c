package entity

// Work is the canonical form of one work record. Dates are kept as already
// normalized strings, the derived abstract is computed during normalization
// and never read from input.
type Work struct {
	ID                          string                `json:"id"`
	DOI                         *string               `json:"doi,omitempty"`
	Title                       *string               `json:"title,omitempty"`
	DisplayName                 *string               `json:"display_name,omitempty"`
	PublicationYear             *int64                `json:"publication_year,omitempty"`
	PublicationDate             *string               `json:"publication_date,omitempty"`
	Type                        *string               `json:"type,omitempty"`
	CitedByCount                *int64                `json:"cited_by_count,omitempty"`
	IsRetracted                 *bool                 `json:"is_retracted,omitempty"`
	IsParatext                  *bool                 `json:"is_paratext,omitempty"`
	CitedByAPIURL               *string               `json:"cited_by_api_url,omitempty"`
	Abstract                    *string               `json:"abstract,omitempty"`
	AbstractInvertedIndex       map[string][]int      `json:"abstract_inverted_index,omitempty"`
	Language                    *string               `json:"language,omitempty"`
	IDs                         *WorkIDs              `json:"ids,omitempty"`
	Locations                   []*WorkLocation       `json:"locations,omitempty"`
	Authorships                 []*WorkAuthorship     `json:"authorships,omitempty"`
	Biblio                      *WorkBiblio           `json:"biblio,omitempty"`
	Topics                      []*WorkTopic          `json:"topics,omitempty"`
	Concepts                    []*WorkConcept        `json:"concepts,omitempty"`
	Mesh                        []*WorkMesh           `json:"mesh,omitempty"`
	OpenAccess                  *WorkOpenAccess       `json:"open_access,omitempty"`
	ReferencedWorks             []*WorkReferencedWork `json:"referenced_works,omitempty"`
	RelatedWorks                []*WorkRelatedWork    `json:"related_works,omitempty"`
	APCList                     *WorkAPC              `json:"apc_list,omitempty"`
	APCPaid                     *WorkAPC              `json:"apc_paid,omitempty"`
	BestOALocation              *WorkLocation         `json:"best_oa_location,omitempty"`
	PrimaryLocation             *WorkLocation         `json:"primary_location,omitempty"`
	PrimaryTopic                *WorkTopic            `json:"primary_topic,omitempty"`
	CorrespondingAuthorIDs      []string              `json:"corresponding_author_ids,omitempty"`
	CorrespondingInstitutionIDs []string              `json:"corresponding_institution_ids,omitempty"`
	CountriesDistinctCount      *int64                `json:"countries_distinct_count,omitempty"`
	CreatedDate                 *string               `json:"created_date,omitempty"`
	CountsByYear                []*WorkCountByYear    `json:"counts_by_year,omitempty"`
	FulltextOrigin              *string               `json:"fulltext_origin,omitempty"`
	FWCI                        *float64              `json:"fwci,omitempty"`
	Grants                      []*WorkGrant          `json:"grants,omitempty"`
	HasFulltext                 *bool                 `json:"has_fulltext,omitempty"`
	IndexedIn                   []string              `json:"indexed_in,omitempty"`
	InstitutionsDistinctCount   *int64                `json:"institutions_distinct_count,omitempty"`
	Keywords                    []*WorkKeyword        `json:"keywords,omitempty"`
	License                     *string               `json:"license,omitempty"`
	LocationsCount              *int64                `json:"locations_count,omitempty"`
	SustainableDevelopmentGoals []*WorkSDG            `json:"sustainable_development_goals,omitempty"`
	TypeCrossref                *string               `json:"type_crossref,omitempty"`
	UpdatedDate                 *string               `json:"updated_date,omitempty"`
}

func (w *Work) Kind() string { return "works" }

func (w *Work) RecordID() string { return w.ID }

func (w *Work) Field(name string) (any, bool) {
	switch name {
	case "id":
		return w.ID, true
	case "doi":
		return deref(w.DOI), true
	case "title":
		return deref(w.Title), true
	case "display_name":
		return deref(w.DisplayName), true
	case "publication_year":
		return deref(w.PublicationYear), true
	case "publication_date":
		return deref(w.PublicationDate), true
	case "type":
		return deref(w.Type), true
	case "cited_by_count":
		return deref(w.CitedByCount), true
	case "is_retracted":
		return deref(w.IsRetracted), true
	case "is_paratext":
		return deref(w.IsParatext), true
	case "cited_by_api_url":
		return deref(w.CitedByAPIURL), true
	case "abstract":
		return deref(w.Abstract), true
	case "language":
		return deref(w.Language), true
	}
	return nil, false
}

func (w *Work) Sub(name string) Subrecord {
	switch name {
	case "primary_location":
		return one(w.PrimaryLocation)
	case "locations":
		return many(w.Locations)
	case "best_oa_location":
		return one(w.BestOALocation)
	case "authorships":
		return many(w.Authorships)
	case "biblio":
		return one(w.Biblio)
	case "topics":
		return many(w.Topics)
	case "concepts":
		return many(w.Concepts)
	case "ids":
		return one(w.IDs)
	case "mesh":
		return many(w.Mesh)
	case "open_access":
		return one(w.OpenAccess)
	case "referenced_works":
		return many(w.ReferencedWorks)
	case "related_works":
		return many(w.RelatedWorks)
	}
	return Subrecord{}
}

// WorkLocation covers the primary, best-oa and plain location slots, which
// share one shape and column list.
type WorkLocation struct {
	WorkID         *string           `json:"work_id,omitempty"`
	SourceID       *string           `json:"source_id,omitempty"`
	LandingPageURL *string           `json:"landing_page_url,omitempty"`
	PDFURL         *string           `json:"pdf_url,omitempty"`
	IsOA           *bool             `json:"is_oa,omitempty"`
	Version        *string           `json:"version,omitempty"`
	License        *string           `json:"license,omitempty"`
	Source         *DehydratedSource `json:"source,omitempty"`
	IsAccepted     *bool             `json:"is_accepted,omitempty"`
	IsPublished    *bool             `json:"is_published,omitempty"`
}

func (l *WorkLocation) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(l.WorkID), true
	case "source_id":
		return deref(l.SourceID), true
	case "landing_page_url":
		return deref(l.LandingPageURL), true
	case "pdf_url":
		return deref(l.PDFURL), true
	case "is_oa":
		return deref(l.IsOA), true
	case "version":
		return deref(l.Version), true
	case "license":
		return deref(l.License), true
	}
	return nil, false
}

type WorkAuthorship struct {
	WorkID               *string                  `json:"work_id,omitempty"`
	AuthorPosition       *string                  `json:"author_position,omitempty"`
	AuthorID             *string                  `json:"author_id,omitempty"`
	InstitutionID        *string                  `json:"institution_id,omitempty"`
	RawAffiliationString *string                  `json:"raw_affiliation_string,omitempty"`
	RawAuthorName        *string                  `json:"raw_author_name,omitempty"`
	Author               *DehydratedAuthor        `json:"author,omitempty"`
	Countries            []string                 `json:"countries,omitempty"`
	Institutions         []*DehydratedInstitution `json:"institutions,omitempty"`
	IsCorresponding      *bool                    `json:"is_corresponding,omitempty"`
}

func (a *WorkAuthorship) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(a.WorkID), true
	case "author_position":
		return deref(a.AuthorPosition), true
	case "author_id":
		return deref(a.AuthorID), true
	case "institution_id":
		return deref(a.InstitutionID), true
	case "raw_affiliation_string":
		return deref(a.RawAffiliationString), true
	}
	return nil, false
}

type WorkBiblio struct {
	WorkID    *string `json:"work_id,omitempty"`
	Volume    *string `json:"volume,omitempty"`
	Issue     *string `json:"issue,omitempty"`
	FirstPage *string `json:"first_page,omitempty"`
	LastPage  *string `json:"last_page,omitempty"`
}

func (b *WorkBiblio) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(b.WorkID), true
	case "volume":
		return deref(b.Volume), true
	case "issue":
		return deref(b.Issue), true
	case "first_page":
		return deref(b.FirstPage), true
	case "last_page":
		return deref(b.LastPage), true
	}
	return nil, false
}

type WorkTopic struct {
	WorkID  *string  `json:"work_id,omitempty"`
	TopicID *string  `json:"topic_id,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}

func (t *WorkTopic) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(t.WorkID), true
	case "topic_id":
		return deref(t.TopicID), true
	case "score":
		return deref(t.Score), true
	}
	return nil, false
}

type WorkConcept struct {
	WorkID    *string  `json:"work_id,omitempty"`
	ConceptID *string  `json:"concept_id,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}

func (c *WorkConcept) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(c.WorkID), true
	case "concept_id":
		return deref(c.ConceptID), true
	case "score":
		return deref(c.Score), true
	}
	return nil, false
}

type WorkIDs struct {
	WorkID   *string `json:"work_id,omitempty"`
	Openalex *string `json:"openalex,omitempty"`
	DOI      *string `json:"doi,omitempty"`
	Mag      *int64  `json:"mag,omitempty"`
	PMID     *string `json:"pmid,omitempty"`
	PMCID    *string `json:"pmcid,omitempty"`
}

func (i *WorkIDs) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(i.WorkID), true
	case "openalex":
		return deref(i.Openalex), true
	case "doi":
		return deref(i.DOI), true
	case "mag":
		return deref(i.Mag), true
	case "pmid":
		return deref(i.PMID), true
	case "pmcid":
		return deref(i.PMCID), true
	}
	return nil, false
}

type WorkMesh struct {
	WorkID         *string `json:"work_id,omitempty"`
	DescriptorUI   *string `json:"descriptor_ui,omitempty"`
	DescriptorName *string `json:"descriptor_name,omitempty"`
	QualifierUI    *string `json:"qualifier_ui,omitempty"`
	QualifierName  *string `json:"qualifier_name,omitempty"`
	IsMajorTopic   *bool   `json:"is_major_topic,omitempty"`
}

func (m *WorkMesh) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(m.WorkID), true
	case "descriptor_ui":
		return deref(m.DescriptorUI), true
	case "descriptor_name":
		return deref(m.DescriptorName), true
	case "qualifier_ui":
		return deref(m.QualifierUI), true
	case "qualifier_name":
		return deref(m.QualifierName), true
	case "is_major_topic":
		return deref(m.IsMajorTopic), true
	}
	return nil, false
}

type WorkOpenAccess struct {
	WorkID                   *string `json:"work_id,omitempty"`
	IsOA                     *bool   `json:"is_oa,omitempty"`
	OAStatus                 *string `json:"oa_status,omitempty"`
	OAURL                    *string `json:"oa_url,omitempty"`
	AnyRepositoryHasFulltext *bool   `json:"any_repository_has_fulltext,omitempty"`
}

func (o *WorkOpenAccess) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(o.WorkID), true
	case "is_oa":
		return deref(o.IsOA), true
	case "oa_status":
		return deref(o.OAStatus), true
	case "oa_url":
		return deref(o.OAURL), true
	case "any_repository_has_fulltext":
		return deref(o.AnyRepositoryHasFulltext), true
	}
	return nil, false
}

// WorkReferencedWork is the wrapped two-column relation; the snapshot only
// carries the bare identifier of the other work.
type WorkReferencedWork struct {
	WorkID           *string `json:"work_id,omitempty"`
	ReferencedWorkID *string `json:"referenced_work_id,omitempty"`
}

func (r *WorkReferencedWork) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(r.WorkID), true
	case "referenced_work_id":
		return deref(r.ReferencedWorkID), true
	}
	return nil, false
}

type WorkRelatedWork struct {
	WorkID        *string `json:"work_id,omitempty"`
	RelatedWorkID *string `json:"related_work_id,omitempty"`
}

func (r *WorkRelatedWork) Field(name string) (any, bool) {
	switch name {
	case "work_id":
		return deref(r.WorkID), true
	case "related_work_id":
		return deref(r.RelatedWorkID), true
	}
	return nil, false
}

// WorkAPC is an article processing charge, kept on the work only.
type WorkAPC struct {
	Value      *int64  `json:"value,omitempty"`
	Currency   *string `json:"currency,omitempty"`
	Provenance *string `json:"provenance,omitempty"`
	ValueUSD   *int64  `json:"value_usd,omitempty"`
}

// WorkCountByYear has no table of its own, the foreign key is still
// replicated for uniformity.
type WorkCountByYear struct {
	WorkID       *string `json:"work_id,omitempty"`
	Year         int64   `json:"year"`
	CitedByCount *int64  `json:"cited_by_count,omitempty"`
}

type WorkGrant struct {
	Funder            *string `json:"funder,omitempty"`
	FunderDisplayName *string `json:"funder_display_name,omitempty"`
	AwardID           *string `json:"award_id,omitempty"`
}

type WorkKeyword struct {
	ID          *string  `json:"id,omitempty"`
	DisplayName *string  `json:"display_name,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

type WorkSDG struct {
	ID          *string  `json:"id,omitempty"`
	DisplayName *string  `json:"display_name,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}
