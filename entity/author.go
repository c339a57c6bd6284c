package entity

// Author is the canonical form of one author record.
type Author struct {
	ID                      string                   `json:"id"`
	ORCID                   *string                  `json:"orcid,omitempty"`
	DisplayName             *string                  `json:"display_name,omitempty"`
	DisplayNameAlternatives []string                 `json:"display_name_alternatives,omitempty"`
	WorksCount              *int64                   `json:"works_count,omitempty"`
	CitedByCount            *int64                   `json:"cited_by_count,omitempty"`
	LastKnownInstitution    *string                  `json:"last_known_institution,omitempty"` // deprecated upstream
	LastKnownInstitutions   []*DehydratedInstitution `json:"last_known_institutions,omitempty"`
	WorksAPIURL             *string                  `json:"works_api_url,omitempty"`
	UpdatedDate             *string                  `json:"updated_date,omitempty"`
	CreatedDate             *string                  `json:"created_date,omitempty"`
	IDs                     *AuthorIDs               `json:"ids,omitempty"`
	CountsByYear            []*AuthorCountByYear     `json:"counts_by_year,omitempty"`
	Affiliations            []*AuthorAffiliation     `json:"affiliations,omitempty"`
	SummaryStats            *SummaryStats            `json:"summary_stats,omitempty"`
}

func (a *Author) Kind() string { return "authors" }

func (a *Author) RecordID() string { return a.ID }

func (a *Author) Field(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "orcid":
		return deref(a.ORCID), true
	case "display_name":
		return deref(a.DisplayName), true
	case "display_name_alternatives":
		return strlist(a.DisplayNameAlternatives), true
	case "works_count":
		return deref(a.WorksCount), true
	case "cited_by_count":
		return deref(a.CitedByCount), true
	case "last_known_institution":
		return deref(a.LastKnownInstitution), true
	case "works_api_url":
		return deref(a.WorksAPIURL), true
	case "updated_date":
		return deref(a.UpdatedDate), true
	}
	return nil, false
}

func (a *Author) Sub(name string) Subrecord {
	switch name {
	case "counts_by_year":
		return many(a.CountsByYear)
	case "ids":
		return one(a.IDs)
	}
	return Subrecord{}
}

type AuthorCountByYear struct {
	AuthorID *string `json:"author_id,omitempty"`
	countsCore
}

func (c *AuthorCountByYear) Field(name string) (any, bool) {
	if name == "author_id" {
		return deref(c.AuthorID), true
	}
	return c.countsCore.field(name)
}

type AuthorIDs struct {
	AuthorID  *string `json:"author_id,omitempty"`
	Openalex  *string `json:"openalex,omitempty"`
	ORCID     *string `json:"orcid,omitempty"`
	Scopus    *string `json:"scopus,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Wikipedia *string `json:"wikipedia,omitempty"`
	Mag       *int64  `json:"mag,omitempty"`
}

func (i *AuthorIDs) Field(name string) (any, bool) {
	switch name {
	case "author_id":
		return deref(i.AuthorID), true
	case "openalex":
		return deref(i.Openalex), true
	case "orcid":
		return deref(i.ORCID), true
	case "scopus":
		return deref(i.Scopus), true
	case "twitter":
		return deref(i.Twitter), true
	case "wikipedia":
		return deref(i.Wikipedia), true
	case "mag":
		return deref(i.Mag), true
	}
	return nil, false
}

// AuthorAffiliation has no table, it stays embedded on the canonical object.
type AuthorAffiliation struct {
	Institution *DehydratedInstitution `json:"institution,omitempty"`
	Years       []int64                `json:"years,omitempty"`
}
