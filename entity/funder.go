package entity

// Funder is the canonical form of one funder record.
type Funder struct {
	ID                string               `json:"id"`
	DisplayName       *string              `json:"display_name,omitempty"`
	AlternateTitles   []string             `json:"alternate_titles,omitempty"`
	CountryCode       *string              `json:"country_code,omitempty"`
	Description       *string              `json:"description,omitempty"`
	HomepageURL       *string              `json:"homepage_url,omitempty"`
	ImageURL          *string              `json:"image_url,omitempty"`
	ImageThumbnailURL *string              `json:"image_thumbnail_url,omitempty"`
	GrantsCount       *int64               `json:"grants_count,omitempty"`
	WorksCount        *int64               `json:"works_count,omitempty"`
	CitedByCount      *int64               `json:"cited_by_count,omitempty"`
	UpdatedDate       *string              `json:"updated_date,omitempty"`
	CreatedDate       *string              `json:"created_date,omitempty"`
	CountsByYear      []*FunderCountByYear `json:"counts_by_year,omitempty"`
	IDs               *FunderIDs           `json:"ids,omitempty"`
	Roles             []*Role              `json:"roles,omitempty"`
	SummaryStats      *SummaryStats        `json:"summary_stats,omitempty"`
}

func (f *Funder) Kind() string { return "funders" }

func (f *Funder) RecordID() string { return f.ID }

func (f *Funder) Field(name string) (any, bool) {
	switch name {
	case "id":
		return f.ID, true
	case "display_name":
		return deref(f.DisplayName), true
	case "alternate_titles":
		return strlist(f.AlternateTitles), true
	case "country_code":
		return deref(f.CountryCode), true
	case "description":
		return deref(f.Description), true
	case "homepage_url":
		return deref(f.HomepageURL), true
	case "image_url":
		return deref(f.ImageURL), true
	case "image_thumbnail_url":
		return deref(f.ImageThumbnailURL), true
	case "grants_count":
		return deref(f.GrantsCount), true
	case "works_count":
		return deref(f.WorksCount), true
	case "cited_by_count":
		return deref(f.CitedByCount), true
	case "updated_date":
		return deref(f.UpdatedDate), true
	}
	return nil, false
}

func (f *Funder) Sub(name string) Subrecord {
	switch name {
	case "counts_by_year":
		return many(f.CountsByYear)
	case "ids":
		return one(f.IDs)
	}
	return Subrecord{}
}

type FunderCountByYear struct {
	FunderID *string `json:"funder_id,omitempty"`
	countsCore
}

func (c *FunderCountByYear) Field(name string) (any, bool) {
	if name == "funder_id" {
		return deref(c.FunderID), true
	}
	return c.countsCore.field(name)
}

type FunderIDs struct {
	FunderID *string `json:"funder_id,omitempty"`
	Openalex *string `json:"openalex,omitempty"`
	ROR      *string `json:"ror,omitempty"`
	Wikidata *string `json:"wikidata,omitempty"`
	Crossref *string `json:"crossref,omitempty"` // numeric in some records, coerced to string
	DOI      *string `json:"doi,omitempty"`
}

func (i *FunderIDs) Field(name string) (any, bool) {
	switch name {
	case "funder_id":
		return deref(i.FunderID), true
	case "openalex":
		return deref(i.Openalex), true
	case "ror":
		return deref(i.ROR), true
	case "wikidata":
		return deref(i.Wikidata), true
	case "crossref":
		return deref(i.Crossref), true
	case "doi":
		return deref(i.DOI), true
	}
	return nil, false
}
