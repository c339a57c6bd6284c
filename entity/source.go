package entity

// Source is the canonical form of one source (venue) record.
type Source struct {
	ID                      string               `json:"id"`
	IssnL                   *string              `json:"issn_l,omitempty"`
	Issn                    []string             `json:"issn,omitempty"`
	DisplayName             *string              `json:"display_name,omitempty"`
	Publisher               *string              `json:"publisher,omitempty"`
	WorksCount              *int64               `json:"works_count,omitempty"`
	CitedByCount            *int64               `json:"cited_by_count,omitempty"`
	IsOA                    *bool                `json:"is_oa,omitempty"`
	IsInDoaj                *bool                `json:"is_in_doaj,omitempty"`
	HomepageURL             *string              `json:"homepage_url,omitempty"`
	WorksAPIURL             *string              `json:"works_api_url,omitempty"`
	UpdatedDate             *string              `json:"updated_date,omitempty"`
	CreatedDate             *string              `json:"created_date,omitempty"`
	AbbreviatedTitle        *string              `json:"abbreviated_title,omitempty"`
	AlternateTitles         []string             `json:"alternate_titles,omitempty"`
	APCPrices               []*SourceAPC         `json:"apc_prices,omitempty"`
	APCUSD                  *int64               `json:"apc_usd,omitempty"`
	CountryCode             *string              `json:"country_code,omitempty"`
	CountsByYear            []*SourceCountByYear `json:"counts_by_year,omitempty"`
	HostOrganization        *string              `json:"host_organization,omitempty"`
	HostOrganizationLineage []string             `json:"host_organization_lineage,omitempty"`
	HostOrganizationName    *string              `json:"host_organization_name,omitempty"`
	IDs                     *SourceIDs           `json:"ids,omitempty"`
	IsCore                  *bool                `json:"is_core,omitempty"`
	SummaryStats            *SummaryStats        `json:"summary_stats,omitempty"`
	Type                    *string              `json:"type,omitempty"`
}

func (s *Source) Kind() string { return "sources" }

func (s *Source) RecordID() string { return s.ID }

func (s *Source) Field(name string) (any, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "issn_l":
		return deref(s.IssnL), true
	case "issn":
		return strlist(s.Issn), true
	case "display_name":
		return deref(s.DisplayName), true
	case "publisher":
		return deref(s.Publisher), true
	case "works_count":
		return deref(s.WorksCount), true
	case "cited_by_count":
		return deref(s.CitedByCount), true
	case "is_oa":
		return deref(s.IsOA), true
	case "is_in_doaj":
		return deref(s.IsInDoaj), true
	case "homepage_url":
		return deref(s.HomepageURL), true
	case "works_api_url":
		return deref(s.WorksAPIURL), true
	case "updated_date":
		return deref(s.UpdatedDate), true
	}
	return nil, false
}

func (s *Source) Sub(name string) Subrecord {
	switch name {
	case "counts_by_year":
		return many(s.CountsByYear)
	case "ids":
		return one(s.IDs)
	}
	return Subrecord{}
}

type SourceCountByYear struct {
	SourceID *string `json:"source_id,omitempty"`
	countsCore
}

func (c *SourceCountByYear) Field(name string) (any, bool) {
	if name == "source_id" {
		return deref(c.SourceID), true
	}
	return c.countsCore.field(name)
}

type SourceIDs struct {
	SourceID *string  `json:"source_id,omitempty"`
	Openalex *string  `json:"openalex,omitempty"`
	IssnL    *string  `json:"issn_l,omitempty"`
	Issn     []string `json:"issn,omitempty"`
	Mag      *int64   `json:"mag,omitempty"`
	Wikidata *string  `json:"wikidata,omitempty"`
	Fatcat   *string  `json:"fatcat,omitempty"`
}

func (i *SourceIDs) Field(name string) (any, bool) {
	switch name {
	case "source_id":
		return deref(i.SourceID), true
	case "openalex":
		return deref(i.Openalex), true
	case "issn_l":
		return deref(i.IssnL), true
	case "issn":
		return strlist(i.Issn), true
	case "mag":
		return deref(i.Mag), true
	case "wikidata":
		return deref(i.Wikidata), true
	case "fatcat":
		return deref(i.Fatcat), true
	}
	return nil, false
}

// SourceAPC has no table of its own.
type SourceAPC struct {
	Price    *int64  `json:"price,omitempty"`
	Currency *string `json:"currency,omitempty"`
}
