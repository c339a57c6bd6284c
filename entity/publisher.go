package entity

// Publisher is the canonical form of one publisher record.
type Publisher struct {
	ID                string                  `json:"id"`
	DisplayName       *string                 `json:"display_name,omitempty"`
	AlternateTitles   []string                `json:"alternate_titles,omitempty"`
	CountryCodes      []string                `json:"country_codes,omitempty"`
	HierarchyLevel    *int64                  `json:"hierarchy_level,omitempty"`
	ParentPublisher   *ParentPublisher        `json:"parent_publisher,omitempty"`
	WorksCount        *int64                  `json:"works_count,omitempty"`
	CitedByCount      *int64                  `json:"cited_by_count,omitempty"`
	SourcesAPIURL     *string                 `json:"sources_api_url,omitempty"`
	UpdatedDate       *string                 `json:"updated_date,omitempty"`
	CreatedDate       *string                 `json:"created_date,omitempty"`
	CountsByYear      []*PublisherCountByYear `json:"counts_by_year,omitempty"`
	IDs               *PublisherIDs           `json:"ids,omitempty"`
	ImageURL          *string                 `json:"image_url,omitempty"`
	ImageThumbnailURL *string                 `json:"image_thumbnail_url,omitempty"`
	Lineage           []string                `json:"lineage,omitempty"`
	Roles             []*Role                 `json:"roles,omitempty"`
	SummaryStats      *SummaryStats           `json:"summary_stats,omitempty"`
}

func (p *Publisher) Kind() string { return "publishers" }

func (p *Publisher) RecordID() string { return p.ID }

func (p *Publisher) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "display_name":
		return deref(p.DisplayName), true
	case "alternate_titles":
		return strlist(p.AlternateTitles), true
	case "country_codes":
		return strlist(p.CountryCodes), true
	case "hierarchy_level":
		return deref(p.HierarchyLevel), true
	case "parent_publisher":
		if p.ParentPublisher == nil {
			return nil, true
		}
		return p.ParentPublisher, true
	case "works_count":
		return deref(p.WorksCount), true
	case "cited_by_count":
		return deref(p.CitedByCount), true
	case "sources_api_url":
		return deref(p.SourcesAPIURL), true
	case "updated_date":
		return deref(p.UpdatedDate), true
	}
	return nil, false
}

func (p *Publisher) Sub(name string) Subrecord {
	switch name {
	case "counts_by_year":
		return many(p.CountsByYear)
	case "ids":
		return one(p.IDs)
	}
	return Subrecord{}
}

// ParentPublisher projects to a compact encoded blob on the root row.
type ParentPublisher struct {
	ID          *string `json:"id,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

type PublisherCountByYear struct {
	PublisherID *string `json:"publisher_id,omitempty"`
	countsCore
}

func (c *PublisherCountByYear) Field(name string) (any, bool) {
	if name == "publisher_id" {
		return deref(c.PublisherID), true
	}
	return c.countsCore.field(name)
}

type PublisherIDs struct {
	PublisherID *string `json:"publisher_id,omitempty"`
	Openalex    *string `json:"openalex,omitempty"`
	ROR         *string `json:"ror,omitempty"`
	Wikidata    *string `json:"wikidata,omitempty"`
}

func (i *PublisherIDs) Field(name string) (any, bool) {
	switch name {
	case "publisher_id":
		return deref(i.PublisherID), true
	case "openalex":
		return deref(i.Openalex), true
	case "ror":
		return deref(i.ROR), true
	case "wikidata":
		return deref(i.Wikidata), true
	}
	return nil, false
}
