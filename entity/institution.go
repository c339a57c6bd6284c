package entity

// Institution is the canonical form of one institution record.
type Institution struct {
	ID                      string                              `json:"id"`
	ROR                     *string                             `json:"ror,omitempty"`
	Lineage                 []string                            `json:"lineage,omitempty"`
	DisplayName             *string                             `json:"display_name,omitempty"`
	CountryCode             *string                             `json:"country_code,omitempty"`
	Type                    *string                             `json:"type,omitempty"`
	HomepageURL             *string                             `json:"homepage_url,omitempty"`
	ImageURL                *string                             `json:"image_url,omitempty"`
	ImageThumbnailURL       *string                             `json:"image_thumbnail_url,omitempty"`
	DisplayNameAcronyms     []string                            `json:"display_name_acronyms,omitempty"`
	DisplayNameAlternatives []string                            `json:"display_name_alternatives,omitempty"`
	WorksCount              *int64                              `json:"works_count,omitempty"`
	CitedByCount            *int64                              `json:"cited_by_count,omitempty"`
	WorksAPIURL             *string                             `json:"works_api_url,omitempty"`
	UpdatedDate             *string                             `json:"updated_date,omitempty"`
	CreatedDate             *string                             `json:"created_date,omitempty"`
	Geo                     *InstitutionGeo                     `json:"geo,omitempty"`
	CountsByYear            []*InstitutionCountByYear           `json:"counts_by_year,omitempty"`
	IDs                     *InstitutionIDs                     `json:"ids,omitempty"`
	AssociatedInstitutions  []*InstitutionAssociatedInstitution `json:"associated_institutions,omitempty"`
	IsSupersystem           *bool                               `json:"is_supersystem,omitempty"`
	International           *InstitutionInternational           `json:"international,omitempty"`
	Repositories            []*DehydratedSource                 `json:"repositories,omitempty"`
	SummaryStats            *SummaryStats                       `json:"summary_stats,omitempty"`
	Roles                   []*Role                             `json:"roles,omitempty"`
}

func (i *Institution) Kind() string { return "institutions" }

func (i *Institution) RecordID() string { return i.ID }

func (i *Institution) Field(name string) (any, bool) {
	switch name {
	case "id":
		return i.ID, true
	case "ror":
		return deref(i.ROR), true
	case "display_name":
		return deref(i.DisplayName), true
	case "country_code":
		return deref(i.CountryCode), true
	case "type":
		return deref(i.Type), true
	case "homepage_url":
		return deref(i.HomepageURL), true
	case "image_url":
		return deref(i.ImageURL), true
	case "image_thumbnail_url":
		return deref(i.ImageThumbnailURL), true
	case "display_name_acronyms":
		return strlist(i.DisplayNameAcronyms), true
	case "display_name_alternatives":
		return strlist(i.DisplayNameAlternatives), true
	case "works_count":
		return deref(i.WorksCount), true
	case "cited_by_count":
		return deref(i.CitedByCount), true
	case "works_api_url":
		return deref(i.WorksAPIURL), true
	case "updated_date":
		return deref(i.UpdatedDate), true
	}
	return nil, false
}

func (i *Institution) Sub(name string) Subrecord {
	switch name {
	case "associated_institutions":
		return many(i.AssociatedInstitutions)
	case "counts_by_year":
		return many(i.CountsByYear)
	case "geo":
		return one(i.Geo)
	case "ids":
		return one(i.IDs)
	}
	return Subrecord{}
}

type InstitutionAssociatedInstitution struct {
	InstitutionID           *string  `json:"institution_id,omitempty"`
	AssociatedInstitutionID *string  `json:"associated_institution_id,omitempty"`
	Relationship            *string  `json:"relationship,omitempty"`
	CountryCode             *string  `json:"country_code,omitempty"`
	DisplayName             *string  `json:"display_name,omitempty"`
	ROR                     *string  `json:"ror,omitempty"`
	Type                    *string  `json:"type,omitempty"`
	Lineage                 []string `json:"lineage,omitempty"`
}

func (a *InstitutionAssociatedInstitution) Field(name string) (any, bool) {
	switch name {
	case "institution_id":
		return deref(a.InstitutionID), true
	case "associated_institution_id":
		return deref(a.AssociatedInstitutionID), true
	case "relationship":
		return deref(a.Relationship), true
	}
	return nil, false
}

type InstitutionCountByYear struct {
	InstitutionID *string `json:"institution_id,omitempty"`
	countsCore
}

func (c *InstitutionCountByYear) Field(name string) (any, bool) {
	if name == "institution_id" {
		return deref(c.InstitutionID), true
	}
	return c.countsCore.field(name)
}

type InstitutionGeo struct {
	InstitutionID  *string  `json:"institution_id,omitempty"`
	City           *string  `json:"city,omitempty"`
	GeonamesCityID *string  `json:"geonames_city_id,omitempty"`
	Region         *string  `json:"region,omitempty"`
	CountryCode    *string  `json:"country_code,omitempty"`
	Country        *string  `json:"country,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

func (g *InstitutionGeo) Field(name string) (any, bool) {
	switch name {
	case "institution_id":
		return deref(g.InstitutionID), true
	case "city":
		return deref(g.City), true
	case "geonames_city_id":
		return deref(g.GeonamesCityID), true
	case "region":
		return deref(g.Region), true
	case "country_code":
		return deref(g.CountryCode), true
	case "country":
		return deref(g.Country), true
	case "latitude":
		return deref(g.Latitude), true
	case "longitude":
		return deref(g.Longitude), true
	}
	return nil, false
}

type InstitutionIDs struct {
	InstitutionID *string `json:"institution_id,omitempty"`
	Openalex      *string `json:"openalex,omitempty"`
	ROR           *string `json:"ror,omitempty"`
	Grid          *string `json:"grid,omitempty"`
	Wikidata      *string `json:"wikidata,omitempty"`
	Wikipedia     *string `json:"wikipedia,omitempty"`
	Mag           *int64  `json:"mag,omitempty"`
}

func (i *InstitutionIDs) Field(name string) (any, bool) {
	switch name {
	case "institution_id":
		return deref(i.InstitutionID), true
	case "openalex":
		return deref(i.Openalex), true
	case "ror":
		return deref(i.ROR), true
	case "grid":
		return deref(i.Grid), true
	case "wikipedia":
		return deref(i.Wikipedia), true
	case "wikidata":
		return deref(i.Wikidata), true
	case "mag":
		return deref(i.Mag), true
	}
	return nil, false
}

// InstitutionInternational keeps per-language display names, embedded only.
type InstitutionInternational struct {
	DisplayName map[string]string `json:"display_name,omitempty"`
}
