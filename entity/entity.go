// Package entity contains the canonical, typed representation of OpenAlex
// records: one struct per root kind plus the subentity structs that end up in
// their own tables. Construction and invariant checking happens in the
// normalize package; here live the data definitions and a few pure transforms
// (date normalization, abstract reconstruction, text cleanup).
package entity

// Canonical is a fully normalized, invariant checked record of one root kind.
// Column values are read by name, from an explicit per-kind accessor, never
// via reflection.
type Canonical interface {
	Kind() string
	RecordID() string
	// Field returns the value for a root table column, nil for a storage
	// null. The second return is false for column names the kind does not
	// declare.
	Field(name string) (any, bool)
	// Sub returns the subentity slot for a declared subentity name.
	Sub(name string) Subrecord
}

// Subentity is one nested structure destined for its own table row.
type Subentity interface {
	Field(name string) (any, bool)
}

// Subrecord is the tagged shape of a subentity slot: a single instance, a
// list of instances, or absent. At most one of One and Many is set.
type Subrecord struct {
	One  Subentity
	Many []Subentity
}

// Absent reports whether the slot holds no data at all.
func (s Subrecord) Absent() bool {
	return s.One == nil && len(s.Many) == 0
}

// one wraps a single subentity, mapping a nil pointer to an absent slot.
func one[T any, P interface {
	*T
	Subentity
}](p P) Subrecord {
	if p == nil {
		return Subrecord{}
	}
	return Subrecord{One: p}
}

// many wraps a subentity list, mapping an empty list to an absent slot.
func many[T any, P interface {
	*T
	Subentity
}](xs []P) Subrecord {
	if len(xs) == 0 {
		return Subrecord{}
	}
	s := Subrecord{Many: make([]Subentity, len(xs))}
	for i, x := range xs {
		s.Many[i] = x
	}
	return s
}

// deref turns an optional scalar into a column value, nil meaning null.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// strlist passes a string list through, nil staying null.
func strlist(xs []string) any {
	if xs == nil {
		return nil
	}
	return xs
}

// countsCore carries the fields shared by all counts-by-year subentities.
type countsCore struct {
	Year         int64  `json:"year"`
	WorksCount   *int64 `json:"works_count,omitempty"`
	CitedByCount *int64 `json:"cited_by_count,omitempty"`
	OAWorksCount *int64 `json:"oa_works_count,omitempty"`
}

func (c countsCore) field(name string) (any, bool) {
	switch name {
	case "year":
		return c.Year, true
	case "works_count":
		return deref(c.WorksCount), true
	case "cited_by_count":
		return deref(c.CitedByCount), true
	case "oa_works_count":
		return deref(c.OAWorksCount), true
	}
	return nil, false
}

// SummaryStats are citation metrics attached to most root kinds. Not stored
// in a table of their own.
type SummaryStats struct {
	TwoYrMeanCitedness *float64 `json:"2yr_mean_citedness,omitempty"`
	HIndex             *int64   `json:"h_index,omitempty"`
	I10Index           *int64   `json:"i10_index,omitempty"`
}

// Role links an entity to its other roles (institution, funder, publisher).
type Role struct {
	Role       string `json:"role"`
	ID         string `json:"id"`
	WorksCount int64  `json:"works_count"`
}

// DehydratedAuthor is the stripped down author embedded in authorships.
type DehydratedAuthor struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name,omitempty"`
	ORCID       *string `json:"orcid,omitempty"`
}

// DehydratedInstitution is the stripped down institution embedded in
// authorships and author affiliations.
type DehydratedInstitution struct {
	ID          string   `json:"id"`
	CountryCode *string  `json:"country_code,omitempty"`
	DisplayName *string  `json:"display_name,omitempty"`
	ROR         *string  `json:"ror,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Lineage     []string `json:"lineage,omitempty"`
}

// DehydratedSource is the stripped down source embedded in work locations and
// institution repositories.
type DehydratedSource struct {
	ID                      string   `json:"id"`
	IssnL                   *string  `json:"issn_l,omitempty"`
	Issn                    []string `json:"issn,omitempty"`
	DisplayName             *string  `json:"display_name,omitempty"`
	IsOA                    *bool    `json:"is_oa,omitempty"`
	IsInDoaj                *bool    `json:"is_in_doaj,omitempty"`
	HostOrganization        *string  `json:"host_organization,omitempty"`
	HostOrganizationName    *string  `json:"host_organization_name,omitempty"`
	HostOrganizationLineage []string `json:"host_organization_lineage,omitempty"`
	IsCore                  *bool    `json:"is_core,omitempty"`
	Type                    *string  `json:"type,omitempty"`
	Publisher               *string  `json:"publisher,omitempty"`
}
