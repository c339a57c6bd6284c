package entity

// Topic is the canonical form of one topic record. The domain, field and
// subfield hierarchy is denormalized into sibling scalars during
// normalization, so the root row carries them without a join.
type Topic struct {
	ID                  string              `json:"id"`
	DisplayName         *string             `json:"display_name,omitempty"`
	SubfieldID          *string             `json:"subfield_id,omitempty"`
	SubfieldDisplayName *string             `json:"subfield_display_name,omitempty"`
	FieldID             *string             `json:"field_id,omitempty"`
	FieldDisplayName    *string             `json:"field_display_name,omitempty"`
	DomainID            *string             `json:"domain_id,omitempty"`
	DomainDisplayName   *string             `json:"domain_display_name,omitempty"`
	Description         *string             `json:"description,omitempty"`
	Keywords            []string            `json:"keywords,omitempty"`
	WorksAPIURL         *string             `json:"works_api_url,omitempty"`
	WikipediaID         *string             `json:"wikipedia_id,omitempty"`
	WorksCount          *int64              `json:"works_count,omitempty"`
	CitedByCount        *int64              `json:"cited_by_count,omitempty"`
	UpdatedDate         *string             `json:"updated_date,omitempty"`
	Domain              *TopicDomainOrField `json:"domain,omitempty"`
	TopicField          *TopicDomainOrField `json:"field,omitempty"`
	Subfield            *TopicDomainOrField `json:"subfield,omitempty"`
	Siblings            []*TopicSibling     `json:"siblings,omitempty"` // present in data, not in docs
	IDs                 *TopicIDs           `json:"ids,omitempty"`
}

func (t *Topic) Kind() string { return "topics" }

func (t *Topic) RecordID() string { return t.ID }

func (t *Topic) Field(name string) (any, bool) {
	switch name {
	case "id":
		return t.ID, true
	case "display_name":
		return deref(t.DisplayName), true
	case "subfield_id":
		return deref(t.SubfieldID), true
	case "subfield_display_name":
		return deref(t.SubfieldDisplayName), true
	case "field_id":
		return deref(t.FieldID), true
	case "field_display_name":
		return deref(t.FieldDisplayName), true
	case "domain_id":
		return deref(t.DomainID), true
	case "domain_display_name":
		return deref(t.DomainDisplayName), true
	case "description":
		return deref(t.Description), true
	case "keywords":
		return strlist(t.Keywords), true
	case "works_api_url":
		return deref(t.WorksAPIURL), true
	case "wikipedia_id":
		return deref(t.WikipediaID), true
	case "works_count":
		return deref(t.WorksCount), true
	case "cited_by_count":
		return deref(t.CitedByCount), true
	case "updated_date":
		return deref(t.UpdatedDate), true
	}
	return nil, false
}

func (t *Topic) Sub(name string) Subrecord { return Subrecord{} }

type TopicDomainOrField struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type TopicSibling struct {
	ID          *string `json:"id,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

type TopicIDs struct {
	Openalex  *string `json:"openalex,omitempty"`
	Wikipedia *string `json:"wikipedia,omitempty"`
}
