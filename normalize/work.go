package normalize

import (
	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/schema"
)

var workListFields = []string{
	"locations",
	"authorships",
	"topics",
	"concepts",
	"mesh",
	"referenced_works",
	"related_works",
	"counts_by_year",
	"corresponding_author_ids",
	"corresponding_institution_ids",
	"indexed_in",
	"grants",
	"keywords",
	"sustainable_development_goals",
}

var workFKTargets = []string{
	"ids",
	"biblio",
	"open_access",
	"primary_location",
	"best_oa_location",
	"locations",
	"authorships",
	"topics",
	"concepts",
	"mesh",
	"counts_by_year",
	"grants",
	"keywords",
	"sustainable_development_goals",
}

// Work normalizes one raw work record.
func Work(raw map[string]any) (*entity.Work, error) {
	const kind = schema.KindWorks
	m := copyMap(raw)
	id, err := requireID(kind, m)
	if err != nil {
		return nil, err
	}
	for _, sub := range workFKTargets {
		injectFK(m, sub, "work_id")
	}
	replicateLocationSourceIDs(m)
	replicateAuthorIDs(m)
	fanOutAuthorships(m)
	replicateInstitutionIDs(m)
	if err := wrapRelation(kind, id, m, "referenced_works", "referenced_work_id"); err != nil {
		return nil, err
	}
	if err := wrapRelation(kind, id, m, "related_works", "related_work_id"); err != nil {
		return nil, err
	}
	aliasInList(m, "topics", "id", "topic_id")
	aliasInList(m, "concepts", "id", "concept_id")
	collapseEmpty(m, workListFields...)
	var w entity.Work
	if err := decode(kind, id, m, &w); err != nil {
		return nil, err
	}
	if w.Abstract == nil && len(w.AbstractInvertedIndex) > 0 {
		if s := entity.AbstractFromIndex(w.AbstractInvertedIndex); s != "" {
			w.Abstract = &s
		}
	}
	if err := fixDate(kind, id, "publication_date", &w.PublicationDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "created_date", &w.CreatedDate, entity.ISO8601); err != nil {
		return nil, err
	}
	if err := fixDate(kind, id, "updated_date", &w.UpdatedDate, entity.NoTZ); err != nil {
		return nil, err
	}
	if w.BestOALocation != nil {
		if w.BestOALocation.IsOA == nil || !*w.BestOALocation.IsOA {
			return nil, violation(kind, id, "best_oa_location.is_oa", "best open access location is not open access")
		}
	}
	for _, a := range w.Authorships {
		if a == nil || a.Author == nil {
			continue
		}
		if a.AuthorID == nil || *a.AuthorID != a.Author.ID {
			return nil, violation(kind, id, "authorship.author_id", "authorship foreign key does not match embedded author %s", a.Author.ID)
		}
	}
	return &w, nil
}

// replicateLocationSourceIDs fills in the denormalized source identifier on
// every location that embeds a source.
func replicateLocationSourceIDs(m map[string]any) {
	fill := func(v any) {
		loc, ok := asMap(v)
		if !ok {
			return
		}
		src, ok := asMap(loc["source"])
		if !ok {
			return
		}
		if sid, ok := src["id"]; ok {
			setIfAbsent(loc, "source_id", sid)
		}
	}
	fill(m["primary_location"])
	fill(m["best_oa_location"])
	if l, ok := asList(m["locations"]); ok {
		for _, e := range l {
			fill(e)
		}
	}
}

// replicateInstitutionIDs fills in the denormalized institution identifier
// on authorships that carry exactly one institution, which after fan-out is
// all of them.
func replicateInstitutionIDs(m map[string]any) {
	l, ok := asList(m["authorships"])
	if !ok {
		return
	}
	for _, e := range l {
		em, ok := asMap(e)
		if !ok {
			continue
		}
		insts, ok := asList(em["institutions"])
		if !ok || len(insts) != 1 {
			continue
		}
		if inst, ok := asMap(insts[0]); ok {
			if iid, ok := inst["id"]; ok {
				setIfAbsent(em, "institution_id", iid)
			}
		}
	}
}

// replicateAuthorIDs fills in the denormalized author identifier on every
// authorship that embeds an author.
func replicateAuthorIDs(m map[string]any) {
	l, ok := asList(m["authorships"])
	if !ok {
		return
	}
	for _, e := range l {
		em, ok := asMap(e)
		if !ok {
			continue
		}
		author, ok := asMap(em["author"])
		if !ok {
			continue
		}
		if aid, ok := author["id"]; ok {
			setIfAbsent(em, "author_id", aid)
		}
	}
}
