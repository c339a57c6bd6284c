// Package schema is the static registry for the relational layout of the
// OpenAlex snapshot: one entry per root kind, with the root table, the
// subentity tables, and the set of subentity names that flatten to multiple
// rows. Pure lookup data, no behavior; every other package depends on it and
// it depends on nothing.
package schema

import "fmt"

// Namespace is the postgres schema all tables live under.
const Namespace = "openalex"

// Root kind names, as they appear in the snapshot prefix ("data/works/...").
const (
	KindWorks        = "works"
	KindAuthors      = "authors"
	KindSources      = "sources"
	KindInstitutions = "institutions"
	KindPublishers   = "publishers"
	KindFunders      = "funders"
	KindTopics       = "topics"
	KindConcepts     = "concepts" // deprecated sibling of topics, kept for compatibility
)

// Kinds lists all root kinds in a stable order.
var Kinds = []string{
	KindWorks,
	KindAuthors,
	KindSources,
	KindInstitutions,
	KindPublishers,
	KindFunders,
	KindTopics,
	KindConcepts,
}

// Table is a single storage table with its ordered column list. Column i of
// every emitted row corresponds to Columns[i], that is the whole contract.
type Table struct {
	Name    string
	Columns []string
}

// FK returns the foreign key column of a subentity table, by convention the
// first column.
func (t Table) FK() string {
	return t.Columns[0]
}

// Sub describes one subentity of a root kind.
type Sub struct {
	Name  string // field name in the source record, e.g. "authorships"
	Table Table
	Many  bool // true: one row per list element, false: at most one row
}

// Kind is the full relational layout for one root kind.
type Kind struct {
	Name string
	Root Table
	Subs []Sub // declared order, projection emits tables in this order
}

// Sub returns the subentity declaration by name.
func (k *Kind) Sub(name string) (Sub, bool) {
	for _, s := range k.Subs {
		if s.Name == name {
			return s, true
		}
	}
	return Sub{}, false
}

// TableNames returns root plus all subentity table names, for bulk drop and
// recreate tooling.
func (k *Kind) TableNames() []string {
	names := []string{k.Root.Name}
	for _, s := range k.Subs {
		names = append(names, s.Table.Name)
	}
	return names
}

func tbl(plural string, columns ...string) Table {
	return Table{Name: fmt.Sprintf("%s.%s", Namespace, plural), Columns: columns}
}

// locationColumns are shared by the three location tables of a work.
var locationColumns = []string{
	"work_id", "source_id", "landing_page_url", "pdf_url", "is_oa", "version", "license",
}

var registry = map[string]*Kind{
	KindWorks: {
		Name: KindWorks,
		Root: tbl("works", "id", "doi", "title", "display_name",
			"publication_year", "publication_date", "type", "cited_by_count",
			"is_retracted", "is_paratext", "cited_by_api_url", "abstract",
			"language"),
		Subs: []Sub{
			{Name: "primary_location", Table: tbl("works_primary_locations", locationColumns...)},
			{Name: "locations", Table: tbl("works_locations", locationColumns...), Many: true},
			{Name: "best_oa_location", Table: tbl("works_best_oa_locations", locationColumns...)},
			{Name: "authorships", Table: tbl("works_authorships", "work_id",
				"author_position", "author_id", "institution_id",
				"raw_affiliation_string"), Many: true},
			{Name: "biblio", Table: tbl("works_biblio", "work_id", "volume",
				"issue", "first_page", "last_page")},
			{Name: "topics", Table: tbl("works_topics", "work_id", "topic_id",
				"score"), Many: true},
			{Name: "concepts", Table: tbl("works_concepts", "work_id",
				"concept_id", "score"), Many: true},
			{Name: "ids", Table: tbl("works_ids", "work_id", "openalex",
				"doi", "mag", "pmid", "pmcid")},
			{Name: "mesh", Table: tbl("works_mesh", "work_id",
				"descriptor_ui", "descriptor_name", "qualifier_ui",
				"qualifier_name", "is_major_topic"), Many: true},
			{Name: "open_access", Table: tbl("works_open_access", "work_id",
				"is_oa", "oa_status", "oa_url",
				"any_repository_has_fulltext")},
			{Name: "referenced_works", Table: tbl("works_referenced_works",
				"work_id", "referenced_work_id"), Many: true},
			{Name: "related_works", Table: tbl("works_related_works",
				"work_id", "related_work_id"), Many: true},
		},
	},
	KindAuthors: {
		Name: KindAuthors,
		Root: tbl("authors", "id", "orcid", "display_name",
			"display_name_alternatives", "works_count", "cited_by_count",
			"last_known_institution", "works_api_url", "updated_date"),
		Subs: []Sub{
			{Name: "counts_by_year", Table: tbl("authors_counts_by_year",
				"author_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "ids", Table: tbl("authors_ids", "author_id", "openalex",
				"orcid", "scopus", "twitter", "wikipedia", "mag")},
		},
	},
	KindSources: {
		Name: KindSources,
		Root: tbl("sources", "id", "issn_l", "issn", "display_name",
			"publisher", "works_count", "cited_by_count", "is_oa",
			"is_in_doaj", "homepage_url", "works_api_url", "updated_date"),
		Subs: []Sub{
			{Name: "counts_by_year", Table: tbl("sources_counts_by_year",
				"source_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "ids", Table: tbl("sources_ids", "source_id", "openalex",
				"issn_l", "issn", "mag", "wikidata", "fatcat")},
		},
	},
	KindInstitutions: {
		Name: KindInstitutions,
		Root: tbl("institutions", "id", "ror", "display_name",
			"country_code", "type", "homepage_url", "image_url",
			"image_thumbnail_url", "display_name_acronyms",
			"display_name_alternatives", "works_count", "cited_by_count",
			"works_api_url", "updated_date"),
		Subs: []Sub{
			{Name: "associated_institutions",
				Table: tbl("institutions_associated_institutions",
					"institution_id", "associated_institution_id",
					"relationship"), Many: true},
			{Name: "counts_by_year", Table: tbl("institutions_counts_by_year",
				"institution_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "geo", Table: tbl("institutions_geo", "institution_id",
				"city", "geonames_city_id", "region", "country_code",
				"country", "latitude", "longitude")},
			{Name: "ids", Table: tbl("institutions_ids", "institution_id",
				"openalex", "ror", "grid", "wikipedia", "wikidata", "mag")},
		},
	},
	KindPublishers: {
		Name: KindPublishers,
		Root: tbl("publishers", "id", "display_name", "alternate_titles",
			"country_codes", "hierarchy_level", "parent_publisher",
			"works_count", "cited_by_count", "sources_api_url",
			"updated_date"),
		Subs: []Sub{
			{Name: "counts_by_year", Table: tbl("publishers_counts_by_year",
				"publisher_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "ids", Table: tbl("publishers_ids", "publisher_id",
				"openalex", "ror", "wikidata")},
		},
	},
	KindFunders: {
		Name: KindFunders,
		Root: tbl("funders", "id", "display_name", "alternate_titles",
			"country_code", "description", "homepage_url", "image_url",
			"image_thumbnail_url", "grants_count", "works_count",
			"cited_by_count", "updated_date"),
		Subs: []Sub{
			{Name: "counts_by_year", Table: tbl("funders_counts_by_year",
				"funder_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "ids", Table: tbl("funders_ids", "funder_id", "openalex",
				"ror", "wikidata", "crossref", "doi")},
		},
	},
	KindTopics: {
		Name: KindTopics,
		Root: tbl("topics", "id", "display_name", "subfield_id",
			"subfield_display_name", "field_id", "field_display_name",
			"domain_id", "domain_display_name", "description", "keywords",
			"works_api_url", "wikipedia_id", "works_count", "cited_by_count",
			"updated_date"),
	},
	KindConcepts: {
		Name: KindConcepts,
		Root: tbl("concepts", "id", "wikidata", "display_name", "level",
			"description", "works_count", "cited_by_count", "image_url",
			"image_thumbnail_url", "works_api_url", "updated_date"),
		Subs: []Sub{
			{Name: "ancestors", Table: tbl("concepts_ancestors", "concept_id",
				"ancestor_id"), Many: true},
			{Name: "related_concepts", Table: tbl("concepts_related_concepts",
				"concept_id", "related_concept_id", "score"), Many: true},
			{Name: "counts_by_year", Table: tbl("concepts_counts_by_year",
				"concept_id", "year", "works_count", "cited_by_count",
				"oa_works_count"), Many: true},
			{Name: "ids", Table: tbl("concepts_ids", "concept_id", "openalex",
				"wikidata", "wikipedia", "umls_aui", "umls_cui", "mag")},
		},
	},
}

// Lookup returns the layout for a root kind.
func Lookup(kind string) (*Kind, bool) {
	k, ok := registry[kind]
	return k, ok
}
