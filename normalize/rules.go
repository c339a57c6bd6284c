package normalize

import (
	"strconv"

	"github.com/segmentio/encoding/json"
)

// deepCopy clones the decoded JSON structure so rules never touch the
// caller's map.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func copyMap(m map[string]any) map[string]any {
	return deepCopy(m).(map[string]any)
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// setIfAbsent writes a key only when it has no value yet, which keeps every
// replication rule a no-op on its own output.
func setIfAbsent(m map[string]any, key string, value any) {
	if v, ok := m[key]; !ok || v == nil {
		m[key] = value
	}
}

// injectFK replicates the root identifier into a subentity, or into each
// element of a subentity list, under the given foreign key name.
func injectFK(m map[string]any, sub, fk string) {
	v, ok := m[sub]
	if !ok || v == nil {
		return
	}
	id := m["id"]
	switch t := v.(type) {
	case map[string]any:
		setIfAbsent(t, fk, id)
	case []any:
		for _, e := range t {
			if em, ok := asMap(e); ok {
				setIfAbsent(em, fk, id)
			}
		}
	}
}

// aliasInList copies a key under a second name in every element of a list
// valued field, e.g. a topic's generic id into topic_id.
func aliasInList(m map[string]any, sub, from, to string) {
	l, ok := asList(m[sub])
	if !ok {
		return
	}
	for _, e := range l {
		if em, ok := asMap(e); ok {
			if v, ok := em[from]; ok {
				setIfAbsent(em, to, v)
			}
		}
	}
}

// wrapRelation lifts a list of bare identifier strings into a list of
// relation objects carrying the root id and the other end under otherKey.
// Lists that already hold objects pass through untouched.
func wrapRelation(kind, id string, m map[string]any, field, otherKey string) error {
	l, ok := asList(m[field])
	if !ok {
		return nil
	}
	out := make([]any, 0, len(l))
	for _, e := range l {
		switch t := e.(type) {
		case string:
			out = append(out, map[string]any{
				kindFK(kind): id,
				otherKey:     t,
			})
		case map[string]any:
			out = append(out, t)
		default:
			return violation(kind, id, field, "element is neither identifier nor relation object: %T", e)
		}
	}
	m[field] = out
	return nil
}

func kindFK(kind string) string {
	// singular form of the kind plus _id, e.g. works -> work_id
	return kind[:len(kind)-1] + "_id"
}

// fanOutAuthorships replaces each authorship that names multiple
// institutions with one copy per institution. Authorships without
// institutions keep a single row with no institution attached.
func fanOutAuthorships(m map[string]any) {
	l, ok := asList(m["authorships"])
	if !ok {
		return
	}
	out := make([]any, 0, len(l))
	for _, e := range l {
		em, ok := asMap(e)
		if !ok {
			out = append(out, e)
			continue
		}
		insts, ok := asList(em["institutions"])
		if !ok || len(insts) <= 1 {
			out = append(out, em)
			continue
		}
		for _, inst := range insts {
			cp := copyMap(em)
			cp["institutions"] = []any{deepCopy(inst)}
			out = append(out, cp)
		}
	}
	m["authorships"] = out
}

// collapseEmpty removes declared list fields that are present but empty, so
// they read as absent downstream.
func collapseEmpty(m map[string]any, keys ...string) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if l, isList := asList(v); isList && len(l) == 0 {
				delete(m, k)
			}
		}
	}
}

// decodeJSONString replaces a field holding a JSON document as a string with
// the decoded structure. Fields already holding structure pass through. The
// reverse direction of blob valued columns on the hydration path.
func decodeJSONString(kind, id string, m map[string]any, key string) error {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return violation(kind, id, key, "embedded document does not parse: %v", err)
	}
	m[key] = v
	return nil
}

// stringifyID turns a numeric identifier inside an ids map into its decimal
// string form, matching the canonical string type of the column.
func stringifyID(m map[string]any, key string) {
	ids, ok := asMap(m["ids"])
	if !ok {
		return
	}
	switch t := ids[key].(type) {
	case float64:
		ids[key] = strconv.FormatInt(int64(t), 10)
	case int64:
		ids[key] = strconv.FormatInt(t, 10)
	case int:
		ids[key] = strconv.Itoa(t)
	case json.Number:
		ids[key] = t.String()
	}
}
