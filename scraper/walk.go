package scraper

import "sort"

// FindNode depth-first searches an arbitrarily nested JSON value (as
// decoded into map[string]any / []any / scalars) for the first object
// matching the predicate. The API payloads shift shape between storefronts,
// so we search structurally instead of decoding into fixed types.
//
// Objects are tested before their children. An "@graph" property, the
// JSON-LD convention for node lists, is searched ahead of the remaining
// children. Map keys are visited in sorted order so the first match is
// deterministic.
func FindNode(v any, match func(map[string]any) bool) map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if found := FindNode(item, match); found != nil {
				return found
			}
		}
	case map[string]any:
		if match(t) {
			return t
		}
		if graph, ok := t["@graph"]; ok {
			if found := FindNode(graph, match); found != nil {
				return found
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "@graph" {
				continue
			}
			if found := FindNode(t[k], match); found != nil {
				return found
			}
		}
	}
	return nil
}
