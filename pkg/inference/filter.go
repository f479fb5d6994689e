package inference

import "github.com/schemascope/schemascope/pkg/models"

// FilterFields applies the configured allow-list and deny-list to an assembled
// field map. A non-empty allow-list keeps only the named paths; the deny-list
// then drops its paths unconditionally. A nil or empty allow-list keeps
// everything.
func FilterFields(fields models.FieldMap, allowList, denyList []string) models.FieldMap {
	filtered := make(models.FieldMap, len(fields))

	if len(allowList) > 0 {
		allowed := make(map[string]struct{}, len(allowList))
		for _, name := range allowList {
			allowed[name] = struct{}{}
		}
		for path, fieldType := range fields {
			if _, ok := allowed[path]; ok {
				filtered[path] = fieldType
			}
		}
	} else {
		for path, fieldType := range fields {
			filtered[path] = fieldType
		}
	}

	for _, name := range denyList {
		delete(filtered, name)
	}
	return filtered
}
