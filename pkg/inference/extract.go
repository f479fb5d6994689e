package inference

import "github.com/schemascope/schemascope/pkg/models"

// identityKey is skipped unconditionally at the top level of every document.
// Nested documents get no special casing for it.
const identityKey = "_id"

// DocumentFields walks one document and returns a flat mapping from dot-joined
// field path to type tag. Nested documents contribute both their own json
// entry and all of their flattened children (e.g. "address" -> json plus
// "address.city" -> string).
//
// prefix, when non-empty, must already carry its trailing separator; callers
// other than the recursion pass "".
func DocumentFields(doc map[string]any, prefix string) models.FieldMap {
	fields := make(models.FieldMap, len(doc))
	for key, value := range doc {
		if prefix == "" && key == identityKey {
			continue
		}
		fieldName := prefix + key

		fieldType := Classify(value)
		fields[fieldName] = fieldType

		if fieldType == models.FieldTypeJSON {
			if nested := AsDocument(value); nested != nil {
				for k, v := range DocumentFields(nested, fieldName+".") {
					fields[k] = v
				}
			}
		}
	}
	return fields
}
