// Package diagram renders inferred schemas into Mermaid erDiagram text and
// normalizes the result into valid output.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/schemascope/schemascope/pkg/models"
)

// relationshipToken is the fixed Mermaid cardinality used for every detected
// reference edge.
const relationshipToken = "||--o{"

// relationshipLabel is the fixed label attached to every edge.
const relationshipLabel = ": references"

// Render serializes the unified schema into raw erDiagram body text: one
// entity block per collection in input order, then one line per relationship
// edge. The erDiagram header and closing fence are owned by the normalizer,
// which always post-processes this output.
func Render(schema models.UnifiedSchema) string {
	var sb strings.Builder

	for _, collection := range schema.Collections {
		sb.WriteString(collection.Name + " {\n")

		for _, path := range collection.Fields.SortedPaths() {
			value := collection.Fields[path]
			if nested := nestedDocument(value); nested != nil {
				// A raw nested structure leaked through inference; flatten it
				// with the render-stage (underscore-joined) convention.
				flattened := FlattenNested(nested, path)
				keys := make([]string, 0, len(flattened))
				for k := range flattened {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					sb.WriteString(fmt.Sprintf("    %s %s\n", flattened[k], k))
				}
				continue
			}
			sb.WriteString(fmt.Sprintf("    %v %s\n", value, path))
		}

		sb.WriteString("}\n\n")
	}

	for _, edge := range schema.Relationships {
		sb.WriteString(fmt.Sprintf("    %s %s %s %s\n",
			edge.Source, relationshipToken, edge.Target, relationshipLabel))
	}

	return sb.String()
}

// FlattenNested flattens a nested field-value structure into simplified type
// strings keyed by underscore-joined names.
//
// This is deliberately a separate convention from the dot-joined paths the
// inference package produces: nested objects recurse as parent_child, and an
// array of objects contributes both "parent -> array" and its first element's
// fields under parent_item. Do not unify the two; which fields collapse
// together in the final diagram depends on the distinction.
func FlattenNested(nested map[string]any, parentKey string) map[string]string {
	flattened := make(map[string]string, len(nested))
	for key, value := range nested {
		newKey := key
		if parentKey != "" {
			newKey = parentKey + "_" + key
		}

		if doc := nestedDocument(value); doc != nil {
			for k, v := range FlattenNested(doc, newKey) {
				flattened[k] = v
			}
			continue
		}

		if elems := sequenceValues(value); len(elems) > 0 {
			if first := nestedDocument(elems[0]); first != nil {
				flattened[newKey] = "array"
				for k, v := range FlattenNested(first, newKey+"_item") {
					flattened[k] = v
				}
				continue
			}
		}

		flattened[newKey] = SimplifiedType(value)
	}
	return flattened
}

// SimplifiedType converts a raw value into the simplified schema type string
// used by the render-stage flattener. Unlike inference.Classify, arrays report
// their first element's type as array<T> and the fallback tag is "unknown".
func SimplifiedType(value any) string {
	if doc := nestedDocument(value); doc != nil {
		return string(models.FieldTypeJSON)
	}
	if elems, ok := sequence(value); ok {
		if len(elems) > 0 {
			return fmt.Sprintf("array<%s>", SimplifiedType(elems[0]))
		}
		return string(models.FieldTypeArray)
	}

	switch value.(type) {
	case bool:
		return string(models.FieldTypeBoolean)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return string(models.FieldTypeInteger)
	case float32, float64:
		return string(models.FieldTypeFloat)
	case string:
		return string(models.FieldTypeString)
	default:
		return string(models.FieldTypeUnknown)
	}
}

// nestedDocument returns the value as a plain map when it is a document shape,
// nil otherwise.
func nestedDocument(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case primitive.M:
		return map[string]any(v)
	case primitive.D:
		return v.Map()
	default:
		return nil
	}
}

// sequenceValues returns the elements of an array-shaped value, nil otherwise.
func sequenceValues(value any) []any {
	elems, _ := sequence(value)
	return elems
}

func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case primitive.A:
		return []any(v), true
	case []string:
		elems := make([]any, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return elems, true
	default:
		return nil, false
	}
}
