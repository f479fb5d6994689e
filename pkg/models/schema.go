package models

import "sort"

// FieldType is the semantic type tag inferred for a sampled field.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeInteger     FieldType = "integer"
	FieldTypeFloat       FieldType = "float"
	FieldTypeStringArray FieldType = "string[]"
	FieldTypeArray       FieldType = "array"
	FieldTypeJSON        FieldType = "json"
	FieldTypeUnknown     FieldType = "unknown"
)

// FieldMap maps a dot-joined field path to its inferred type.
//
// Values are FieldType tags when produced by inference. The render-stage
// flattener additionally accepts raw nested documents (map[string]any) as
// values, mirroring the dynamic shape of sampled BSON, so the value type is
// deliberately loose.
type FieldMap map[string]any

// SortedPaths returns the field paths in lexical order. Go map iteration is
// randomized, so every consumer that needs reproducible output goes through
// this.
func (f FieldMap) SortedPaths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// CollectionSchema is the inferred field map for one collection.
type CollectionSchema struct {
	Name   string
	Fields FieldMap
}

// RelationshipEdge is a hypothesized directed reference between two
// collections, inferred from field naming. Multiple matching fields or
// multiple candidate targets produce multiple edges; edges are never
// deduplicated.
type RelationshipEdge struct {
	Source string
	Target string
	// Field is the field name that triggered the match, kept for logging.
	Field string
}

// UnifiedSchema is the full input to diagram rendering: every sampled
// collection plus every detected relationship. Built fresh per run, never
// persisted except as the rendered artifact.
type UnifiedSchema struct {
	Collections   []CollectionSchema
	Relationships []RelationshipEdge
}
