// Package detect discovers likely reference relationships between sampled
// collections.
package detect

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/schemascope/schemascope/pkg/models"
)

// Strategy produces relationship edges from the assembled collection schemas.
// It is an interface so alternative heuristics (explicit foreign-key
// declarations, value-overlap analysis) can be substituted without touching
// rendering.
type Strategy interface {
	Detect(collections []models.CollectionSchema) []models.RelationshipEdge
}

// referencePattern matches field names built as a word plus a literal "Id"
// suffix, e.g. customerId or orderItemId. Dotted (nested) paths never match
// because the character class excludes the separator.
var referencePattern = regexp.MustCompile(`^([A-Za-z]+)Id$`)

// NamingConvention detects references purely from the <word>Id naming pattern:
// the lower-cased word must appear as a substring of another collection's
// lower-cased name, directly or with an "s"/"es" plural suffix. Self-matches
// are allowed when naming coincides, and every independent match yields its
// own edge; nothing is deduplicated.
type NamingConvention struct {
	logger *zap.Logger
}

// Compile-time interface check.
var _ Strategy = (*NamingConvention)(nil)

// NewNamingConvention creates the naming-heuristic strategy.
func NewNamingConvention(logger *zap.Logger) *NamingConvention {
	return &NamingConvention{logger: logger}
}

// Detect walks collections in input order and field paths in sorted order so
// edge emission is reproducible across runs.
func (d *NamingConvention) Detect(collections []models.CollectionSchema) []models.RelationshipEdge {
	d.logger.Info("Identifying relationships between collections")

	var edges []models.RelationshipEdge
	for _, source := range collections {
		found := 0
		for _, fieldName := range source.Fields.SortedPaths() {
			match := referencePattern.FindStringSubmatch(fieldName)
			if match == nil {
				continue
			}
			referenced := strings.ToLower(match[1])

			for _, target := range collections {
				name := strings.ToLower(target.Name)
				if strings.Contains(name, referenced) ||
					strings.Contains(name, referenced+"s") ||
					strings.Contains(name, referenced+"es") {
					edges = append(edges, models.RelationshipEdge{
						Source: source.Name,
						Target: target.Name,
						Field:  fieldName,
					})
					found++
					d.logger.Info("Found relationship",
						zap.String("source", source.Name),
						zap.String("target", target.Name),
						zap.String("field", fieldName))
				}
			}
		}
		d.logger.Debug("Collection relationship scan done",
			zap.String("collection", source.Name),
			zap.Int("edges", found))
	}

	d.logger.Info("Relationship identification completed", zap.Int("total", len(edges)))
	return edges
}
