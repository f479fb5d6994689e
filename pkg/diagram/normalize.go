package diagram

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/schemascope/schemascope/pkg/llm"
)

// Header is the fixed diagram-type marker opening every artifact.
const Header = "erDiagram"

// closingFence terminates the artifact. It is an artifact of the target
// rendering format and part of the output contract; keep it literal.
const closingFence = "```"

// Normalizer turns raw rendered diagram text into the final artifact content.
// The correction pass is best-effort; the deterministic cleanup always runs.
type Normalizer struct {
	corrector llm.TextCorrector
	logger    *zap.Logger
}

// NewNormalizer creates a Normalizer with the injected corrector.
func NewNormalizer(corrector llm.TextCorrector, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		corrector: corrector,
		logger:    logger,
	}
}

// Normalize runs the optional correction pass and the deterministic cleanup,
// then assembles header, cleaned lines and closing fence. A correction
// failure falls back to the unmodified input and never aborts the pipeline.
func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	content := raw
	corrected, err := n.corrector.Correct(ctx, raw)
	if err != nil {
		n.logger.Warn("Diagram correction failed, using uncorrected text", zap.Error(err))
	} else {
		content = corrected
	}

	cleaned := Clean(content)

	var sb strings.Builder
	if firstLine(cleaned) != Header {
		sb.WriteString(Header + "\n")
	}
	sb.WriteString(cleaned)
	sb.WriteString("\n" + closingFence + "\n")
	return sb.String()
}

// Clean is the deterministic cleanup pass. It replaces every '.' with '_',
// re-emits block-opening and block-closing lines with fixed formatting,
// reorders "field: type" notation into four-space-indented "field type"
// lines, and passes blank lines and the header marker through trimmed.
// Running Clean twice over dot-free text yields identical output.
func Clean(content string) string {
	var cleanedLines []string
	currentEntity := ""

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.ReplaceAll(rawLine, ".", "_")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == Header {
			cleanedLines = append(cleanedLines, trimmed)
			continue
		}

		// Entity declarations. A '{' anywhere marks the line as block-opening,
		// which also swallows relationship lines (their cardinality token
		// contains one); the correction pass is what historically repaired
		// those.
		if strings.Contains(line, "{") {
			currentEntity = strings.SplitN(trimmed, " ", 2)[0]
			cleanedLines = append(cleanedLines, currentEntity+" {")
			continue
		}
		if strings.Contains(line, "}") {
			cleanedLines = append(cleanedLines, "}")
			currentEntity = ""
			continue
		}

		// Field declarations in "field: type" notation.
		if strings.Contains(line, ":") && !strings.HasSuffix(trimmed, "{") {
			parts := strings.Split(trimmed, ":")
			fieldName := strings.TrimSpace(parts[0])
			fieldType := strings.TrimSpace(parts[1])
			cleanedLines = append(cleanedLines, "    "+fieldName+" "+fieldType)
			continue
		}

		// Other lines within an entity get re-indented as-is.
		if currentEntity != "" {
			tokens := strings.Fields(trimmed)
			first := tokens[0]
			remaining := strings.Join(tokens[1:], " ")
			cleanedLines = append(cleanedLines, "    "+first+" "+remaining)
		} else {
			cleanedLines = append(cleanedLines, trimmed)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
