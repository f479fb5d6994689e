// Package prompts builds the LLM prompt text used by the correction pass.
package prompts

import (
	"fmt"
	"strings"
)

// BuildDiagramCorrectionPrompt creates the prompt asking the model to repair a
// draft Mermaid erDiagram: deduplicate repeated type tokens, fix spacing, and
// keep underscore-converted field names intact.
func BuildDiagramCorrectionPrompt(diagram string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a MongoDB schema validator. Please review and fix the following Mermaid diagram:\n")
	prompt.WriteString("1. Remove any duplicate type declarations (e.g., 'string string' should be just 'string')\n")
	prompt.WriteString("2. Ensure proper spacing between entities\n")
	prompt.WriteString("3. Fix any syntax errors\n")
	prompt.WriteString("4. Keep field names with underscores (dots should already be replaced)\n")
	prompt.WriteString("5. Return only the fixed Mermaid diagram, nothing else\n\n")
	prompt.WriteString("Here's the diagram to fix:\n\n")
	prompt.WriteString(fmt.Sprintf("%s\n", diagram))

	return prompt.String()
}

// BuildDiagramCorrectionSystemMessage returns the system message for the
// correction call.
func BuildDiagramCorrectionSystemMessage() string {
	return "You are a MongoDB schema validator. Only output the fixed Mermaid diagram."
}
