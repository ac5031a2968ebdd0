// Package prompt builds the instruction/context pairs sent to the model.
// Builders are pure functions: the same inputs always produce byte-identical
// output, and no I/O happens here.
package prompt

import (
	"bytes"
	"strings"
)

// Spec is the two-message prompt sent to the model: Instruction carries the
// role, output schema and rules (system message), Context frames the
// user-supplied content (user message).
type Spec struct {
	Instruction string
	Context     string
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}

func formatRules(rules []string) string {
	var buf strings.Builder
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		buf.WriteString("- ")
		buf.WriteString(r)
		buf.WriteString("\n")
	}
	return strings.TrimRight(buf.String(), "\n")
}

// outputFormatRule is shared by both builders: the extractor only repairs
// JSON syntax, it cannot negotiate schemas, so the instruction must pin the
// output shape completely and forbid anything around it.
const outputFormatRule = "Respond ONLY with a valid JSON object matching the schema above. " +
	"No markdown fences, no extra text before or after the JSON."

func renderInstruction(role, schema string, rules []string) string {
	var buf bytes.Buffer
	writeSection(&buf, "ROLE", role)
	writeSection(&buf, "OUTPUT_SCHEMA", schema)
	writeSection(&buf, "RULES", formatRules(rules))
	writeSection(&buf, "OUTPUT_FORMAT", outputFormatRule)
	return strings.TrimSpace(buf.String()) + "\n"
}
