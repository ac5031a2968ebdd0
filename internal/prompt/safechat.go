package prompt

import (
	"fmt"
	"strings"
)

const safeChatRole = "You are a child online safety assistant for Guardian Classroom, " +
	"an app used by students aged 8-16. Your job is to analyze messages for potential " +
	"risks before a student sends them."

const safeChatSchema = `{
  "riskLevel": "safe" | "caution" | "danger",
  "tags": [
    {
      "type": "personal-info" | "bullying" | "risky-link" | "stranger-danger" | "safe",
      "label": "short label (max 4 words)",
      "description": "child-friendly explanation (1 sentence)",
      "severity": "high" | "medium" | "low" | "safe"
    }
  ],
  "highlights": [
    {
      "text": "exact substring from the message",
      "reason": "short reason label"
    }
  ],
  "saferRewrite": "a rewritten version of the message with risks removed, or the original if safe",
  "explanation": "a friendly, encouraging explanation for a child (1-2 sentences)"
}`

var safeChatRules = []string{
	`riskLevel is "danger" if any tag has severity "high", "caution" if only "medium", "safe" if all clear`,
	`If the message is safe, tags must contain exactly one entry with type "safe" and severity "safe"`,
	"highlights must only contain substrings that literally appear in the message",
	`saferRewrite must replace personal info with "[hidden for safety]" and hurtful words with "***"`,
	"Keep language friendly and age-appropriate (8-16 year olds)",
	"Detect: personal info (phone, email, address, real name, school name, location), " +
		"bullying/hurtful language, shortened/suspicious URLs (bit.ly, tinyurl etc), " +
		"grooming/stranger danger patterns",
}

// BuildSafeChat builds the prompt pair for a message risk analysis.
// The message must be non-empty after trimming.
func BuildSafeChat(message string) (Spec, error) {
	if strings.TrimSpace(message) == "" {
		return Spec{}, fmt.Errorf("prompt: message is empty")
	}
	return Spec{
		Instruction: renderInstruction(safeChatRole, safeChatSchema, safeChatRules),
		Context:     fmt.Sprintf("Analyze this message: %q", message),
	}, nil
}
