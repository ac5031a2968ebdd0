package assist

import (
	"fmt"
	"strings"
)

// Schema validation sits between extraction and the caller: a reply that is
// valid JSON but does not honor the requested schema is rejected instead of
// forwarded, and the overall risk level is re-derived rather than trusted.

func validTagType(t TagType) bool {
	switch t {
	case TagPersonalInfo, TagBullying, TagRiskyLink, TagStrangerDanger, TagSafe:
		return true
	}
	return false
}

func validSeverity(s Severity) bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow, SeveritySafe:
		return true
	}
	return false
}

// DeriveRiskLevel computes the overall level from the maximum tag severity:
// danger if any tag is high, caution if any is medium, safe otherwise.
func DeriveRiskLevel(tags []RiskTag) RiskLevel {
	level := RiskSafe
	for _, tag := range tags {
		switch tag.Severity {
		case SeverityHigh:
			return RiskDanger
		case SeverityMedium:
			level = RiskCaution
		}
	}
	return level
}

func mismatch(format string, args ...any) *Error {
	return &Error{
		Kind:    KindSchemaMismatch,
		Message: "the model reply did not match the safety report schema",
		Err:     fmt.Errorf(format, args...),
	}
}

// ValidateSafetyReport checks a decoded safe-chat result against the schema
// contract and normalizes the risk level. message is the original analyzed
// text; every highlight must quote it literally.
func ValidateSafetyReport(r *SafetyReport, message string) error {
	if len(r.Tags) == 0 {
		return mismatch("safety report has no tags")
	}
	for i, tag := range r.Tags {
		if !validTagType(tag.Type) {
			return mismatch("tag %d has unknown type %q", i, tag.Type)
		}
		if !validSeverity(tag.Severity) {
			return mismatch("tag %d has unknown severity %q", i, tag.Severity)
		}
	}

	// The level is determined by the tags, so recompute it instead of
	// rejecting a reply whose headline disagrees with its own tags.
	r.RiskLevel = DeriveRiskLevel(r.Tags)
	if r.RiskLevel == RiskSafe {
		if len(r.Tags) != 1 || r.Tags[0].Type != TagSafe || r.Tags[0].Severity != SeveritySafe {
			return mismatch("safe report must carry exactly one safe tag, got %d tags", len(r.Tags))
		}
	}

	for i, h := range r.Highlights {
		if h.Text == "" {
			return mismatch("highlight %d has empty text", i)
		}
		if !strings.Contains(message, h.Text) {
			return mismatch("highlight %d is not a substring of the message", i)
		}
	}

	if strings.TrimSpace(r.SaferRewrite) == "" {
		return mismatch("saferRewrite is empty")
	}
	if strings.TrimSpace(r.Explanation) == "" {
		return mismatch("explanation is empty")
	}
	return nil
}

const (
	wantKeyPoints = 4
	wantQuestions = 3
	wantOptions   = 4
)

func resourceMismatch(format string, args ...any) *Error {
	return &Error{
		Kind:    KindSchemaMismatch,
		Message: "the model reply did not match the study resource schema",
		Err:     fmt.Errorf(format, args...),
	}
}

// ValidateStudyResource checks a decoded study-helper result against the
// schema contract: presence of the topic and all three explanation tiers,
// exact key point and question cardinalities, and answer indices in range.
func ValidateStudyResource(r *StudyResource) error {
	if strings.TrimSpace(r.Topic) == "" {
		return resourceMismatch("topic is empty")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return resourceMismatch("subject is empty")
	}
	if strings.TrimSpace(r.Explanation.Beginner) == "" ||
		strings.TrimSpace(r.Explanation.Intermediate) == "" ||
		strings.TrimSpace(r.Explanation.Advanced) == "" {
		return resourceMismatch("explanation tiers are incomplete")
	}
	if len(r.KeyPoints) != wantKeyPoints {
		return resourceMismatch("expected %d key points, got %d", wantKeyPoints, len(r.KeyPoints))
	}
	if len(r.PracticeQuestions) != wantQuestions {
		return resourceMismatch("expected %d practice questions, got %d", wantQuestions, len(r.PracticeQuestions))
	}
	for i, q := range r.PracticeQuestions {
		if strings.TrimSpace(q.Question) == "" {
			return resourceMismatch("question %d is empty", i)
		}
		if len(q.Options) != wantOptions {
			return resourceMismatch("question %d has %d options, expected %d", i, len(q.Options), wantOptions)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= wantOptions {
			return resourceMismatch("question %d has correctIndex %d out of range", i, q.CorrectIndex)
		}
	}
	return nil
}
