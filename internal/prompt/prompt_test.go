package prompt

import (
	"strings"
	"testing"
)

func TestBuildSafeChat_Deterministic(t *testing.T) {
	a, err := BuildSafeChat("hello there")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	b, err := BuildSafeChat("hello there")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if a != b {
		t.Fatal("expected byte-identical specs for identical input")
	}
}

func TestBuildSafeChat_EmptyMessage(t *testing.T) {
	if _, err := BuildSafeChat("   "); err == nil {
		t.Fatal("expected error for blank message")
	}
}

func TestBuildSafeChat_InstructionPinsContract(t *testing.T) {
	spec, err := BuildSafeChat("meet me at bit.ly/xyz")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	wantFragments := []string{
		`"riskLevel": "safe" | "caution" | "danger"`,
		"[hidden for safety]",
		"***",
		"substrings that literally appear in the message",
		"No markdown fences",
		"stranger danger",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(spec.Instruction, frag) {
			t.Fatalf("instruction missing %q", frag)
		}
	}
	if !strings.Contains(spec.Context, "meet me at bit.ly/xyz") {
		t.Fatalf("context does not carry the message: %q", spec.Context)
	}
}

func TestBuildStudyHelper_Deterministic(t *testing.T) {
	a, err := BuildStudyHelper("science", "why is the sky blue", "advanced")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	b, err := BuildStudyHelper("science", "why is the sky blue", "advanced")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if a != b {
		t.Fatal("expected byte-identical specs for identical input")
	}
}

func TestBuildStudyHelper_EmptySubject(t *testing.T) {
	if _, err := BuildStudyHelper("", "q", "beginner"); err == nil {
		t.Fatal("expected error for blank subject")
	}
}

func TestBuildStudyHelper_QuestionFallback(t *testing.T) {
	spec, err := BuildStudyHelper("science", "", "advanced")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.Contains(spec.Context, fallbackQuestion) {
		t.Fatalf("expected fallback question phrase in context, got %q", spec.Context)
	}
	if !strings.Contains(spec.Context, "Difficulty level: advanced") {
		t.Fatalf("expected difficulty in context, got %q", spec.Context)
	}
}

func TestBuildStudyHelper_DifficultyDefault(t *testing.T) {
	spec, err := BuildStudyHelper("maths", "what are primes", "")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.Contains(spec.Context, "Difficulty level: "+DefaultDifficulty) {
		t.Fatalf("expected default difficulty in context, got %q", spec.Context)
	}
}

func TestBuildStudyHelper_CardinalityRules(t *testing.T) {
	spec, err := BuildStudyHelper("history", "", "")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	for _, frag := range []string{
		"exactly 4 items",
		"exactly 3 items",
		"0-based",
		"No markdown fences",
	} {
		if !strings.Contains(spec.Instruction, frag) {
			t.Fatalf("instruction missing %q", frag)
		}
	}
}
