package feed

import "testing"

func TestTopics_ContentSanity(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatal("feed is empty")
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		if topic.ID == "" || topic.Title == "" || topic.Summary == "" {
			t.Fatalf("topic %q has empty required fields", topic.ID)
		}
		if seen[topic.ID] {
			t.Fatalf("duplicate topic id %q", topic.ID)
		}
		seen[topic.ID] = true
		for i, q := range topic.Quiz {
			if len(q.Options) != 4 {
				t.Fatalf("topic %q quiz %d has %d options", topic.ID, i, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Fatalf("topic %q quiz %d index out of range", topic.ID, i)
			}
		}
	}
}

func TestTopics_CallerCannotMutateFeed(t *testing.T) {
	a := Topics()
	a[0].Title = "tampered"
	b := Topics()
	if b[0].Title == "tampered" {
		t.Fatal("feed content leaked to callers by reference")
	}
}
