package handler

import (
	"net/http"

	"guardian/internal/feed"
)

// FeedHandler serves the curated learning-feed topics.
type FeedHandler struct{}

func NewFeedHandler() *FeedHandler { return &FeedHandler{} }

func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topics": feed.Topics(),
	})
}
