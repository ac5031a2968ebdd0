package server

import (
	"net/http"

	"guardian/internal/gateway/handler"
	"guardian/internal/gateway/middleware"
)

func NewMux(assistHandler *handler.AssistHandler, feedHandler *handler.FeedHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/assist", assistHandler.HandleAssist)
	mux.HandleFunc("/api/feed", feedHandler.HandleFeed)
	mux.HandleFunc("/healthz", handler.HandleHealth)

	return middleware.CORS(mux)
}
