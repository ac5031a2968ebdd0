package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"guardian/internal/assist"
)

// AssistHandler exposes the dispatcher over a single JSON POST endpoint.
// Every failure is reduced to {"error": message}; internal kinds only drive
// the status code and the server-side log line.
type AssistHandler struct {
	dispatcher *assist.Dispatcher
	log        *zap.Logger
}

func NewAssistHandler(dispatcher *assist.Dispatcher, log *zap.Logger) *AssistHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistHandler{dispatcher: dispatcher, log: log}
}

type assistRequest struct {
	Task    string            `json:"task"`
	Payload map[string]string `json:"payload"`
}

func (h *AssistHandler) HandleAssist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var in assistRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Debug("rejected unreadable assist request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(in.Task) == "" || in.Payload == nil {
		writeError(w, http.StatusBadRequest, "missing task or payload")
		return
	}

	result, err := h.dispatcher.Handle(r.Context(), assist.Task(in.Task), assist.Payload(in.Payload))
	if err != nil {
		writeError(w, assist.StatusHint(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
