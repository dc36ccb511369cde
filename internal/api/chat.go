package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/swiftherb/swiftherb-server/internal/assistant"
)

// Chat handles POST /api/chat: validate the payload, run the assistant
// pipeline, return the assembled reply.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req assistant.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid message format")
		return
	}
	if req.UserMessage == "" {
		Error(w, http.StatusBadRequest, "Invalid message format")
		return
	}

	resp, err := h.svc.Respond(r.Context(), req.Messages, req.UserMessage)
	if err != nil {
		slog.Error("Chat request failed", "error", err)
		Error(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	JSON(w, http.StatusOK, resp)
}
