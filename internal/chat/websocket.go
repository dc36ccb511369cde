package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/swiftherb/swiftherb-server/internal/assistant"
	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// WebSocketHandler serves the persistent chat transport. Each
// connection carries a sequence of chat requests; the conversation
// history stays client-side and is resent with every request.
type WebSocketHandler struct {
	svc *assistant.Service
	sm  *SessionManager
}

// NewWebSocketHandler creates a new WebSocket chat handler.
func NewWebSocketHandler(svc *assistant.Service, sm *SessionManager) *WebSocketHandler {
	return &WebSocketHandler{svc: svc, sm: sm}
}

// wsRequest is one inbound chat turn.
type wsRequest struct {
	Messages    []domain.Message `json:"messages"`
	UserMessage string           `json:"userMessage"`
}

// wsReply wraps a chat response or a per-turn error.
type wsReply struct {
	Type              string           `json:"type"`
	Content           string           `json:"content,omitempty"`
	Products          []domain.Product `json:"products,omitempty"`
	BundleSuggestions []domain.Product `json:"bundleSuggestions,omitempty"`
	Error             string           `json:"error,omitempty"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()
	slog.Info("WebSocket chat connection request", "session_id", sessionID, "ip", r.RemoteAddr)

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "session_id", sessionID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "session ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "session_id", sessionID)
		}
	}()

	h.sm.Register(sessionID, ws)
	defer h.sm.Unregister(sessionID, ws)

	ctx := r.Context()
	for {
		var req wsRequest
		if err := wsjson.Read(ctx, ws, &req); err != nil {
			if websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled) {
				return
			}
			slog.Debug("WebSocket read error", "error", err, "session_id", sessionID)
			return
		}

		if req.UserMessage == "" {
			h.write(ctx, ws, sessionID, wsReply{Type: "error", Error: "Invalid message format"})
			continue
		}

		resp, err := h.svc.Respond(ctx, req.Messages, req.UserMessage)
		if err != nil {
			slog.Error("Chat turn failed", "error", err, "session_id", sessionID)
			h.write(ctx, ws, sessionID, wsReply{Type: "error", Error: "Failed to process message"})
			continue
		}

		h.write(ctx, ws, sessionID, wsReply{
			Type:              "response",
			Content:           resp.Content,
			Products:          resp.Products,
			BundleSuggestions: resp.BundleSuggestions,
		})
	}
}

func (h *WebSocketHandler) write(ctx context.Context, ws *websocket.Conn, sessionID string, reply wsReply) {
	if err := wsjson.Write(ctx, ws, reply); err != nil {
		slog.Debug("WebSocket write error", "error", err, "session_id", sessionID)
	}
}
