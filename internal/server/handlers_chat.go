package server

import (
	"net/http"
	"strings"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse always carries a reply, even when the model is unavailable.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// handleChat forwards the message to the assistant
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.fail(w, r, &ErrValidation{Field: "message", Message: "is required"})
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Reply: s.chat.Reply(r.Context(), req.Message)})
}
