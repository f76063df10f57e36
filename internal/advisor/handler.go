package advisor

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat — POST /api/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	// пустое или битое тело = пустой prompt
	var req ChatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	reply, err := h.svc.Reply(r.Context(), req.Prompt)
	switch {
	case errors.Is(err, ErrMissingPrompt):
		writeJSON(w, http.StatusBadRequest, ChatResponse{Reply: MissingPromptReply})
	case err != nil:
		writeJSON(w, http.StatusBadGateway, ChatResponse{Reply: UnavailableReply})
	default:
		writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
