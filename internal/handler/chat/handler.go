package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/AB-bunny178/mindease-chatbot/backend/internal/service/chat"
	"github.com/AB-bunny178/mindease-chatbot/backend/pkg/utils"
)

// Handler exposes the chat endpoints.
type Handler struct {
	chatSvc  *chatservice.Service
	lazyInit bool
}

// New creates the chat handler. With lazyInit the storage schema is created
// through POST /init instead of at process startup.
func New(chatSvc *chatservice.Service, lazyInit bool) *Handler {
	return &Handler{
		chatSvc:  chatSvc,
		lazyInit: lazyInit,
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/moods", h.handleMoods)
	if h.lazyInit {
		r.Post("/init", h.handleInit)
	}
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
		// Voice is accepted from older clients but carries no behavior.
		Voice bool `json:"voice"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "no message provided")
		return
	}

	exchange, err := h.chatSvc.Respond(r.Context(), payload.Message)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"reply":    exchange.Reply,
		"mood":     exchange.Mood,
		"polarity": exchange.Polarity,
	})
}

func (h *Handler) handleMoods(w http.ResponseWriter, r *http.Request) {
	entries, err := h.chatSvc.History(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (h *Handler) handleInit(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.InitializeStore(r.Context()); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "msg": "DB initialized"})
}
