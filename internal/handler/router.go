package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AB-bunny178/mindease-chatbot/backend/internal/handler/chat"
	middlewarePkg "github.com/AB-bunny178/mindease-chatbot/backend/internal/middleware"
	chatService "github.com/AB-bunny178/mindease-chatbot/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services. With lazyInit the explicit
// POST /init route is exposed instead of initializing storage at startup.
func NewRouter(chatSvc *chatService.Service, lazyInit bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(chatSvc, lazyInit)
	chatHandler.RegisterRoutes(r)

	return r
}
