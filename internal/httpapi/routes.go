package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Razil2005/wordGame/internal/registry"
	"github.com/Razil2005/wordGame/internal/ws"
)

func SetupRoutes(reg *registry.Registry, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/healthz", Healthz)
	r.Get("/rooms/{code}", RoomExists(reg))
	r.Get("/ws", ws.Handler(reg, log))
	return r
}
