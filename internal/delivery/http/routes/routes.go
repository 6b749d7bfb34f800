package routes

import (
	"skill-evolution/internal/delivery/http/handler"
	v1 "skill-evolution/internal/delivery/http/routes/v1"
	"skill-evolution/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	deps v1.Deps
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if r.deps.Hub != nil {
		wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
		app.Get("/ws/progress", wsHandler.HandleProgressWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
