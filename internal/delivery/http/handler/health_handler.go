package handler

import (
	"context"
	"time"

	"skill-evolution/internal/database"
	"skill-evolution/internal/infrastructure/cache"
	"skill-evolution/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unconfigured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "down"
	}

	data := map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if dbStatus != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
