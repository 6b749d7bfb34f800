package app

import (
	"fmt"
	"strings"

	"skill-evolution/internal/config"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/delivery/http/routes"
	v1 "skill-evolution/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app, the global middleware chain
// and every route. The returned cleanup closes the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	metricsMw := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)

	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())
	f.Use(metricsMw.Middleware())

	registry := routes.NewRegistry(v1.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		Logger: c.Logger,
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
