package app

import (
	"context"
	"log"
	"os"
	"time"

	"skill-evolution/internal/config"
	"skill-evolution/internal/database"
	dbpostgres "skill-evolution/internal/database/postgres"
	"skill-evolution/internal/infrastructure/cache"
	"skill-evolution/internal/ws"
)

// Container holds the process-wide dependencies: config, the database pool,
// the redis cache and the progress event hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
