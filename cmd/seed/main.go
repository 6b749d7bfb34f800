// Command seed applies pending migrations and runs the idempotent seeders.
// Safe to run repeatedly; already-applied migrations and existing seed rows
// are skipped.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skill-evolution/internal/config"
	"skill-evolution/internal/database/migration"
	dbpostgres "skill-evolution/internal/database/postgres"
	"skill-evolution/internal/database/seeder"
)

func main() {
	migrationsDir := flag.String("migrations", "", "migrations directory (default internal/database/migrations)")
	skipSeed := flag.Bool("skip-seed", false, "apply migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	runner := migration.Runner{Dir: *migrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Printf("Seed | migrations applied")

	if *skipSeed {
		return
	}

	sr := seeder.Runner{Seeders: seeder.Defaults()}
	if err := sr.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seed | done")
}
