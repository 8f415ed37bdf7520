package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/balance/internal/config"
	"github.com/robalobadob/balance/internal/database"
	"github.com/robalobadob/balance/internal/httpserver"
	"github.com/robalobadob/balance/internal/store"
	"github.com/robalobadob/balance/migrations"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET not set; using the development secret")
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := database.Migrate(db, migrations.FS); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	mem := store.NewMemoryStore(0)
	srv := httpserver.New(cfg, mem, db)
	log.Info().Str("port", cfg.Port).Msg("starting balance server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
