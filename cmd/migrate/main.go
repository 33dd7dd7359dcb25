// Comando migrate aplica las migraciones SQL embebidas pendientes y termina.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/stockops-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockops-api/pkg/config"
	"github.com/jhoicas/stockops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) == 0 {
		log.Info().Msg("esquema al día")
		return
	}
	log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
}
