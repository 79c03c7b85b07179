// recalc recalcula el hato de una finca (o de todas) desde el libro de
// movimientos: borra lotes y existencias, reaplica el libro completo y deja el
// resumen de cabezas al día. Es la herramienta administrativa de recuperación
// tras correcciones masivas de datos.
//
// Uso:
//
//	go run ./cmd/recalc -property <id>
//	go run ./cmd/recalc -all
package main

import (
	"context"
	"flag"

	"github.com/jcastano/ganaderia-api/internal/application/herd"
	"github.com/jcastano/ganaderia-api/internal/infrastructure/postgres"
	"github.com/jcastano/ganaderia-api/pkg/config"
	"github.com/jcastano/ganaderia-api/pkg/logger"
)

func main() {
	propertyID := flag.String("property", "", "ID de la finca a recalcular")
	all := flag.Bool("all", false, "recalcular todas las fincas")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	if *propertyID == "" && !*all {
		log.Fatal().Msg("indicar -property <id> o -all")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	reconcileUC := herd.NewReconcileUseCase(txRunner, cfg.Herd.Species, log)

	ids := []string{*propertyID}
	if *all {
		propertyRepo := postgres.NewPropertyRepository(pool)
		ids, err = propertyRepo.ListIDs()
		if err != nil {
			log.Fatal().Err(err).Msg("listar fincas")
		}
	}

	for _, id := range ids {
		if err := reconcileUC.RebuildFromLedger(ctx, id); err != nil {
			log.Fatal().Err(err).Str("property_id", id).Msg("rebuild del hato")
		}
	}
	log.Info().Int("properties", len(ids)).Msg("recalculo terminado")
}
