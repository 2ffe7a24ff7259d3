package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-backend/pkg/config"
	"github.com/jhoicas/storefront-backend/pkg/logger"
)

func newUpdateInventoryCommand() *cobra.Command {
	var migrate bool
	var jsonOut bool
	var quantity string
	var logLevel string

	cmd := &cobra.Command{
		Use:           "update-inventory",
		Short:         "Asegura una ubicación de stock y niveles de inventario para todos los items",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				err = fmt.Errorf("cargar configuración: %w", err)
				logger.New(logger.Config{Level: logLevel, Out: cmd.ErrOrStderr()}).Error().Err(err).Msg("update-inventory")
				return err
			}
			if strings.TrimSpace(logLevel) == "" {
				logLevel = cfg.Log.Level
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: logLevel, Out: cmd.ErrOrStderr()})

			seedCfg := seedConfig(cfg.Seed)
			if q := strings.TrimSpace(quantity); q != "" {
				d, err := decimal.NewFromString(q)
				if err != nil {
					err = fmt.Errorf("--quantity %q: %w", q, err)
					log.Error().Err(err).Msg("flag inválido")
					return err
				}
				if d.IsNegative() {
					err := fmt.Errorf("--quantity no puede ser negativo: %s", q)
					log.Error().Err(err).Msg("flag inválido")
					return err
				}
				seedCfg.DefaultQuantity = d
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				log.Error().Err(err).Msg("conexión a PostgreSQL")
				return err
			}
			defer pool.Close()

			if migrate {
				version, err := postgres.Migrate(pool)
				if err != nil {
					log.Error().Err(err).Msg("migraciones")
					return err
				}
				log.Info().Uint("version", version).Msg("migraciones aplicadas")
			}

			txRunner := postgres.NewTxRunner(pool)
			locations := inventory.NewStockLocationUseCase(txRunner, postgres.NewStockLocationRepository(pool), postgres.NewLinkRepository(pool))
			levels := inventory.NewInventoryLevelUseCase(txRunner, postgres.NewInventoryLevelRepository(pool))
			seeder := inventory.NewSeedInventoryUseCase(
				locations, levels,
				postgres.NewInventoryItemRepository(pool),
				postgres.NewSalesChannelRepository(pool),
				seedCfg, log,
			)

			res, err := seeder.Execute(ctx)
			if err != nil {
				log.Error().Err(err).Msg("actualización de inventario fallida")
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Aplicar migraciones pendientes antes de sembrar")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Imprimir el resumen como JSON")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Cantidad para niveles nuevos o en cero (por defecto SEED_DEFAULT_QUANTITY)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Nivel de log: trace, debug, info, warn, error")
	return cmd
}

// writeResult imprime el resumen en texto o como JSON con las mismas claves que POST /admin/inventory/seed.
func writeResult(w io.Writer, res *inventory.SeedResult, jsonOut bool) error {
	if jsonOut {
		raw, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("serializar resumen: %w", err)
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	_, err := fmt.Fprintf(w, "Ubicación %s (%s): items=%d existentes=%d creados=%d actualizados=%d\n",
		res.LocationName, res.LocationID, res.ItemCount, res.ExistingLevels, res.CreatedLevels, res.UpdatedLevels)
	return err
}

func seedConfig(c config.SeedConfig) inventory.SeedConfig {
	return inventory.SeedConfig{
		DefaultQuantity: c.DefaultQuantity,
		LocationName:    c.LocationName,
		Address: entity.StockLocationAddress{
			Address1:    c.Address1,
			City:        c.City,
			CountryCode: c.CountryCode,
		},
		FulfillmentProviderID: c.FulfillmentProviderID,
		SalesChannelName:      c.SalesChannelName,
	}
}
