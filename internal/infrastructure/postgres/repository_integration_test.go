//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-backend/pkg/config"
	"github.com/jhoicas/storefront-backend/pkg/logger"
)

// newTestPool levanta un PostgreSQL descartable, aplica las migraciones y devuelve el pool.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "no se pudo iniciar el contenedor de PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := dbConfigFromDSN(t, dsn)
	pool, err := postgres.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	version, err := postgres.Migrate(pool)
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	return pool
}

// dbConfigFromDSN arma DB_* a partir del DSN del contenedor para recorrer también DSN().
func dbConfigFromDSN(t *testing.T, dsn string) config.DBConfig {
	t.Helper()
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	pass, _ := u.User.Password()
	return config.DBConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: pass,
		DBName:   u.Path[1:],
		SSLMode:  "disable",
	}
}

func insertItems(t *testing.T, pool *pgxpool.Pool, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO inventory_items (id, sku) VALUES ($1, $2)`,
			fmt.Sprintf("iitem_%02d", i), fmt.Sprintf("SKU-%02d", i))
		require.NoError(t, err)
	}
}

func newSeeder(pool *pgxpool.Pool) *inventory.SeedInventoryUseCase {
	txRunner := postgres.NewTxRunner(pool)
	locations := inventory.NewStockLocationUseCase(txRunner, postgres.NewStockLocationRepository(pool), postgres.NewLinkRepository(pool))
	levels := inventory.NewInventoryLevelUseCase(txRunner, postgres.NewInventoryLevelRepository(pool))
	return inventory.NewSeedInventoryUseCase(locations, levels,
		postgres.NewInventoryItemRepository(pool), postgres.NewSalesChannelRepository(pool),
		inventory.DefaultSeedConfig(), logger.Nop())
}

func TestPostgres_SeedCompleto(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	insertItems(t, pool, 3)

	// Migrar dos veces no es error.
	_, err := postgres.Migrate(pool)
	require.NoError(t, err)

	res, err := newSeeder(pool).Execute(ctx)
	require.NoError(t, err)
	assert.True(t, res.LocationCreated)
	assert.True(t, res.SalesChannelLinked, "la migración crea el Default Sales Channel")
	assert.Equal(t, 3, res.CreatedLevels)

	levels, err := postgres.NewInventoryLevelRepository(pool).ListByLocation(ctx, res.LocationID)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	for _, l := range levels {
		assert.True(t, l.StockedQuantity.Equal(decimal.NewFromInt(1000)))
		assert.True(t, l.ReservedQuantity.IsZero())
	}

	links := postgres.NewLinkRepository(pool)
	fl, err := links.ListFulfillmentLinks(ctx, res.LocationID)
	require.NoError(t, err)
	require.Len(t, fl, 1)
	assert.Equal(t, "manual_manual", fl[0].FulfillmentProviderID)
	sl, err := links.ListSalesChannelLinks(ctx, res.LocationID)
	require.NoError(t, err)
	require.Len(t, sl, 1)
	assert.Equal(t, "sc_default", sl[0].SalesChannelID)

	second, err := newSeeder(pool).Execute(ctx)
	require.NoError(t, err)
	assert.False(t, second.LocationCreated)
	assert.Zero(t, second.CreatedLevels)
	assert.Zero(t, second.UpdatedLevels)
}

func TestPostgres_NivelDuplicadoHaceRollback(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	insertItems(t, pool, 2)

	txRunner := postgres.NewTxRunner(pool)
	locations := inventory.NewStockLocationUseCase(txRunner, postgres.NewStockLocationRepository(pool), postgres.NewLinkRepository(pool))
	created, err := locations.CreateStockLocations(ctx, []inventory.CreateStockLocationInput{{Name: "Main"}})
	require.NoError(t, err)
	loc := created[0]

	levels := inventory.NewInventoryLevelUseCase(txRunner, postgres.NewInventoryLevelRepository(pool))
	_, err = levels.CreateInventoryLevels(ctx, []inventory.CreateInventoryLevelInput{
		{InventoryItemID: "iitem_01", LocationID: loc.ID, StockedQuantity: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	_, err = levels.CreateInventoryLevels(ctx, []inventory.CreateInventoryLevelInput{
		{InventoryItemID: "iitem_02", LocationID: loc.ID, StockedQuantity: decimal.NewFromInt(1)},
		{InventoryItemID: "iitem_01", LocationID: loc.ID, StockedQuantity: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := levels.ListByLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, list, 1, "el batch fallido no deja filas")
	assert.Equal(t, "iitem_01", list[0].InventoryItemID)
}

func TestPostgres_UbicacionesYVinculos(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := postgres.NewStockLocationRepository(pool)

	older := &entity.StockLocation{ID: "sloc_b", Name: "Antigua", CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: time.Now()}
	newer := &entity.StockLocation{ID: "sloc_a", Name: "Nueva", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))
	assert.ErrorIs(t, repo.Create(ctx, older), domain.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sloc_b", list[0].ID, "la más antigua primero")

	missing, err := repo.GetByID(ctx, "sloc_x")
	require.NoError(t, err)
	assert.Nil(t, missing)

	links := postgres.NewLinkRepository(pool)
	now := time.Now()
	require.NoError(t, links.AddSalesChannelLinks(ctx, []*entity.SalesChannelLink{
		{SalesChannelID: "sc_default", StockLocationID: "sloc_a", CreatedAt: now},
	}))
	require.NoError(t, links.AddSalesChannelLinks(ctx, []*entity.SalesChannelLink{
		{SalesChannelID: "sc_default", StockLocationID: "sloc_a", CreatedAt: now},
	}))
	sl, err := links.ListSalesChannelLinks(ctx, "sloc_a")
	require.NoError(t, err)
	assert.Len(t, sl, 1)

	require.NoError(t, links.RemoveSalesChannelLinks(ctx, "sloc_a", []string{"sc_default"}))
	sl, err = links.ListSalesChannelLinks(ctx, "sloc_a")
	require.NoError(t, err)
	assert.Empty(t, sl)

	err = postgres.NewInventoryLevelRepository(pool).UpdateStockedQuantity(ctx, "iitem_x", "sloc_a", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
