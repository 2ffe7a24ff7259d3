package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/infrastructure/memory"
)

func TestCreateStockLocations_Validacion(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewStockLocationUseCase(store, store, store.Links())

	_, err := uc.CreateStockLocations(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateStockLocations(context.Background(), []inventory.CreateStockLocationInput{{Name: "  "}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLinkSalesChannels_AgregarYQuitar(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := inventory.NewStockLocationUseCase(store, store, store.Links())
	created, err := uc.CreateStockLocations(ctx, []inventory.CreateStockLocationInput{{Name: "Main"}})
	require.NoError(t, err)
	loc := created[0]

	require.NoError(t, uc.LinkSalesChannels(ctx, inventory.LinkSalesChannelsInput{ID: loc.ID, Add: []string{"sc_1", "sc_2"}}))
	// Repetir un vínculo no es error.
	require.NoError(t, uc.LinkSalesChannels(ctx, inventory.LinkSalesChannelsInput{ID: loc.ID, Add: []string{"sc_1"}, Remove: []string{"sc_2"}}))

	links, err := store.Links().ListSalesChannelLinks(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "sc_1", links[0].SalesChannelID)
}

func TestLinkSalesChannels_UbicacionInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewStockLocationUseCase(store, store, store.Links())

	err := uc.LinkSalesChannels(context.Background(), inventory.LinkSalesChannelsInput{ID: "sloc_x", Add: []string{"sc_1"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkFulfillmentProvider_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := inventory.NewStockLocationUseCase(store, store, store.Links())

	require.NoError(t, uc.LinkFulfillmentProvider(ctx, "sloc_1", "manual_manual"))
	require.NoError(t, uc.LinkFulfillmentProvider(ctx, "sloc_1", "manual_manual"))
	assert.ErrorIs(t, uc.LinkFulfillmentProvider(ctx, "", "manual_manual"), domain.ErrInvalidInput)

	links, err := store.Links().ListFulfillmentLinks(ctx, "sloc_1")
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestCreateInventoryLevels_DuplicadoNoEscribeNada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.PutLevel("iitem_1", "sloc_1", decimal.NewFromInt(3))
	uc := inventory.NewInventoryLevelUseCase(store, store.Levels())

	_, err := uc.CreateInventoryLevels(ctx, []inventory.CreateInventoryLevelInput{
		{InventoryItemID: "iitem_2", LocationID: "sloc_1", StockedQuantity: qty1000},
		{InventoryItemID: "iitem_1", LocationID: "sloc_1", StockedQuantity: qty1000},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	levels := levelsAt(t, store, "sloc_1")
	assert.Len(t, levels, 1, "la transacción falla completa")
	assert.True(t, levels["iitem_1"].Equal(decimal.NewFromInt(3)))
}

func TestCreateInventoryLevels_Validacion(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewInventoryLevelUseCase(store, store.Levels())

	cases := []inventory.CreateInventoryLevelInput{
		{InventoryItemID: "", LocationID: "sloc_1", StockedQuantity: qty1000},
		{InventoryItemID: "iitem_1", LocationID: "", StockedQuantity: qty1000},
		{InventoryItemID: "iitem_1", LocationID: "sloc_1", StockedQuantity: decimal.NewFromInt(-1)},
	}
	for _, in := range cases {
		_, err := uc.CreateInventoryLevels(context.Background(), []inventory.CreateInventoryLevelInput{in})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}

	out, err := uc.CreateInventoryLevels(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUpdateInventoryLevels(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.PutLevel("iitem_1", "sloc_1", decimal.Zero)
	uc := inventory.NewInventoryLevelUseCase(store, store.Levels())

	require.NoError(t, uc.UpdateInventoryLevels(ctx, []inventory.UpdateInventoryLevelInput{
		{InventoryItemID: "iitem_1", LocationID: "sloc_1", StockedQuantity: qty1000},
	}))
	assert.True(t, levelsAt(t, store, "sloc_1")["iitem_1"].Equal(qty1000))

	err := uc.UpdateInventoryLevels(ctx, []inventory.UpdateInventoryLevelInput{
		{InventoryItemID: "iitem_9", LocationID: "sloc_1", StockedQuantity: qty1000},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.UpdateInventoryLevels(ctx, []inventory.UpdateInventoryLevelInput{
		{InventoryItemID: "iitem_1", LocationID: "sloc_1", StockedQuantity: decimal.NewFromInt(-3)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
