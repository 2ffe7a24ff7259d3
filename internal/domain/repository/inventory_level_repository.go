package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// InventoryLevelRepository define el puerto para consultar/actualizar stock por ubicación+item (DIP).
type InventoryLevelRepository interface {
	// CreateMany inserta varios niveles en una sola ida a la BD.
	// Devuelve domain.ErrDuplicate si ya existe algún par (item, ubicación).
	CreateMany(ctx context.Context, levels []*entity.InventoryLevel) error
	ListByLocation(ctx context.Context, locationID string) ([]*entity.InventoryLevel, error)
	// UpdateStockedQuantity devuelve domain.ErrNotFound si el nivel no existe.
	UpdateStockedQuantity(ctx context.Context, inventoryItemID, locationID string, quantity decimal.Decimal) error
}
