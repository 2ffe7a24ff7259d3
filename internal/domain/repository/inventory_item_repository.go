package repository

import (
	"context"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// InventoryItemRepository lectura del catálogo de items (id, sku).
type InventoryItemRepository interface {
	List(ctx context.Context) ([]*entity.InventoryItem, error)
}
