package repository

import (
	"context"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// StockLocationRepository define el puerto de persistencia para StockLocation (DIP).
type StockLocationRepository interface {
	Create(ctx context.Context, location *entity.StockLocation) error
	GetByID(ctx context.Context, id string) (*entity.StockLocation, error)
	// List devuelve las ubicaciones en orden de creación (la más antigua primero).
	List(ctx context.Context) ([]*entity.StockLocation, error)
}
