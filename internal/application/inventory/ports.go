package inventory

import (
	"context"

	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no se persiste nada de lo escrito dentro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		locationRepo repository.StockLocationRepository,
		levelRepo repository.InventoryLevelRepository,
		linkRepo repository.LinkRepository,
	) error) error
}
