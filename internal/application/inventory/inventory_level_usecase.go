package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

// InventoryLevelUseCase crea y actualiza niveles de inventario.
type InventoryLevelUseCase struct {
	txRunner  TxRunner
	levelRepo repository.InventoryLevelRepository
}

// NewInventoryLevelUseCase construye el caso de uso.
func NewInventoryLevelUseCase(txRunner TxRunner, levelRepo repository.InventoryLevelRepository) *InventoryLevelUseCase {
	return &InventoryLevelUseCase{txRunner: txRunner, levelRepo: levelRepo}
}

// CreateInventoryLevelInput nivel a crear.
type CreateInventoryLevelInput struct {
	InventoryItemID string
	LocationID      string
	StockedQuantity decimal.Decimal
}

// UpdateInventoryLevelInput nueva cantidad para un nivel existente.
type UpdateInventoryLevelInput struct {
	InventoryItemID string
	LocationID      string
	StockedQuantity decimal.Decimal
}

// ListByLocation devuelve los niveles de una ubicación.
func (uc *InventoryLevelUseCase) ListByLocation(ctx context.Context, locationID string) ([]*entity.InventoryLevel, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.levelRepo.ListByLocation(ctx, locationID)
}

// CreateInventoryLevels inserta todos los niveles en una transacción.
// Si alguno ya existe para el par (item, ubicación) falla con domain.ErrDuplicate y no se escribe nada.
func (uc *InventoryLevelUseCase) CreateInventoryLevels(ctx context.Context, inputs []CreateInventoryLevelInput) ([]*entity.InventoryLevel, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	now := time.Now()
	levels := make([]*entity.InventoryLevel, 0, len(inputs))
	for _, in := range inputs {
		if in.InventoryItemID == "" || in.LocationID == "" || in.StockedQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		levels = append(levels, &entity.InventoryLevel{
			ID:               uuid.New().String(),
			InventoryItemID:  in.InventoryItemID,
			LocationID:       in.LocationID,
			StockedQuantity:  in.StockedQuantity,
			ReservedQuantity: decimal.Zero,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockLocationRepository,
		levelRepo repository.InventoryLevelRepository,
		_ repository.LinkRepository,
	) error {
		return levelRepo.CreateMany(ctx, levels)
	})
	if err != nil {
		return nil, fmt.Errorf("create inventory levels: %w", err)
	}
	return levels, nil
}

// UpdateInventoryLevels fija stocked_quantity en niveles existentes, en una transacción.
func (uc *InventoryLevelUseCase) UpdateInventoryLevels(ctx context.Context, inputs []UpdateInventoryLevelInput) error {
	for _, in := range inputs {
		if in.InventoryItemID == "" || in.LocationID == "" || in.StockedQuantity.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	if len(inputs) == 0 {
		return nil
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockLocationRepository,
		levelRepo repository.InventoryLevelRepository,
		_ repository.LinkRepository,
	) error {
		for _, in := range inputs {
			if err := levelRepo.UpdateStockedQuantity(ctx, in.InventoryItemID, in.LocationID, in.StockedQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update inventory levels: %w", err)
	}
	return nil
}
