package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

// StockLocationUseCase agrupa los flujos sobre ubicaciones de stock:
// creación, vínculo con proveedor de fulfillment y vínculo con canales de venta.
type StockLocationUseCase struct {
	txRunner     TxRunner
	locationRepo repository.StockLocationRepository
	linkRepo     repository.LinkRepository
}

// NewStockLocationUseCase construye el caso de uso.
func NewStockLocationUseCase(
	txRunner TxRunner,
	locationRepo repository.StockLocationRepository,
	linkRepo repository.LinkRepository,
) *StockLocationUseCase {
	return &StockLocationUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		linkRepo:     linkRepo,
	}
}

// CreateStockLocationInput entrada para crear una ubicación.
type CreateStockLocationInput struct {
	Name    string
	Address entity.StockLocationAddress
}

// LinkSalesChannelsInput canales a agregar/quitar de la ubicación ID.
type LinkSalesChannelsInput struct {
	ID     string
	Add    []string
	Remove []string
}

// List devuelve las ubicaciones en orden de creación.
func (uc *StockLocationUseCase) List(ctx context.Context) ([]*entity.StockLocation, error) {
	return uc.locationRepo.List(ctx)
}

// CreateStockLocations crea todas las ubicaciones en una sola transacción.
func (uc *StockLocationUseCase) CreateStockLocations(ctx context.Context, inputs []CreateStockLocationInput) ([]*entity.StockLocation, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	locations := make([]*entity.StockLocation, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		locations = append(locations, &entity.StockLocation{
			ID:        uuid.New().String(),
			Name:      name,
			Address:   in.Address,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		locationRepo repository.StockLocationRepository,
		_ repository.InventoryLevelRepository,
		_ repository.LinkRepository,
	) error {
		for _, l := range locations {
			if err := locationRepo.Create(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create stock locations: %w", err)
	}
	return locations, nil
}

// LinkFulfillmentProvider vincula la ubicación con el proveedor de fulfillment.
// Repetir el vínculo no es error.
func (uc *StockLocationUseCase) LinkFulfillmentProvider(ctx context.Context, locationID, providerID string) error {
	if locationID == "" || providerID == "" {
		return domain.ErrInvalidInput
	}
	link := &entity.FulfillmentLink{
		StockLocationID:       locationID,
		FulfillmentProviderID: providerID,
		CreatedAt:             time.Now(),
	}
	if err := uc.linkRepo.CreateFulfillmentLink(ctx, link); err != nil {
		return fmt.Errorf("link fulfillment provider: %w", err)
	}
	return nil
}

// LinkSalesChannels agrega y quita canales de venta de una ubicación en una transacción.
func (uc *StockLocationUseCase) LinkSalesChannels(ctx context.Context, in LinkSalesChannelsInput) error {
	if in.ID == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	add := make([]*entity.SalesChannelLink, 0, len(in.Add))
	for _, channelID := range in.Add {
		if channelID == "" {
			return domain.ErrInvalidInput
		}
		add = append(add, &entity.SalesChannelLink{
			SalesChannelID:  channelID,
			StockLocationID: in.ID,
			CreatedAt:       now,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		locationRepo repository.StockLocationRepository,
		_ repository.InventoryLevelRepository,
		linkRepo repository.LinkRepository,
	) error {
		loc, err := locationRepo.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
		if len(in.Remove) > 0 {
			if err := linkRepo.RemoveSalesChannelLinks(ctx, in.ID, in.Remove); err != nil {
				return err
			}
		}
		if len(add) > 0 {
			return linkRepo.AddSalesChannelLinks(ctx, add)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("link sales channels to stock location: %w", err)
	}
	return nil
}
