package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
	"github.com/jhoicas/storefront-backend/pkg/logger"
)

// SeedConfig valores usados por el seeder cuando tiene que crear datos.
type SeedConfig struct {
	DefaultQuantity       decimal.Decimal
	LocationName          string
	Address               entity.StockLocationAddress
	FulfillmentProviderID string
	SalesChannelName      string
}

// DefaultSeedConfig configuración por defecto del seeder.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		DefaultQuantity: decimal.NewFromInt(1000),
		LocationName:    "Vietnam Warehouse",
		Address: entity.StockLocationAddress{
			Address1:    "123 Main Street",
			City:        "Ho Chi Minh City",
			CountryCode: "VN",
		},
		FulfillmentProviderID: "manual_manual",
		SalesChannelName:      "Default Sales Channel",
	}
}

// SeedResult resumen de una ejecución del seeder.
type SeedResult struct {
	LocationID         string `json:"location_id"`
	LocationName       string `json:"location_name"`
	LocationCreated    bool   `json:"location_created"`
	SalesChannelLinked bool   `json:"sales_channel_linked"`
	ItemCount          int    `json:"item_count"`
	ExistingLevels     int    `json:"existing_levels"`
	CreatedLevels      int    `json:"created_levels"`
	UpdatedLevels      int    `json:"updated_levels"`
}

// SeedInventoryUseCase garantiza que cada item de inventario tenga un nivel en la bodega objetivo.
// Reconciliación idempotente de mejor esfuerzo: no hay rollback entre pasos y el primer error corta la ejecución.
// Dos ejecuciones concurrentes pueden competir; la restricción única de la BD evita duplicados.
type SeedInventoryUseCase struct {
	locations   *StockLocationUseCase
	levels      *InventoryLevelUseCase
	itemRepo    repository.InventoryItemRepository
	channelRepo repository.SalesChannelRepository
	cfg         SeedConfig
	log         *logger.Logger
}

// NewSeedInventoryUseCase construye el seeder.
func NewSeedInventoryUseCase(
	locations *StockLocationUseCase,
	levels *InventoryLevelUseCase,
	itemRepo repository.InventoryItemRepository,
	channelRepo repository.SalesChannelRepository,
	cfg SeedConfig,
	log *logger.Logger,
) *SeedInventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SeedInventoryUseCase{
		locations:   locations,
		levels:      levels,
		itemRepo:    itemRepo,
		channelRepo: channelRepo,
		cfg:         cfg,
		log:         log,
	}
}

// Execute corre el seeder una vez.
func (uc *SeedInventoryUseCase) Execute(ctx context.Context) (*SeedResult, error) {
	if uc.cfg.DefaultQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	uc.log.Info().Msg("iniciando actualización de inventario")

	res := &SeedResult{}

	locations, err := uc.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock locations: %w", err)
	}
	if len(locations) == 0 {
		uc.log.Info().Msg("no hay ubicaciones de stock, creando una")
		locations, err = uc.createDefaultLocation(ctx, res)
		if err != nil {
			return nil, err
		}
	}

	// Sin desempate: la primera según el orden del listado.
	location := locations[0]
	res.LocationID = location.ID
	res.LocationName = location.Name
	uc.log.Info().Str("location_id", location.ID).Str("location", location.Name).Msg("usando ubicación de stock")

	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	res.ItemCount = len(items)
	uc.log.Info().Int("count", len(items)).Msg("items de inventario encontrados")

	existing, err := uc.levels.ListByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	res.ExistingLevels = len(existing)
	uc.log.Info().Int("count", len(existing)).Msg("niveles de inventario existentes")

	covered := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		covered[l.InventoryItemID] = struct{}{}
	}
	var missing []*entity.InventoryItem
	for _, item := range items {
		if _, ok := covered[item.ID]; !ok {
			missing = append(missing, item)
		}
	}

	if len(missing) == 0 {
		uc.log.Info().Str("quantity", uc.cfg.DefaultQuantity.String()).
			Msg("todos los items tienen nivel, actualizando niveles en cero")
		for _, l := range existing {
			if !l.StockedQuantity.IsZero() {
				continue
			}
			err := uc.levels.UpdateInventoryLevels(ctx, []UpdateInventoryLevelInput{{
				InventoryItemID: l.InventoryItemID,
				LocationID:      l.LocationID,
				StockedQuantity: uc.cfg.DefaultQuantity,
			}})
			if err != nil {
				return nil, err
			}
			res.UpdatedLevels++
		}
		uc.log.Info().Int("updated", res.UpdatedLevels).Msg("actualización de niveles finalizada")
		return res, nil
	}

	// En esta rama los niveles en cero existentes no se tocan.
	uc.log.Info().Int("count", len(missing)).Msg("creando niveles de inventario")
	inputs := make([]CreateInventoryLevelInput, 0, len(missing))
	for _, item := range missing {
		inputs = append(inputs, CreateInventoryLevelInput{
			InventoryItemID: item.ID,
			LocationID:      location.ID,
			StockedQuantity: uc.cfg.DefaultQuantity,
		})
	}
	created, err := uc.levels.CreateInventoryLevels(ctx, inputs)
	if err != nil {
		return nil, err
	}
	res.CreatedLevels = len(created)
	uc.log.Info().Int("created", res.CreatedLevels).Msg("niveles de inventario creados")
	uc.log.Info().Msg("actualización de inventario completada")
	return res, nil
}

// createDefaultLocation crea la bodega por defecto y la vincula al proveedor de fulfillment
// y, si existe, al canal de venta configurado.
func (uc *SeedInventoryUseCase) createDefaultLocation(ctx context.Context, res *SeedResult) ([]*entity.StockLocation, error) {
	created, err := uc.locations.CreateStockLocations(ctx, []CreateStockLocationInput{{
		Name:    uc.cfg.LocationName,
		Address: uc.cfg.Address,
	}})
	if err != nil {
		return nil, err
	}
	location := created[0]
	res.LocationCreated = true
	uc.log.Info().Str("location", location.Name).Msg("ubicación de stock creada")

	if err := uc.locations.LinkFulfillmentProvider(ctx, location.ID, uc.cfg.FulfillmentProviderID); err != nil {
		return nil, err
	}

	channels, err := uc.channelRepo.ListByName(ctx, uc.cfg.SalesChannelName)
	if err != nil {
		return nil, fmt.Errorf("list sales channels: %w", err)
	}
	if len(channels) > 0 {
		err := uc.locations.LinkSalesChannels(ctx, LinkSalesChannelsInput{
			ID:  location.ID,
			Add: []string{channels[0].ID},
		})
		if err != nil {
			return nil, err
		}
		res.SalesChannelLinked = true
		uc.log.Info().Str("sales_channel", channels[0].Name).Msg("ubicación vinculada al canal de venta")
	}
	return created, nil
}
