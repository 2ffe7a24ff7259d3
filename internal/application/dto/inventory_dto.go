package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevelResponse salida de un nivel de inventario.
type InventoryLevelResponse struct {
	ID               string          `json:"id"`
	InventoryItemID  string          `json:"inventory_item_id"`
	LocationID       string          `json:"location_id"`
	StockedQuantity  decimal.Decimal `json:"stocked_quantity"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InventoryLevelListResponse niveles de una ubicación.
type InventoryLevelListResponse struct {
	LocationID string                   `json:"location_id"`
	Items      []InventoryLevelResponse `json:"items"`
	Total      int                      `json:"total"`
}

// SeedInventoryResponse resumen de una ejecución de update-inventory.
type SeedInventoryResponse struct {
	LocationID         string `json:"location_id"`
	LocationName       string `json:"location_name"`
	LocationCreated    bool   `json:"location_created"`
	SalesChannelLinked bool   `json:"sales_channel_linked"`
	ItemCount          int    `json:"item_count"`
	ExistingLevels     int    `json:"existing_levels"`
	CreatedLevels      int    `json:"created_levels"`
	UpdatedLevels      int    `json:"updated_levels"`
}
