package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevel cantidad de un InventoryItem disponible en una StockLocation.
// Único por (InventoryItemID, LocationID).
type InventoryLevel struct {
	ID               string
	InventoryItemID  string
	LocationID       string
	StockedQuantity  decimal.Decimal
	ReservedQuantity decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
