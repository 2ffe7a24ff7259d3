package entity

import "time"

// FulfillmentLink asocia una StockLocation con un proveedor de fulfillment (ej. "manual_manual").
type FulfillmentLink struct {
	StockLocationID       string
	FulfillmentProviderID string
	CreatedAt             time.Time
}

// SalesChannelLink asocia un SalesChannel con una StockLocation.
type SalesChannelLink struct {
	SalesChannelID  string
	StockLocationID string
	CreatedAt       time.Time
}
