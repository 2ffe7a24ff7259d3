package entity

import "time"

// StockLocationAddress dirección física de una ubicación de stock.
type StockLocationAddress struct {
	Address1    string
	City        string
	CountryCode string // ISO 3166-1 alfa-2, ej. "VN"
}

// StockLocation representa una bodega (física o lógica) que mantiene inventario.
type StockLocation struct {
	ID        string
	Name      string
	Address   StockLocationAddress
	CreatedAt time.Time
	UpdatedAt time.Time
}
