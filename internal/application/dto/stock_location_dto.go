package dto

import "time"

// StockLocationAddressResponse dirección de la ubicación.
type StockLocationAddressResponse struct {
	Address1    string `json:"address_1"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

// StockLocationResponse salida de una ubicación de stock.
type StockLocationResponse struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	Address   StockLocationAddressResponse `json:"address"`
	CreatedAt time.Time                    `json:"created_at"`
}

// StockLocationListResponse lista de ubicaciones.
type StockLocationListResponse struct {
	Items []StockLocationResponse `json:"items"`
	Total int                     `json:"total"`
}
