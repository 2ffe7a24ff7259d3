package entity

// InventoryItem entrada del catálogo cuyo stock se controla, identificada por SKU.
// Solo lectura para el seeder.
type InventoryItem struct {
	ID  string
	SKU string
}
