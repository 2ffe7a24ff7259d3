package entity

// SalesChannel canal de venta (storefront) que puede vincularse a ubicaciones de stock.
type SalesChannel struct {
	ID   string
	Name string
}
