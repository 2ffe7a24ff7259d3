package repository

import (
	"context"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// LinkRepository persiste las asociaciones entre ubicaciones de stock, proveedores
// de fulfillment y canales de venta. Crear un vínculo existente no es error.
type LinkRepository interface {
	CreateFulfillmentLink(ctx context.Context, link *entity.FulfillmentLink) error
	ListFulfillmentLinks(ctx context.Context, stockLocationID string) ([]*entity.FulfillmentLink, error)
	AddSalesChannelLinks(ctx context.Context, links []*entity.SalesChannelLink) error
	RemoveSalesChannelLinks(ctx context.Context, stockLocationID string, salesChannelIDs []string) error
	ListSalesChannelLinks(ctx context.Context, stockLocationID string) ([]*entity.SalesChannelLink, error)
}
