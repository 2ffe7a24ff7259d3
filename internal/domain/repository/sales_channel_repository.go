package repository

import (
	"context"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// SalesChannelRepository lectura de canales de venta.
type SalesChannelRepository interface {
	ListByName(ctx context.Context, name string) ([]*entity.SalesChannel, error)
}
