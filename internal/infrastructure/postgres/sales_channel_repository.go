package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

var _ repository.SalesChannelRepository = (*SalesChannelRepo)(nil)

// SalesChannelRepo lectura de canales de venta sobre PostgreSQL.
type SalesChannelRepo struct {
	q Querier
}

// NewSalesChannelRepository construye el adaptador.
func NewSalesChannelRepository(q Querier) *SalesChannelRepo {
	return &SalesChannelRepo{q: q}
}

// ListByName devuelve los canales con nombre exacto name.
func (r *SalesChannelRepo) ListByName(ctx context.Context, name string) ([]*entity.SalesChannel, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name FROM sales_channels
		WHERE name = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("list sales channels: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesChannel
	for rows.Next() {
		var ch entity.SalesChannel
		if err := rows.Scan(&ch.ID, &ch.Name); err != nil {
			return nil, fmt.Errorf("scan sales channel: %w", err)
		}
		list = append(list, &ch)
	}
	return list, rows.Err()
}
