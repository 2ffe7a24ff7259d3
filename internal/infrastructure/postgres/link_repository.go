package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

var _ repository.LinkRepository = (*LinkRepo)(nil)

// LinkRepo tablas de vínculo ubicación↔proveedor de fulfillment y ubicación↔canal de venta.
type LinkRepo struct {
	q Querier
}

// NewLinkRepository construye el adaptador.
func NewLinkRepository(q Querier) *LinkRepo {
	return &LinkRepo{q: q}
}

func (r *LinkRepo) CreateFulfillmentLink(ctx context.Context, link *entity.FulfillmentLink) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_location_fulfillment_providers (stock_location_id, fulfillment_provider_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (stock_location_id, fulfillment_provider_id) DO NOTHING`,
		link.StockLocationID, link.FulfillmentProviderID, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fulfillment link: %w", err)
	}
	return nil
}

func (r *LinkRepo) ListFulfillmentLinks(ctx context.Context, stockLocationID string) ([]*entity.FulfillmentLink, error) {
	rows, err := r.q.Query(ctx, `
		SELECT stock_location_id, fulfillment_provider_id, created_at
		FROM stock_location_fulfillment_providers
		WHERE stock_location_id = $1
		ORDER BY fulfillment_provider_id`, stockLocationID)
	if err != nil {
		return nil, fmt.Errorf("list fulfillment links: %w", err)
	}
	defer rows.Close()
	var list []*entity.FulfillmentLink
	for rows.Next() {
		var l entity.FulfillmentLink
		if err := rows.Scan(&l.StockLocationID, &l.FulfillmentProviderID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fulfillment link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LinkRepo) AddSalesChannelLinks(ctx context.Context, links []*entity.SalesChannelLink) error {
	if len(links) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range links {
		batch.Queue(`
			INSERT INTO sales_channel_stock_locations (sales_channel_id, stock_location_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (sales_channel_id, stock_location_id) DO NOTHING`,
			l.SalesChannelID, l.StockLocationID, l.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert sales channel links: %w", err)
	}
	return nil
}

func (r *LinkRepo) RemoveSalesChannelLinks(ctx context.Context, stockLocationID string, salesChannelIDs []string) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM sales_channel_stock_locations
		WHERE stock_location_id = $1 AND sales_channel_id = ANY($2)`,
		stockLocationID, salesChannelIDs,
	)
	if err != nil {
		return fmt.Errorf("delete sales channel links: %w", err)
	}
	return nil
}

func (r *LinkRepo) ListSalesChannelLinks(ctx context.Context, stockLocationID string) ([]*entity.SalesChannelLink, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sales_channel_id, stock_location_id, created_at
		FROM sales_channel_stock_locations
		WHERE stock_location_id = $1
		ORDER BY sales_channel_id`, stockLocationID)
	if err != nil {
		return nil, fmt.Errorf("list sales channel links: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesChannelLink
	for rows.Next() {
		var l entity.SalesChannelLink
		if err := rows.Scan(&l.SalesChannelID, &l.StockLocationID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales channel link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
