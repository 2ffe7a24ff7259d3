package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación de InventoryLevelRepository sobre PostgreSQL.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

const (
	levelColumns = `id, inventory_item_id, location_id, stocked_quantity, reserved_quantity, created_at, updated_at`

	insertLevelSQL = `
		INSERT INTO inventory_levels (` + levelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

func levelArgs(l *entity.InventoryLevel) []any {
	return []any{
		l.ID, l.InventoryItemID, l.LocationID,
		l.StockedQuantity, l.ReservedQuantity,
		l.CreatedAt, l.UpdatedAt,
	}
}

// CreateMany envía todos los INSERT en un pgx.Batch. Usar dentro de una tx para que sea atómico.
// 23505 sobre (inventory_item_id, location_id) → domain.ErrDuplicate.
func (r *InventoryLevelRepo) CreateMany(ctx context.Context, levels []*entity.InventoryLevel) error {
	if len(levels) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range levels {
		batch.Queue(insertLevelSQL, levelArgs(l)...)
	}
	br := r.q.SendBatch(ctx, batch)
	for range levels {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapWriteError("insert inventory levels", err)
		}
	}
	if err := br.Close(); err != nil {
		return mapWriteError("insert inventory levels", err)
	}
	return nil
}

// ListByLocation lista los niveles de una ubicación.
func (r *InventoryLevelRepo) ListByLocation(ctx context.Context, locationID string) ([]*entity.InventoryLevel, error) {
	query := `SELECT ` + levelColumns + `
		FROM inventory_levels
		WHERE location_id = $1 AND deleted_at IS NULL
		ORDER BY inventory_item_id ASC`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels by location: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		l, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpdateStockedQuantity fija stocked_quantity; domain.ErrNotFound si no hay fila.
func (r *InventoryLevelRepo) UpdateStockedQuantity(ctx context.Context, inventoryItemID, locationID string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory_levels SET stocked_quantity = $3, updated_at = now()
		WHERE inventory_item_id = $1 AND location_id = $2 AND deleted_at IS NULL`,
		inventoryItemID, locationID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory level: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLevel(row pgx.Row) (*entity.InventoryLevel, error) {
	var l entity.InventoryLevel
	err := row.Scan(
		&l.ID, &l.InventoryItemID, &l.LocationID,
		&l.StockedQuantity, &l.ReservedQuantity,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
