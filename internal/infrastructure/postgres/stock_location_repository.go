package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

// StockLocationRepo implementación de StockLocationRepository sobre PostgreSQL (pool o tx).
type StockLocationRepo struct {
	q Querier
}

// NewStockLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

const stockLocationColumns = `id, name, address_1, city, country_code, created_at, updated_at`

// Create persiste una nueva ubicación.
func (r *StockLocationRepo) Create(ctx context.Context, l *entity.StockLocation) error {
	query := `
		INSERT INTO stock_locations (` + stockLocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.Name, l.Address.Address1, l.Address.City, l.Address.CountryCode,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert stock location", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil, nil si no existe.
func (r *StockLocationRepo) GetByID(ctx context.Context, id string) (*entity.StockLocation, error) {
	query := `SELECT ` + stockLocationColumns + ` FROM stock_locations WHERE id = $1`
	l, err := scanStockLocation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock location: %w", err)
	}
	return l, nil
}

// List devuelve todas las ubicaciones, la más antigua primero.
func (r *StockLocationRepo) List(ctx context.Context) ([]*entity.StockLocation, error) {
	query := `SELECT ` + stockLocationColumns + ` FROM stock_locations ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLocation
	for rows.Next() {
		l, err := scanStockLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanStockLocation(row pgx.Row) (*entity.StockLocation, error) {
	var l entity.StockLocation
	err := row.Scan(
		&l.ID, &l.Name, &l.Address.Address1, &l.Address.City, &l.Address.CountryCode,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
