package repository

import (
	"context"
	"errors"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("market item not found")

const marketColumns = `id, isim, aciklama, fiyat, indirim, stok, kategori, gorsel, olusturulma_tarihi`

type MarketRepository struct {
	db *pgxpool.Pool
}

func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

func scanItem(row pgx.Row) (*domain.MarketItem, error) {
	var m domain.MarketItem
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Discount,
		&m.Stock, &m.Category, &m.Image, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MarketRepository) Categories(ctx context.Context) ([]domain.MarketCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, isim, aciklama FROM market_categories ORDER BY isim`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.MarketCategory
	for rows.Next() {
		var c domain.MarketCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// List returns items, optionally filtered by category. "Tümü" and the
// empty string mean no filter, matching the storefront's all-items tab.
func (r *MarketRepository) List(ctx context.Context, category string) ([]*domain.MarketItem, error) {
	query := `SELECT ` + marketColumns + ` FROM market_items ORDER BY olusturulma_tarihi DESC`
	args := []any{}
	if category != "" && category != "Tümü" {
		query = `SELECT ` + marketColumns + ` FROM market_items WHERE kategori = $1 ORDER BY olusturulma_tarihi DESC`
		args = append(args, category)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MarketItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MarketRepository) GetByID(ctx context.Context, id string) (*domain.MarketItem, error) {
	return scanItem(r.db.QueryRow(ctx,
		`SELECT `+marketColumns+` FROM market_items WHERE id = $1`, id))
}

// GetForUpdateTx locks the item row for the duration of a purchase
// transaction. Concurrent purchases of the same item serialize here.
func (r *MarketRepository) GetForUpdateTx(ctx context.Context, dbTx pgx.Tx, id string) (*domain.MarketItem, error) {
	return scanItem(dbTx.QueryRow(ctx,
		`SELECT `+marketColumns+` FROM market_items WHERE id = $1 FOR UPDATE`, id))
}

// DecrementStockTx takes one unit off the locked item row.
func (r *MarketRepository) DecrementStockTx(ctx context.Context, dbTx pgx.Tx, id string) error {
	tag, err := dbTx.Exec(ctx,
		`UPDATE market_items SET stok = stok - 1 WHERE id = $1 AND stok > 0`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *MarketRepository) Create(ctx context.Context, m *domain.MarketItem) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO market_items (id, isim, aciklama, fiyat, indirim, stok, kategori, gorsel)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING olusturulma_tarihi`,
		m.ID, m.Name, m.Description, m.Price, m.Discount, m.Stock, m.Category, m.Image,
	).Scan(&m.CreatedAt)
}

func (r *MarketRepository) Update(ctx context.Context, m *domain.MarketItem) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE market_items
		 SET isim = $1, aciklama = $2, fiyat = $3, indirim = $4, stok = $5, kategori = $6, gorsel = $7
		 WHERE id = $8`,
		m.Name, m.Description, m.Price, m.Discount, m.Stock, m.Category, m.Image, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *MarketRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM market_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
