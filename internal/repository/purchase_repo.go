package repository

import (
	"context"
	"time"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	db *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// CreateWithTx records a sale inside the purchase transaction.
func (r *PurchaseRepository) CreateWithTx(ctx context.Context, dbTx pgx.Tx, p *domain.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	return dbTx.QueryRow(ctx,
		`INSERT INTO purchases (id, kullanici_id, urun_id, urun_adi, toplam_fiyat)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING tarih`,
		p.ID, p.UserID, p.ItemID, p.ItemName, p.TotalPrice,
	).Scan(&p.CreatedAt)
}

// RecentPurchase is a row of the recent-purchases leaderboard.
type RecentPurchase struct {
	Username   string    `json:"kullanici_adi"`
	ItemName   string    `json:"urun_adi"`
	TotalPrice float64   `json:"toplam_fiyat"`
	CreatedAt  time.Time `json:"tarih"`
}

func (r *PurchaseRepository) Latest(ctx context.Context, limit int) ([]RecentPurchase, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.kullanici_adi, p.urun_adi, p.toplam_fiyat, p.tarih
		 FROM purchases p
		 JOIN users u ON u.id = p.kullanici_id
		 ORDER BY p.tarih DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RecentPurchase
	for rows.Next() {
		var e RecentPurchase
		if err := rows.Scan(&e.Username, &e.ItemName, &e.TotalPrice, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// BestSellers returns the items with the most completed sales.
func (r *PurchaseRepository) BestSellers(ctx context.Context, limit int) ([]*domain.MarketItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.isim, m.aciklama, m.fiyat, m.indirim, m.stok, m.kategori, m.gorsel, m.olusturulma_tarihi
		 FROM market_items m
		 JOIN (
			SELECT urun_id, COUNT(*) AS satis
			FROM purchases
			GROUP BY urun_id
			ORDER BY satis DESC
			LIMIT $1
		 ) s ON s.urun_id = m.id
		 ORDER BY s.satis DESC`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MarketItem
	for rows.Next() {
		var m domain.MarketItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Discount,
			&m.Stock, &m.Category, &m.Image, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}
