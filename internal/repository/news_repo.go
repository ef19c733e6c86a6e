package repository

import (
	"context"
	"errors"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNewsNotFound = errors.New("news not found")

type NewsRepository struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context, limit int) ([]*domain.News, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT n.id, n.baslik, n.icerik, n.yazar_id, u.kullanici_adi, n.tarih
		 FROM news n
		 JOIN users u ON u.id = n.yazar_id
		 ORDER BY n.tarih DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.News
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.AuthorName, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	var n domain.News
	err := r.db.QueryRow(ctx,
		`SELECT n.id, n.baslik, n.icerik, n.yazar_id, u.kullanici_adi, n.tarih
		 FROM news n
		 JOIN users u ON u.id = n.yazar_id
		 WHERE n.id = $1`,
		id,
	).Scan(&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.AuthorName, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO news (id, baslik, icerik, yazar_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING tarih`,
		n.ID, n.Title, n.Body, n.AuthorID,
	).Scan(&n.CreatedAt)
}

func (r *NewsRepository) Update(ctx context.Context, id, title, body string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE news SET baslik = $1, icerik = $2 WHERE id = $3`, title, body, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNewsNotFound
	}
	return nil
}
