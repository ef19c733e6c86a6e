package repository

import (
	"context"
	"errors"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO reports (id, konu, baslik, aciklama, yazar_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING tarih`,
		rep.ID, rep.Topic, rep.Title, rep.Description, rep.AuthorID,
	).Scan(&rep.CreatedAt)
}

func (r *ReportRepository) List(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT rp.id, rp.konu, rp.baslik, rp.aciklama, rp.yazar_id, u.kullanici_adi, rp.tarih
		 FROM reports rp
		 JOIN users u ON u.id = rp.yazar_id
		 ORDER BY rp.tarih DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.ID, &rep.Topic, &rep.Title, &rep.Description,
			&rep.AuthorID, &rep.AuthorName, &rep.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, &rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}
