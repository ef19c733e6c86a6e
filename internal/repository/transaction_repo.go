package repository

import (
	"context"
	"time"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateWithTx inserts a ledger row inside an existing database
// transaction so it commits or rolls back with the balance change.
func (r *TransactionRepository) CreateWithTx(ctx context.Context, dbTx pgx.Tx, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Status == "" {
		tx.Status = domain.TxStatusCompleted
	}

	return dbTx.QueryRow(ctx,
		`INSERT INTO credit_transactions (id, kullanici_id, tutar, tip, durum)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING tarih`,
		tx.ID, tx.UserID, tx.Amount, tx.Type, tx.Status,
	).Scan(&tx.CreatedAt)
}

// GetByUserID returns a user's ledger history, newest first.
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, kullanici_id, tutar, tip, durum, tarih
		 FROM credit_transactions
		 WHERE kullanici_id = $1
		 ORDER BY tarih DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status, &tx.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &tx)
	}
	return result, rows.Err()
}

// TopUpEntry is a row of the latest top-ups leaderboard.
type TopUpEntry struct {
	Username  string    `json:"kullanici_adi"`
	Amount    float64   `json:"tutar"`
	CreatedAt time.Time `json:"tarih"`
}

// LatestTopUps lists the most recent completed top-ups with usernames.
func (r *TransactionRepository) LatestTopUps(ctx context.Context, limit int) ([]TopUpEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.kullanici_adi, t.tutar, t.tarih
		 FROM credit_transactions t
		 JOIN users u ON u.id = t.kullanici_id
		 WHERE t.tip = $1 AND t.durum = $2
		 ORDER BY t.tarih DESC
		 LIMIT $3`,
		domain.TxTypeTopUp, domain.TxStatusCompleted, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TopUpEntry
	for rows.Next() {
		var e TopUpEntry
		if err := rows.Scan(&e.Username, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
