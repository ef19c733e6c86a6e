package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsService aggregates public platform counters.
type StatsService struct {
	db *pgxpool.Pool
}

func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{db: db}
}

// Stats is the public counters payload.
type Stats struct {
	RegisteredPlayers int64 `json:"kayitli_oyuncu"`
	// Live player count comes from the game server bridge; until that
	// integration lands this stays zero.
	ActivePlayers int64 `json:"aktif_oyuncu"`
}

func (s *StatsService) Get(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.RegisteredPlayers); err != nil {
		return nil, err
	}
	return stats, nil
}
