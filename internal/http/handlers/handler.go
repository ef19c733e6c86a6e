package handlers

import (
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB           *pgxpool.Pool
	UserRepo     *repository.UserRepository
	TxRepo       *repository.TransactionRepository
	PurchaseRepo *repository.PurchaseRepository
	MarketRepo   *repository.MarketRepository
	ThemeRepo    *repository.ThemeRepository
	ForumRepo    *repository.ForumRepository
	NewsRepo     *repository.NewsRepository
	ReportRepo   *repository.ReportRepository
	Ledger       *service.LedgerService
	Stats        *service.StatsService
}

func NewHandler(db *pgxpool.Pool, fulfillment *service.FulfillmentService) *Handler {
	return &Handler{
		DB:           db,
		UserRepo:     repository.NewUserRepository(db),
		TxRepo:       repository.NewTransactionRepository(db),
		PurchaseRepo: repository.NewPurchaseRepository(db),
		MarketRepo:   repository.NewMarketRepository(db),
		ThemeRepo:    repository.NewThemeRepository(db),
		ForumRepo:    repository.NewForumRepository(db),
		NewsRepo:     repository.NewNewsRepository(db),
		ReportRepo:   repository.NewReportRepository(db),
		Ledger:       service.NewLedgerService(db, fulfillment),
		Stats:        service.NewStatsService(db),
	}
}
