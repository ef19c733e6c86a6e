package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"rexagon/internal/db"
	"rexagon/internal/domain"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.RunMigrations(context.Background(), pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

func createUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	hash, err := service.HashPassword("sifre123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	suffix := uuid.NewString()[:8]
	u := &domain.User{
		Username:     "test_" + suffix,
		Email:        fmt.Sprintf("test_%s@example.com", suffix),
		PasswordHash: hash,
	}
	if err := repository.NewUserRepository(pool).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createItem(t *testing.T, pool *pgxpool.Pool, price, discount float64, stock int) *domain.MarketItem {
	t.Helper()
	item := &domain.MarketItem{
		Name:        "Test Spawner " + uuid.NewString()[:8],
		Description: "test",
		Price:       price,
		Discount:    discount,
		Stock:       stock,
		Category:    "Spawnerlar",
	}
	if err := repository.NewMarketRepository(pool).Create(context.Background(), item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func fund(t *testing.T, ledger *service.LedgerService, userID string, amount float64) {
	t.Helper()
	if _, _, err := ledger.TopUp(context.Background(), userID, amount); err != nil {
		t.Fatalf("top up: %v", err)
	}
}

func balanceOf(t *testing.T, pool *pgxpool.Pool, userID string) float64 {
	t.Helper()
	var balance float64
	err := pool.QueryRow(context.Background(), `SELECT kredi FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		t.Fatalf("read balance: %v", err)
	}
	return balance
}

func TestLedger_TopUpWritesRecord(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)

	tx, newBalance, err := ledger.TopUp(context.Background(), user.ID, 100)
	if err != nil {
		t.Fatalf("top up: %v", err)
	}
	if newBalance != 100 {
		t.Fatalf("expected balance 100, got %v", newBalance)
	}
	if tx.Type != domain.TxTypeTopUp || tx.Status != domain.TxStatusCompleted {
		t.Fatalf("unexpected ledger row: %+v", tx)
	}

	history, err := repository.NewTransactionRepository(pool).GetByUserID(context.Background(), user.ID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Amount != 100 {
		t.Fatalf("expected one history row of 100, got %+v", history)
	}
}

func TestLedger_TopUpRejectsNonPositive(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)

	if _, _, err := ledger.TopUp(context.Background(), user.ID, 0); !errors.Is(err, service.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, _, err := ledger.TopUp(context.Background(), user.ID, -5); !errors.Is(err, service.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestLedger_PurchaseHappyPath(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)
	item := createItem(t, pool, 60, 0, 3)
	fund(t, ledger, user.ID, 100)

	result, err := ledger.Purchase(context.Background(), user.ID, item.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if result.NewBalance != 40 {
		t.Fatalf("expected balance 40, got %v", result.NewBalance)
	}
	if result.NewStock != 2 {
		t.Fatalf("expected stock 2, got %d", result.NewStock)
	}
	if result.Command == "" {
		t.Fatalf("expected a delivery command")
	}

	// Both audit rows must exist after commit.
	history, err := repository.NewTransactionRepository(pool).GetByUserID(context.Background(), user.ID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected top-up and purchase rows, got %d", len(history))
	}
	if history[0].Type != domain.TxTypePurchase || history[0].Amount != -60 {
		t.Fatalf("unexpected newest ledger row: %+v", history[0])
	}

	stored, err := repository.NewMarketRepository(pool).GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if stored.Stock != 2 {
		t.Fatalf("expected persisted stock 2, got %d", stored.Stock)
	}
}

func TestLedger_PurchaseAppliesDiscount(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)
	item := createItem(t, pool, 60, 50, 1)
	fund(t, ledger, user.ID, 100)

	result, err := ledger.Purchase(context.Background(), user.ID, item.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if result.Purchase.TotalPrice != 30 {
		t.Fatalf("expected effective price 30, got %v", result.Purchase.TotalPrice)
	}
	if result.NewBalance != 70 {
		t.Fatalf("expected balance 70, got %v", result.NewBalance)
	}
}

func TestLedger_PurchaseInsufficientFunds(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)
	item := createItem(t, pool, 60, 0, 3)
	fund(t, ledger, user.ID, 10)

	_, err := ledger.Purchase(context.Background(), user.ID, item.ID)
	if !errors.Is(err, service.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// Nothing may have changed.
	if b := balanceOf(t, pool, user.ID); b != 10 {
		t.Fatalf("expected balance unchanged at 10, got %v", b)
	}
	stored, err := repository.NewMarketRepository(pool).GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if stored.Stock != 3 {
		t.Fatalf("expected stock unchanged at 3, got %d", stored.Stock)
	}
}

func TestLedger_PurchaseOutOfStock(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)
	item := createItem(t, pool, 10, 0, 0)
	fund(t, ledger, user.ID, 100)

	_, err := ledger.Purchase(context.Background(), user.ID, item.ID)
	if !errors.Is(err, service.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
	if b := balanceOf(t, pool, user.ID); b != 100 {
		t.Fatalf("expected balance unchanged at 100, got %v", b)
	}
}

func TestLedger_PurchaseUnknownItem(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)

	_, err := ledger.Purchase(context.Background(), user.ID, uuid.NewString())
	if !errors.Is(err, repository.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

// Two buyers race for the last unit: exactly one purchase commits.
func TestLedger_PurchaseLastUnitSerialized(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	item := createItem(t, pool, 10, 0, 1)

	buyers := []*domain.User{createUser(t, pool), createUser(t, pool)}
	for _, u := range buyers {
		fund(t, ledger, u.ID, 100)
	}

	var wg sync.WaitGroup
	results := make([]error, len(buyers))
	for i, u := range buyers {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, results[i] = ledger.Purchase(context.Background(), userID, item.ID)
		}(i, u.ID)
	}
	wg.Wait()

	var wins, stockouts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, service.ErrOutOfStock):
			stockouts++
		default:
			t.Fatalf("unexpected purchase error: %v", err)
		}
	}
	if wins != 1 || stockouts != 1 {
		t.Fatalf("expected exactly one winner, got %d wins %d stockouts", wins, stockouts)
	}

	stored, err := repository.NewMarketRepository(pool).GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if stored.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", stored.Stock)
	}
}

func TestLedger_SetBalanceOverwrite(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	user := createUser(t, pool)
	fund(t, ledger, user.ID, 100)

	if err := ledger.SetBalance(context.Background(), user.ID, 500); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	if b := balanceOf(t, pool, user.ID); b != 500 {
		t.Fatalf("expected balance 500, got %v", b)
	}

	if err := ledger.SetBalance(context.Background(), user.ID, -1); !errors.Is(err, service.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// Overwrite path writes no ledger rows.
	history, err := repository.NewTransactionRepository(pool).GetByUserID(context.Background(), user.ID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected only the top-up row, got %d", len(history))
	}
}

func TestLedger_ThemeLifecycle(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	themeRepo := repository.NewThemeRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	ctx := context.Background()

	user := createUser(t, pool)
	fund(t, ledger, user.ID, 100)

	free := &domain.Theme{Name: "Free " + uuid.NewString()[:8], Image: "https://img/free.png", Price: 0}
	paid := &domain.Theme{Name: "Paid " + uuid.NewString()[:8], Image: "https://img/paid.png", Price: 40}
	for _, th := range []*domain.Theme{free, paid} {
		if err := themeRepo.Create(ctx, th); err != nil {
			t.Fatalf("create theme: %v", err)
		}
	}

	// Activating before unlocking is rejected.
	if err := ledger.ActivateTheme(ctx, user.ID, paid.ID); !errors.Is(err, service.ErrThemeNotOwned) {
		t.Fatalf("expected ErrThemeNotOwned, got %v", err)
	}

	// Free theme unlocks without touching the balance.
	if err := ledger.UnlockTheme(ctx, user.ID, free.ID); err != nil {
		t.Fatalf("unlock free theme: %v", err)
	}
	if b := balanceOf(t, pool, user.ID); b != 100 {
		t.Fatalf("expected balance unchanged at 100, got %v", b)
	}

	// Paid theme debits and records the spend.
	if err := ledger.UnlockTheme(ctx, user.ID, paid.ID); err != nil {
		t.Fatalf("unlock paid theme: %v", err)
	}
	if b := balanceOf(t, pool, user.ID); b != 60 {
		t.Fatalf("expected balance 60, got %v", b)
	}

	// Ownership is permanent, repeat unlocks are rejected.
	if err := ledger.UnlockTheme(ctx, user.ID, paid.ID); !errors.Is(err, service.ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}

	if err := ledger.ActivateTheme(ctx, user.ID, paid.ID); err != nil {
		t.Fatalf("activate theme: %v", err)
	}
	stored, err := userRepo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.ActiveThemeID == nil || *stored.ActiveThemeID != paid.ID {
		t.Fatalf("expected active theme %s, got %v", paid.ID, stored.ActiveThemeID)
	}

	// Removing the active theme clears the pointer, keeps ownership.
	if err := themeRepo.ClearActive(ctx, user.ID); err != nil {
		t.Fatalf("clear active: %v", err)
	}
	stored, err = userRepo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.ActiveThemeID != nil {
		t.Fatalf("expected no active theme, got %v", *stored.ActiveThemeID)
	}
	owned, err := themeRepo.IsOwned(ctx, user.ID, paid.ID)
	if err != nil {
		t.Fatalf("is owned: %v", err)
	}
	if !owned {
		t.Fatalf("expected ownership to survive deactivation")
	}
}

func TestLedger_ThemeUnlockInsufficientFunds(t *testing.T) {
	pool := setupDB(t)
	ledger := service.NewLedgerService(pool, service.NewFulfillmentService("", "", 0))
	themeRepo := repository.NewThemeRepository(pool)
	ctx := context.Background()

	user := createUser(t, pool)
	fund(t, ledger, user.ID, 5)

	theme := &domain.Theme{Name: "Pricey " + uuid.NewString()[:8], Image: "https://img/p.png", Price: 40}
	if err := themeRepo.Create(ctx, theme); err != nil {
		t.Fatalf("create theme: %v", err)
	}

	if err := ledger.UnlockTheme(ctx, user.ID, theme.ID); !errors.Is(err, service.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if b := balanceOf(t, pool, user.ID); b != 5 {
		t.Fatalf("expected balance unchanged at 5, got %v", b)
	}
	owned, err := themeRepo.IsOwned(ctx, user.ID, theme.ID)
	if err != nil {
		t.Fatalf("is owned: %v", err)
	}
	if owned {
		t.Fatalf("expected no ownership after failed unlock")
	}
}
