package service

import (
	"context"
	"errors"

	"rexagon/internal/domain"
	"rexagon/internal/logger"
	"rexagon/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfStock        = errors.New("out of stock")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAlreadyOwned      = errors.New("theme already owned")
	ErrThemeNotOwned     = errors.New("theme not owned")
)

// LedgerService owns every mutation of user credit. Each operation is a
// single database transaction: the balance change and its audit rows
// commit together or not at all, and the user row lock serializes
// concurrent spends.
type LedgerService struct {
	db           *pgxpool.Pool
	txRepo       *repository.TransactionRepository
	purchaseRepo *repository.PurchaseRepository
	marketRepo   *repository.MarketRepository
	themeRepo    *repository.ThemeRepository
	fulfillment  *FulfillmentService
}

func NewLedgerService(db *pgxpool.Pool, fulfillment *FulfillmentService) *LedgerService {
	return &LedgerService{
		db:           db,
		txRepo:       repository.NewTransactionRepository(db),
		purchaseRepo: repository.NewPurchaseRepository(db),
		marketRepo:   repository.NewMarketRepository(db),
		themeRepo:    repository.NewThemeRepository(db),
		fulfillment:  fulfillment,
	}
}

// lockBalance locks the user row and returns the current balance.
func (s *LedgerService) lockBalance(ctx context.Context, dbTx pgx.Tx, userID string) (float64, error) {
	var balance float64
	err := dbTx.QueryRow(ctx, `SELECT kredi FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

// TopUp credits the account and writes the yukleme record atomically.
// Payment-provider integration is pending; until then the full amount is
// applied immediately so the record and the balance never diverge.
func (s *LedgerService) TopUp(ctx context.Context, userID string, amount float64) (*domain.Transaction, float64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}

	dbTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	var newBalance float64
	err = dbTx.QueryRow(ctx,
		`UPDATE users SET kredi = kredi + $1 WHERE id = $2 RETURNING kredi`,
		amount, userID,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	tx := &domain.Transaction{
		UserID: userID,
		Amount: amount,
		Type:   domain.TxTypeTopUp,
		Status: domain.TxStatusCompleted,
	}
	if err := s.txRepo.CreateWithTx(ctx, dbTx, tx); err != nil {
		return nil, 0, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, 0, err
	}

	return tx, newBalance, nil
}

// PurchaseResult reports a committed market purchase.
type PurchaseResult struct {
	Purchase   *domain.Purchase
	NewBalance float64
	NewStock   int
	Command    string
}

// Purchase executes the full buy as one transaction: lock the item, lock
// the buyer, check stock and balance, decrement both, write the purchase
// and ledger rows. Item first then user is the fixed lock order. The
// delivery command is queued only after commit.
func (s *LedgerService) Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error) {
	dbTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	item, err := s.marketRepo.GetForUpdateTx(ctx, dbTx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Stock <= 0 {
		return nil, ErrOutOfStock
	}

	price := item.EffectivePrice()

	balance, err := s.lockBalance(ctx, dbTx, userID)
	if err != nil {
		return nil, err
	}
	if balance < price {
		return nil, ErrInsufficientFunds
	}

	if err := s.marketRepo.DecrementStockTx(ctx, dbTx, itemID); err != nil {
		return nil, err
	}

	var newBalance float64
	err = dbTx.QueryRow(ctx,
		`UPDATE users SET kredi = kredi - $1 WHERE id = $2 RETURNING kredi`,
		price, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}

	var username string
	if err := dbTx.QueryRow(ctx, `SELECT kullanici_adi FROM users WHERE id = $1`, userID).Scan(&username); err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		UserID:     userID,
		ItemID:     item.ID,
		ItemName:   item.Name,
		TotalPrice: price,
	}
	if err := s.purchaseRepo.CreateWithTx(ctx, dbTx, purchase); err != nil {
		return nil, err
	}

	ledgerRow := &domain.Transaction{
		UserID: userID,
		Amount: -price,
		Type:   domain.TxTypePurchase,
		Status: domain.TxStatusCompleted,
	}
	if err := s.txRepo.CreateWithTx(ctx, dbTx, ledgerRow); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, err
	}

	command := s.fulfillment.Enqueue(ctx, purchase, username)

	return &PurchaseResult{
		Purchase:   purchase,
		NewBalance: newBalance,
		NewStock:   item.Stock - 1,
		Command:    command,
	}, nil
}

// SetBalance is the admin overwrite path. It bypasses ledger records on
// purpose but still refuses negative balances.
func (s *LedgerService) SetBalance(ctx context.Context, userID string, amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	tag, err := s.db.Exec(ctx, `UPDATE users SET kredi = $1 WHERE id = $2`, amount, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	logger.Info("admin balance overwrite", "user_id", userID, "kredi", amount)
	return nil
}

// UnlockTheme buys a theme: debit plus ownership insert as one unit.
// Free themes skip the balance check entirely. Ownership is permanent,
// repeat unlocks are rejected.
func (s *LedgerService) UnlockTheme(ctx context.Context, userID, themeID string) error {
	theme, err := s.themeRepo.GetByID(ctx, themeID)
	if err != nil {
		return err
	}

	owned, err := s.themeRepo.IsOwned(ctx, userID, themeID)
	if err != nil {
		return err
	}
	if owned {
		return ErrAlreadyOwned
	}

	dbTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if theme.Price > 0 {
		balance, err := s.lockBalance(ctx, dbTx, userID)
		if err != nil {
			return err
		}
		if balance < theme.Price {
			return ErrInsufficientFunds
		}

		if _, err := dbTx.Exec(ctx,
			`UPDATE users SET kredi = kredi - $1 WHERE id = $2`, theme.Price, userID); err != nil {
			return err
		}

		ledgerRow := &domain.Transaction{
			UserID: userID,
			Amount: -theme.Price,
			Type:   domain.TxTypePurchase,
			Status: domain.TxStatusCompleted,
		}
		if err := s.txRepo.CreateWithTx(ctx, dbTx, ledgerRow); err != nil {
			return err
		}
	}

	if err := s.themeRepo.InsertOwnershipTx(ctx, dbTx, userID, themeID); err != nil {
		return err
	}

	return dbTx.Commit(ctx)
}

// ActivateTheme requires prior membership in the unlocked set.
func (s *LedgerService) ActivateTheme(ctx context.Context, userID, themeID string) error {
	if _, err := s.themeRepo.GetByID(ctx, themeID); err != nil {
		return err
	}

	owned, err := s.themeRepo.IsOwned(ctx, userID, themeID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrThemeNotOwned
	}

	return s.themeRepo.SetActive(ctx, userID, themeID)
}
