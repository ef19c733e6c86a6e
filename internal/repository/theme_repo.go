package repository

import (
	"context"
	"errors"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrThemeNotFound = errors.New("theme not found")

type ThemeRepository struct {
	db *pgxpool.Pool
}

func NewThemeRepository(db *pgxpool.Pool) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) List(ctx context.Context) ([]*domain.Theme, error) {
	rows, err := r.db.Query(ctx, `SELECT id, isim, gorsel, fiyat FROM themes ORDER BY fiyat, isim`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*domain.Theme
	for rows.Next() {
		var t domain.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.Image, &t.Price); err != nil {
			return nil, err
		}
		themes = append(themes, &t)
	}
	return themes, rows.Err()
}

// ListForUser annotates the catalog with ownership and active flags for
// one user.
func (r *ThemeRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Theme, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.isim, t.gorsel, t.fiyat,
			(ut.tema_id IS NOT NULL) AS sahip,
			(u.aktif_tema_id = t.id) AS aktif
		 FROM themes t
		 LEFT JOIN user_themes ut ON ut.tema_id = t.id AND ut.kullanici_id = $1
		 LEFT JOIN users u ON u.id = $1
		 ORDER BY t.fiyat, t.isim`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*domain.Theme
	for rows.Next() {
		var t domain.Theme
		var active *bool
		if err := rows.Scan(&t.ID, &t.Name, &t.Image, &t.Price, &t.Owned, &active); err != nil {
			return nil, err
		}
		t.Active = active != nil && *active
		themes = append(themes, &t)
	}
	return themes, rows.Err()
}

func (r *ThemeRepository) GetByID(ctx context.Context, id string) (*domain.Theme, error) {
	var t domain.Theme
	err := r.db.QueryRow(ctx,
		`SELECT id, isim, gorsel, fiyat FROM themes WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Image, &t.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrThemeNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ThemeRepository) IsOwned(ctx context.Context, userID, themeID string) (bool, error) {
	var owned bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_themes WHERE kullanici_id = $1 AND tema_id = $2)`,
		userID, themeID,
	).Scan(&owned)
	return owned, err
}

// ErrOwnershipExists signals a duplicate unlock attempt that raced past
// the pre-check.
var ErrOwnershipExists = errors.New("theme ownership already recorded")

// InsertOwnershipTx adds the theme to the user's unlocked set inside the
// unlock transaction. Ownership is permanent once committed.
func (r *ThemeRepository) InsertOwnershipTx(ctx context.Context, dbTx pgx.Tx, userID, themeID string) error {
	_, err := dbTx.Exec(ctx,
		`INSERT INTO user_themes (kullanici_id, tema_id) VALUES ($1, $2)`,
		userID, themeID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrOwnershipExists
	}
	return err
}

// SetActive points the user at an unlocked theme and mirrors its image
// into the profile backdrop.
func (r *ThemeRepository) SetActive(ctx context.Context, userID, themeID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET aktif_tema_id = $1,
		     profil_arka_plani = (SELECT gorsel FROM themes WHERE id = $1)
		 WHERE id = $2`,
		themeID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ClearActive nulls the active pointer. The unlocked set is untouched.
func (r *ThemeRepository) ClearActive(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET aktif_tema_id = NULL, profil_arka_plani = NULL WHERE id = $1`,
		userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *ThemeRepository) Create(ctx context.Context, t *domain.Theme) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO themes (id, isim, gorsel, fiyat) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Image, t.Price)
	return err
}

// Delete removes a theme and detaches it from any user that had it
// active, so no active pointer is left dangling.
func (r *ThemeRepository) Delete(ctx context.Context, id string) error {
	dbTx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if _, err := dbTx.Exec(ctx,
		`UPDATE users SET aktif_tema_id = NULL, profil_arka_plani = NULL WHERE aktif_tema_id = $1`,
		id); err != nil {
		return err
	}

	tag, err := dbTx.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrThemeNotFound
	}

	return dbTx.Commit(ctx)
}
