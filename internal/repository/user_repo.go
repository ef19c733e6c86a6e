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

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

const userColumns = `id, kullanici_adi, email, sifre_hash, kredi, rol, yetki,
	yetki_gorseli, biyografi, profil_arka_plani, aktif_tema_id, dogum_tarihi, kayit_tarihi`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Credits,
		&u.Role,
		&u.Badge,
		&u.BadgeImage,
		&u.Bio,
		&u.ProfileBackdrop,
		&u.ActiveThemeID,
		&u.BirthDate,
		&u.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Badge == "" {
		u.Badge = "Oyuncu"
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, kullanici_adi, email, sifre_hash, rol, yetki, dogum_tarihi)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING kayit_tarihi`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Badge, u.BirthDate,
	).Scan(&u.RegisteredAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_kullanici_adi_key":
			return ErrUsernameTaken
		case "users_email_key":
			return ErrEmailTaken
		}
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE kullanici_adi = $1`, username))
}

// GetRole reads the role fresh from the database. Admin checks go through
// here on every privileged call instead of trusting token claims.
func (r *UserRepository) GetRole(ctx context.Context, id string) (string, error) {
	var role string
	err := r.db.QueryRow(ctx, `SELECT rol FROM users WHERE id = $1`, id).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return role, err
}

func (r *UserRepository) GetAll(ctx context.Context, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY kayit_tarihi DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateBio(ctx context.Context, userID, bio string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET biyografi = $1 WHERE id = $2`, bio, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET sifre_hash = $1 WHERE id = $2`, hash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateBackdrop(ctx context.Context, userID string, backdrop *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET profil_arka_plani = $1 WHERE id = $2`, backdrop, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateBadge applies the admin-editable display fields. Each field is an
// independent update; nil means leave unchanged.
func (r *UserRepository) UpdateBadge(ctx context.Context, userID string, role, badge, badgeImage *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET
			rol = COALESCE($1, rol),
			yetki = COALESCE($2, yetki),
			yetki_gorseli = COALESCE($3, yetki_gorseli)
		 WHERE id = $4`,
		role, badge, badgeImage, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// TopByCredits returns the credit leaderboard.
func (r *UserRepository) TopByCredits(ctx context.Context, limit int) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY kredi DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// LatestRegistrations returns the newest accounts first.
func (r *UserRepository) LatestRegistrations(ctx context.Context, limit int) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY kayit_tarihi DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
