package db

import (
	"context"

	"rexagon/internal/logger"
	"rexagon/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var forumCategories = []string{"Destek", "Şikayet", "Yardım", "Reklam", "Öneri", "Duyurular", "Genel"}

var marketCategories = []string{"VIP'ler", "Spawnerlar", "Özel Eşyalar", "Paketler"}

// Seed creates the default forum/market categories and the admin account.
// Everything is keyed on unique names so repeated starts are no-ops.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminUsername, adminEmail, adminPassword string) error {
	for _, name := range forumCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO forum_categories (id, isim, aciklama)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (isim) DO NOTHING`,
			uuid.NewString(), name, name+" kategorisi",
		)
		if err != nil {
			return err
		}
	}

	for _, name := range marketCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO market_categories (id, isim, aciklama)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (isim) DO NOTHING`,
			uuid.NewString(), name, name+" kategorisi",
		)
		if err != nil {
			return err
		}
	}

	if adminPassword == "" {
		// No seed password configured, skip admin creation
		return nil
	}

	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE kullanici_adi = $1)`, adminUsername,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := service.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, kullanici_adi, email, sifre_hash, rol, yetki)
		 VALUES ($1, $2, $3, $4, 'admin', 'Yönetici')`,
		uuid.NewString(), adminUsername, adminEmail, hash,
	)
	if err != nil {
		return err
	}

	logger.Info("admin account created", "username", adminUsername)
	return nil
}
