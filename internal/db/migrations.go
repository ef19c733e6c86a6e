package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations is the full schema, applied in order. Every statement is
// idempotent so startup can re-run the list safely.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		kullanici_adi TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		sifre_hash TEXT NOT NULL,
		kredi NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (kredi >= 0),
		rol TEXT NOT NULL DEFAULT 'user',
		yetki TEXT NOT NULL DEFAULT 'Oyuncu',
		yetki_gorseli TEXT,
		biyografi TEXT NOT NULL DEFAULT '',
		profil_arka_plani TEXT,
		aktif_tema_id UUID,
		dogum_tarihi TEXT NOT NULL DEFAULT '',
		kayit_tarihi TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS credit_transactions (
		id UUID PRIMARY KEY,
		kullanici_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tutar NUMERIC(12,2) NOT NULL,
		tip TEXT NOT NULL,
		durum TEXT NOT NULL DEFAULT 'tamamlandi',
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_credit_transactions_user
		ON credit_transactions (kullanici_id, tarih DESC)`,
	`CREATE TABLE IF NOT EXISTS market_categories (
		id UUID PRIMARY KEY,
		isim TEXT UNIQUE NOT NULL,
		aciklama TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS market_items (
		id UUID PRIMARY KEY,
		isim TEXT NOT NULL,
		aciklama TEXT NOT NULL DEFAULT '',
		fiyat NUMERIC(12,2) NOT NULL CHECK (fiyat >= 0),
		indirim NUMERIC(5,2) NOT NULL DEFAULT 0 CHECK (indirim >= 0 AND indirim <= 100),
		stok INTEGER NOT NULL DEFAULT 0 CHECK (stok >= 0),
		kategori TEXT NOT NULL,
		gorsel TEXT,
		olusturulma_tarihi TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id UUID PRIMARY KEY,
		kullanici_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		urun_id UUID NOT NULL,
		urun_adi TEXT NOT NULL,
		toplam_fiyat NUMERIC(12,2) NOT NULL,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_item ON purchases (urun_id)`,
	`CREATE TABLE IF NOT EXISTS themes (
		id UUID PRIMARY KEY,
		isim TEXT NOT NULL,
		gorsel TEXT NOT NULL,
		fiyat NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fiyat >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS user_themes (
		kullanici_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tema_id UUID NOT NULL REFERENCES themes(id) ON DELETE CASCADE,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (kullanici_id, tema_id)
	)`,
	`CREATE TABLE IF NOT EXISTS forum_categories (
		id UUID PRIMARY KEY,
		isim TEXT UNIQUE NOT NULL,
		aciklama TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS forum_topics (
		id UUID PRIMARY KEY,
		baslik TEXT NOT NULL,
		icerik TEXT NOT NULL,
		kategori TEXT NOT NULL,
		yazar_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_forum_topics_kategori
		ON forum_topics (kategori, tarih DESC)`,
	`CREATE TABLE IF NOT EXISTS forum_replies (
		id UUID PRIMARY KEY,
		konu_id UUID NOT NULL REFERENCES forum_topics(id) ON DELETE CASCADE,
		icerik TEXT NOT NULL,
		yazar_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id UUID PRIMARY KEY,
		baslik TEXT NOT NULL,
		icerik TEXT NOT NULL,
		yazar_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		konu TEXT NOT NULL,
		baslik TEXT NOT NULL,
		aciklama TEXT NOT NULL,
		yazar_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		tarih TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// RunMigrations applies the schema. Safe to call on every start.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, q := range Migrations {
		if _, err := pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
