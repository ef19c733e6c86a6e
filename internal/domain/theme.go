package domain

import "time"

// Theme is a purchasable profile background. Ownership is permanent once
// unlocked; the "active" selection is a nullable pointer on the user.
type Theme struct {
	ID    string  `db:"id" json:"id"`
	Name  string  `db:"isim" json:"isim"`
	Image string  `db:"gorsel" json:"gorsel"`
	Price float64 `db:"fiyat" json:"fiyat"`

	// Set when listing for an authenticated user
	Owned  bool `db:"-" json:"sahip,omitempty"`
	Active bool `db:"-" json:"aktif,omitempty"`
}

type News struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"baslik" json:"baslik"`
	Body       string    `db:"icerik" json:"icerik"`
	AuthorID   string    `db:"yazar_id" json:"yazar_id"`
	AuthorName string    `db:"-" json:"yazar_adi,omitempty"`
	CreatedAt  time.Time `db:"tarih" json:"tarih"`
}

type Report struct {
	ID          string    `db:"id" json:"id"`
	Topic       string    `db:"konu" json:"konu"`
	Title       string    `db:"baslik" json:"baslik"`
	Description string    `db:"aciklama" json:"aciklama"`
	AuthorID    string    `db:"yazar_id" json:"yazar_id"`
	AuthorName  string    `db:"-" json:"yazar_adi,omitempty"`
	CreatedAt   time.Time `db:"tarih" json:"tarih"`
}
