package domain

import (
	"math"
	"time"
)

type MarketItem struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"isim" json:"isim"`
	Description string    `db:"aciklama" json:"aciklama"`
	Price       float64   `db:"fiyat" json:"fiyat"`
	Discount    float64   `db:"indirim" json:"indirim"`
	Stock       int       `db:"stok" json:"stok"`
	Category    string    `db:"kategori" json:"kategori"`
	Image       *string   `db:"gorsel" json:"gorsel"`
	CreatedAt   time.Time `db:"olusturulma_tarihi" json:"olusturulma_tarihi"`
}

// EffectivePrice is the price after discount, rounded to cents.
func (m *MarketItem) EffectivePrice() float64 {
	p := m.Price * (1 - m.Discount/100)
	return math.Round(p*100) / 100
}

type MarketCategory struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"isim" json:"isim"`
	Description string `db:"aciklama" json:"aciklama"`
}
