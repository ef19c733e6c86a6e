package domain

import "time"

// Transaction types and statuses on the credit ledger. Rows are append
// only: once written they are never updated or deleted.
const (
	TxTypeTopUp    = "yukleme"
	TxTypePurchase = "satin_alma"

	TxStatusPending   = "beklemede"
	TxStatusCompleted = "tamamlandi"
)

type Transaction struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"kullanici_id" json:"kullanici_id"`
	Amount    float64   `db:"tutar" json:"tutar"`
	Type      string    `db:"tip" json:"tip"`
	Status    string    `db:"durum" json:"durum"`
	CreatedAt time.Time `db:"tarih" json:"tarih"`
}

// Purchase is the catalog-side record of a market sale, separate from
// the ledger row so best-seller and recent-purchase views need no ledger
// scans.
type Purchase struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"kullanici_id" json:"kullanici_id"`
	ItemID     string    `db:"urun_id" json:"urun_id"`
	ItemName   string    `db:"urun_adi" json:"urun_adi"`
	TotalPrice float64   `db:"toplam_fiyat" json:"toplam_fiyat"`
	CreatedAt  time.Time `db:"tarih" json:"tarih"`
}
