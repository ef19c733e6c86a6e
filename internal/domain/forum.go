package domain

import "time"

type ForumCategory struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"isim" json:"isim"`
	Description string `db:"aciklama" json:"aciklama"`
}

type ForumTopic struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"baslik" json:"baslik"`
	Body       string    `db:"icerik" json:"icerik"`
	Category   string    `db:"kategori" json:"kategori"`
	AuthorID   string    `db:"yazar_id" json:"yazar_id"`
	AuthorName string    `db:"-" json:"yazar_adi,omitempty"`
	ReplyCount int       `db:"-" json:"cevap_sayisi"`
	CreatedAt  time.Time `db:"tarih" json:"tarih"`
}

type ForumReply struct {
	ID         string    `db:"id" json:"id"`
	TopicID    string    `db:"konu_id" json:"konu_id"`
	Body       string    `db:"icerik" json:"icerik"`
	AuthorID   string    `db:"yazar_id" json:"yazar_id"`
	AuthorName string    `db:"-" json:"yazar_adi,omitempty"`
	CreatedAt  time.Time `db:"tarih" json:"tarih"`
}
