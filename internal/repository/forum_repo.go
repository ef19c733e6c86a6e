package repository

import (
	"context"
	"errors"

	"rexagon/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTopicNotFound = errors.New("forum topic not found")
	ErrReplyNotFound = errors.New("forum reply not found")
)

type ForumRepository struct {
	db *pgxpool.Pool
}

func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{db: db}
}

func (r *ForumRepository) Categories(ctx context.Context) ([]domain.ForumCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, isim, aciklama FROM forum_categories ORDER BY isim`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.ForumCategory
	for rows.Next() {
		var c domain.ForumCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// TopicsByCategory lists topics newest first with author names and reply
// counts, paginated.
func (r *ForumRepository) TopicsByCategory(ctx context.Context, category string, skip, limit int) ([]*domain.ForumTopic, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.baslik, t.icerik, t.kategori, t.yazar_id, u.kullanici_adi, t.tarih,
			(SELECT COUNT(*) FROM forum_replies fr WHERE fr.konu_id = t.id) AS cevap_sayisi
		 FROM forum_topics t
		 JOIN users u ON u.id = t.yazar_id
		 WHERE t.kategori = $1
		 ORDER BY t.tarih DESC
		 OFFSET $2 LIMIT $3`,
		category, skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*domain.ForumTopic
	for rows.Next() {
		var t domain.ForumTopic
		if err := rows.Scan(&t.ID, &t.Title, &t.Body, &t.Category, &t.AuthorID,
			&t.AuthorName, &t.CreatedAt, &t.ReplyCount); err != nil {
			return nil, err
		}
		topics = append(topics, &t)
	}
	return topics, rows.Err()
}

func (r *ForumRepository) GetTopic(ctx context.Context, id string) (*domain.ForumTopic, error) {
	var t domain.ForumTopic
	err := r.db.QueryRow(ctx,
		`SELECT t.id, t.baslik, t.icerik, t.kategori, t.yazar_id, u.kullanici_adi, t.tarih
		 FROM forum_topics t
		 JOIN users u ON u.id = t.yazar_id
		 WHERE t.id = $1`,
		id,
	).Scan(&t.ID, &t.Title, &t.Body, &t.Category, &t.AuthorID, &t.AuthorName, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Replies returns a topic's replies in posting order.
func (r *ForumRepository) Replies(ctx context.Context, topicID string) ([]*domain.ForumReply, error) {
	rows, err := r.db.Query(ctx,
		`SELECT fr.id, fr.konu_id, fr.icerik, fr.yazar_id, u.kullanici_adi, fr.tarih
		 FROM forum_replies fr
		 JOIN users u ON u.id = fr.yazar_id
		 WHERE fr.konu_id = $1
		 ORDER BY fr.tarih ASC`,
		topicID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*domain.ForumReply
	for rows.Next() {
		var fr domain.ForumReply
		if err := rows.Scan(&fr.ID, &fr.TopicID, &fr.Body, &fr.AuthorID, &fr.AuthorName, &fr.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, &fr)
	}
	return replies, rows.Err()
}

func (r *ForumRepository) CreateTopic(ctx context.Context, t *domain.ForumTopic) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO forum_topics (id, baslik, icerik, kategori, yazar_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING tarih`,
		t.ID, t.Title, t.Body, t.Category, t.AuthorID,
	).Scan(&t.CreatedAt)
}

// CreateReply inserts a reply; the topic must exist.
func (r *ForumRepository) CreateReply(ctx context.Context, fr *domain.ForumReply) error {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM forum_topics WHERE id = $1)`, fr.TopicID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrTopicNotFound
	}

	if fr.ID == "" {
		fr.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO forum_replies (id, konu_id, icerik, yazar_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING tarih`,
		fr.ID, fr.TopicID, fr.Body, fr.AuthorID,
	).Scan(&fr.CreatedAt)
}

// DeleteTopic removes a topic; replies go with it via the FK cascade.
func (r *ForumRepository) DeleteTopic(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM forum_topics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTopicNotFound
	}
	return nil
}

func (r *ForumRepository) DeleteReply(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM forum_replies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReplyNotFound
	}
	return nil
}
