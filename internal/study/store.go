package study

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// GuideStore caches generated guides so a repeat view of the same topic does
// not re-bill the generation service. This is content cache only; no user
// state or attempt history goes through it.
type GuideStore interface {
	Get(ctx context.Context, topicID string) (string, error) // "" when absent
	Put(ctx context.Context, topicID, markdown string) error
}

type SQLGuideStore struct {
	db *sql.DB
}

func NewSQLGuideStore(db *sql.DB) *SQLGuideStore {
	return &SQLGuideStore{db: db}
}

func (s *SQLGuideStore) Get(ctx context.Context, topicID string) (string, error) {
	var md string
	err := s.db.QueryRowContext(ctx, `SELECT markdown FROM study_guides WHERE topic_id=$1`, topicID).Scan(&md)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return md, nil
}

func (s *SQLGuideStore) Put(ctx context.Context, topicID, markdown string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO study_guides (topic_id,markdown,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (topic_id) DO UPDATE SET markdown=EXCLUDED.markdown, updated_at=EXCLUDED.updated_at`,
		topicID, markdown, time.Now().Unix())
	return err
}
