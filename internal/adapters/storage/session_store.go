package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shiftbot/internal/domain"
	"shiftbot/internal/ports"
)

// SQLiteSessionStore persists dialogue sessions across process restarts.
// The full session travels as a JSON payload column; it shares the
// repository's database handle.
type SQLiteSessionStore struct {
	db *gorm.DB
}

var _ ports.SessionStore = (*SQLiteSessionStore)(nil)

// NewSessionStore creates a session store over the repository's database
func NewSessionStore(repo *SQLiteRepository) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: repo.db}
}

// Load implements ports.SessionStore.Load; (nil, nil) when absent
func (s *SQLiteSessionStore) Load(ctx context.Context, userID int64) (*domain.Session, error) {
	var model SessionModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(model.Payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session payload for user %d: %w", userID, err)
	}
	return &session, nil
}

// Save implements ports.SessionStore.Save
func (s *SQLiteSessionStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session payload: %w", err)
	}

	model := SessionModel{
		UserID:  session.UserID,
		State:   string(session.State),
		Payload: payload,
	}

	return withRetry(func() error {
		return s.db.WithContext(ctx).Save(&model).Error
	}, 3)
}

// Clear implements ports.SessionStore.Clear; clearing an absent session
// is a no-op
func (s *SQLiteSessionStore) Clear(ctx context.Context, userID int64) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&SessionModel{}).Error
	}, 3)
}
