package ports

import (
	"context"

	"shiftbot/internal/domain"
)

// SessionStore owns all live dialogue sessions, keyed by user id.
// Load returns (nil, nil) when the user has no session. Implementations
// must hand out independent copies so the caller's mutations only become
// visible through Save.
type SessionStore interface {
	Load(ctx context.Context, userID int64) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context, userID int64) error
}
