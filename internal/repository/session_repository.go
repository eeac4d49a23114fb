package repository

import (
	"context"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
)

// SessionRepository stores opaque bearer-token sessions. There is
// deliberately no Delete: logout is client-side token discard, and the
// resolver hits the store on every request so an out-of-band row deletion
// takes effect immediately.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
