package interfaces

import (
	"context"
	"errors"

	"agenda_rastreadores/internal/domain/entities"
)

// ErrInvalidToken means the bearer credential was rejected by the identity provider.
var ErrInvalidToken = errors.New("invalid or expired token")

// IIdentityProvider verifies a bearer token with the external identity service.
type IIdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (entities.Actor, error)
}
