package identity

import (
	"context"
	"fmt"
	"strings"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"
)

// StaticProvider resolves a fixed token table. Meant for local development
// and tests, never for production.
type StaticProvider struct {
	actors map[string]entities.Actor
}

var _ interfaces.IIdentityProvider = (*StaticProvider)(nil)

// NewStaticProvider parses "token=email:role:id,token2=email:role:id".
// The id part is optional and defaults to the email.
func NewStaticProvider(tokens string) (*StaticProvider, error) {
	actors := make(map[string]entities.Actor)
	for _, entry := range strings.Split(tokens, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		token, rest, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("static token entry %q: expected token=email:role[:id]", entry)
		}
		parts := strings.Split(rest, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("static token entry %q: expected token=email:role[:id]", entry)
		}
		role := entities.ParseRole(parts[1])
		if role == "" {
			return nil, fmt.Errorf("static token entry %q: unknown role %q", entry, parts[1])
		}
		actor := entities.Actor{Email: strings.TrimSpace(parts[0]), Role: role}
		actor.ID = actor.Email
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			actor.ID = strings.TrimSpace(parts[2])
		}
		actors[strings.TrimSpace(token)] = actor
	}
	if len(actors) == 0 {
		return nil, fmt.Errorf("no static tokens configured")
	}
	return &StaticProvider{actors: actors}, nil
}

func (p *StaticProvider) VerifyToken(_ context.Context, token string) (entities.Actor, error) {
	actor, ok := p.actors[token]
	if !ok {
		return entities.Actor{}, interfaces.ErrInvalidToken
	}
	return actor, nil
}
