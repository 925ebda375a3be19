package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg/log"

	"github.com/google/uuid"
	auth "github.com/supabase-community/auth-go"
)

// SupabaseProvider verifies access tokens against the Supabase auth API.
type SupabaseProvider struct {
	client    auth.Client
	timeout   time.Duration
	transport http.RoundTripper
}

var _ interfaces.IIdentityProvider = (*SupabaseProvider)(nil)

// NewSupabaseProvider targets {baseURL}/auth/v1, which covers both hosted
// projects and self-hosted instances.
func NewSupabaseProvider(baseURL, anonKey string, timeout time.Duration) *SupabaseProvider {
	authURL := strings.TrimRight(baseURL, "/") + "/auth/v1"
	return &SupabaseProvider{
		client:    auth.New("", anonKey).WithCustomAuthURL(authURL),
		timeout:   timeout,
		transport: http.DefaultTransport,
	}
}

func (p *SupabaseProvider) VerifyToken(ctx context.Context, token string) (entities.Actor, error) {
	rt := &callTransport{ctx: ctx, next: p.transport}
	client := p.client.
		WithClient(http.Client{Timeout: p.timeout, Transport: rt}).
		WithToken(token)

	user, err := client.GetUser()
	rt.release()
	if err != nil {
		switch rt.status {
		case 0:
			return entities.Actor{}, fmt.Errorf("identity provider unavailable: %w", err)
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return entities.Actor{}, interfaces.ErrInvalidToken
		case http.StatusOK:
			return entities.Actor{}, fmt.Errorf("decode identity response: %w", err)
		}
		log.Warn("[identity][supabase] unexpected status", "status", rt.status, "error", err.Error())
		return entities.Actor{}, fmt.Errorf("identity provider returned %d: %w", rt.status, err)
	}
	if user == nil || user.ID == uuid.Nil {
		return entities.Actor{}, interfaces.ErrInvalidToken
	}

	return entities.Actor{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  roleFromMetadata(user.AppMetadata, user.UserMetadata),
	}, nil
}

// callTransport cancels one verification together with the caller's context
// and keeps the status code of the reply.
type callTransport struct {
	ctx    context.Context
	next   http.RoundTripper
	status int
	stops  []func()
}

func (t *callTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithCancel(req.Context())
	stop := context.AfterFunc(t.ctx, cancel)
	t.stops = append(t.stops, func() {
		stop()
		cancel()
	})

	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	if resp != nil {
		t.status = resp.StatusCode
	}
	return resp, err
}

// release runs once the response body has been consumed.
func (t *callTransport) release() {
	for _, stop := range t.stops {
		stop()
	}
	t.stops = nil
}

// roleFromMetadata prefers the server-controlled app_metadata claim.
func roleFromMetadata(sources ...map[string]interface{}) entities.Role {
	for _, md := range sources {
		raw, ok := md["role"].(string)
		if !ok {
			continue
		}
		if role := entities.ParseRole(raw); role != "" {
			return role
		}
	}
	return ""
}
