package authctx

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

// State is a snapshot of the provider.
type State struct {
	User        *models.User `json:"user"`
	Loading     bool         `json:"loading"`
	Initialized bool         `json:"initialized"`
}

// IsAuthenticated reports whether a user is known.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// Provider owns the auth state of one request.
type Provider struct {
	auth service.AuthService

	once sync.Once

	mu    sync.RWMutex
	state State
	// writes counts completed actions; Init does not overwrite their result
	writes int

	session        models.Session
	sessionCleared bool
}

// NewProvider returns a provider in the loading state.
func NewProvider(auth service.AuthService) *Provider {
	return &Provider{
		auth:  auth,
		state: State{Loading: true},
	}
}

// Init resolves the current user exactly once. Concurrent callers wait for
// the same lookup and all get the resulting state.
func (p *Provider) Init(ctx context.Context) State {
	p.once.Do(func() {
		p.mu.RLock()
		before := p.writes
		p.mu.RUnlock()

		user := p.auth.GetCurrentUser(p.sessionContext(ctx))

		p.mu.Lock()
		if p.writes == before {
			p.state.User = user
		}
		p.state.Loading = false
		p.state.Initialized = true
		p.mu.Unlock()
	})

	return p.State()
}

// State returns the current snapshot.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state
}

// User is a shortcut for State().User.
func (p *Provider) User() *models.User {
	return p.State().User
}

// Session returns the session created by Login or Signup during this
// request, if any.
func (p *Provider) Session() (models.Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.session, !p.session.IsZero()
}

// SessionCleared reports whether Logout or LogoutAll succeeded during this
// request.
func (p *Provider) SessionCleared() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sessionCleared
}

// sessionContext makes calls use the session written during this request
// instead of the one from the cookie.
func (p *Provider) sessionContext(ctx context.Context) context.Context {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch {
	case !p.session.IsZero():
		return utils.WithSessionSecret(ctx, p.session.Secret)
	case p.sessionCleared:
		return utils.WithoutSessionSecret(ctx)
	default:
		return ctx
	}
}

func (p *Provider) setUser(user *models.User) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.User = user
	p.writes++
}

func (p *Provider) setSession(session models.Session, user *models.User) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = session
	p.sessionCleared = false
	p.state.User = user
	p.writes++
}

func (p *Provider) clearSession() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = models.Session{}
	p.sessionCleared = true
	p.state.User = nil
	p.writes++
}

// refresh re-reads the user after a mutation. A failed lookup keeps the
// previous user.
func (p *Provider) refresh(ctx context.Context) {
	if user := p.auth.GetCurrentUser(p.sessionContext(ctx)); user != nil {
		p.setUser(user)
	}
}

// failure converts an error into a result. Non-auth errors get the generic
// message.
func failure(ctx context.Context, action string, err error) models.AuthResult {
	logger.FromContext(ctx).Debug().Err(err).Str("action", action).Msg("auth action failed")

	var authErr *service.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return models.AuthFailure(authErr.Message)
	}

	return models.AuthFailure(app.MsgGenericFailure)
}
