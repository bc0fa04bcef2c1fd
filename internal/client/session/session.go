// Package session owns the client's authentication state: it derives the
// current identity from the stored token pair at startup and moves between
// the unauthenticated and authenticated states on login/logout. A Session
// is constructed once at process start and injected into every collaborator
// that needs identity or capability checks; nothing in this package is
// global.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/rbac"
	"github.com/dmitrijs2005/libracli/internal/client/token"
	"github.com/dmitrijs2005/libracli/internal/client/tokenstore"
	"github.com/dmitrijs2005/libracli/internal/logging"
)

// State is the session lifecycle state.
type State int

const (
	// StateLoading is the initial state before Bootstrap has run.
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// AuthAPI is the slice of the remote service the session needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.TokenPair, error)
	Logout(ctx context.Context) error
}

// Session is the session state machine. All methods are safe for concurrent
// use.
type Session struct {
	store tokenstore.Store
	api   AuthAPI
	log   logging.Logger

	bootstrapOnce sync.Once

	mu       sync.RWMutex
	state    State
	identity *models.Identity
}

// New returns a Session in the Loading state. Call Bootstrap before asking
// for the current identity.
func New(store tokenstore.Store, api AuthAPI, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Session{store: store, api: api, log: log, state: StateLoading}
}

// Bootstrap establishes the initial state from the token store. It runs
// exactly once; later calls are no-ops. All failures (store read, decode)
// degrade to the unauthenticated state and are only logged.
func (s *Session) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		access, err := s.store.Access(ctx)
		if err != nil {
			s.log.Warn(ctx, "token store unreadable at startup", "error", err)
			s.setState(StateUnauthenticated, nil)
			return
		}
		if access == "" {
			s.setState(StateUnauthenticated, nil)
			return
		}

		claims, err := token.Decode(access)
		if err != nil {
			s.log.Warn(ctx, "stored access token undecodable, discarding session", "error", err)
			if err := s.store.Clear(ctx); err != nil {
				s.log.Warn(ctx, "token store clear failed", "error", err)
			}
			s.setState(StateUnauthenticated, nil)
			return
		}

		s.setState(StateAuthenticated, claims.Identity())
		s.log.Debug(ctx, "session restored", "user", claims.Subject, "role", claims.Role)
	})
}

// Login authenticates against the service, persists the issued pair and
// sets the identity from the access token's claims. On any failure the
// session state is left unchanged and the error is propagated.
func (s *Session) Login(ctx context.Context, username, password string) error {
	pair, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	claims, err := token.Decode(pair.AccessToken)
	if err != nil {
		return err
	}

	if err := s.store.Save(ctx, pair); err != nil {
		return err
	}

	s.setState(StateAuthenticated, claims.Identity())
	s.log.Info(ctx, "logged in", "user", claims.Subject, "role", claims.Role)
	return nil
}

// Logout revokes the session server-side on a best-effort basis, then
// clears the stored pair and the identity unconditionally. A failed revoke
// is logged and ignored: the client must never stay logged in because the
// network was down.
func (s *Session) Logout(ctx context.Context) error {
	access, err := s.store.Access(ctx)
	if err != nil {
		s.log.Warn(ctx, "token store unreadable on logout", "error", err)
	}

	if access != "" {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server-side logout failed, clearing local session anyway", "error", err)
		}
	}

	clearErr := s.store.Clear(ctx)
	s.setState(StateUnauthenticated, nil)

	if clearErr != nil {
		return clearErr
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *Session) setState(state State, identity *models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.identity = identity
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentIdentity returns the authenticated user's identity, or nil.
func (s *Session) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Session) IsLoading() bool {
	return s.State() == StateLoading
}

// HasCapability consults the permission evaluator for the current identity.
func (s *Session) HasCapability(c rbac.Capability) bool {
	return rbac.HasCapability(s.CurrentIdentity(), c)
}
