package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/rbac"
	"github.com/dmitrijs2005/libracli/internal/client/token"
	"github.com/dmitrijs2005/libracli/internal/common"
)

// ---- fakes ----

type memStore struct {
	mu      sync.Mutex
	access  string
	refresh string
	clears  int
	readErr error
}

func (m *memStore) Save(ctx context.Context, pair models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = pair.AccessToken, pair.RefreshToken
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = "", ""
	m.clears++
	return nil
}

func (m *memStore) Access(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.readErr
}

func (m *memStore) Refresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, m.readErr
}

type fakeAuth struct {
	loginPair models.TokenPair
	loginErr  error
	logoutErr error

	loginCalls  int
	logoutCalls int

	lastUsername string
	lastPassword string
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	f.loginCalls++
	f.lastUsername, f.lastPassword = username, password
	return f.loginPair, f.loginErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func signToken(t *testing.T, username, role string, id int64, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		ID:   id,
		Role: role,
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// ---- bootstrap ----

func TestBootstrap_NoStoredToken(t *testing.T) {
	s := New(&memStore{}, &fakeAuth{}, nil)
	require.True(t, s.IsLoading())

	s.Bootstrap(context.Background())

	require.Equal(t, StateUnauthenticated, s.State())
	require.Nil(t, s.CurrentIdentity())
	for _, c := range rbac.All {
		require.False(t, s.HasCapability(c))
	}
}

func TestBootstrap_StoredAdminToken(t *testing.T) {
	access := signToken(t, "root", common.RoleAdmin, 1, time.Now().Add(time.Hour))
	store := &memStore{access: access, refresh: "R"}
	s := New(store, &fakeAuth{}, nil)

	s.Bootstrap(context.Background())

	require.Equal(t, StateAuthenticated, s.State())
	id := s.CurrentIdentity()
	require.NotNil(t, id)
	require.Equal(t, "root", id.Username)
	require.Equal(t, common.RoleAdmin, id.Role)
	for _, c := range rbac.All {
		require.True(t, s.HasCapability(c))
	}
}

func TestBootstrap_UndecodableTokenDiscarded(t *testing.T) {
	store := &memStore{access: "garbage", refresh: "R"}
	s := New(store, &fakeAuth{}, nil)

	s.Bootstrap(context.Background())

	require.Equal(t, StateUnauthenticated, s.State())
	require.Equal(t, 1, store.clears)
	require.Empty(t, store.access)
	require.Empty(t, store.refresh)
}

func TestBootstrap_StoreReadErrorDegrades(t *testing.T) {
	store := &memStore{readErr: errors.New("disk gone")}
	s := New(store, &fakeAuth{}, nil)

	s.Bootstrap(context.Background())

	require.Equal(t, StateUnauthenticated, s.State())
}

func TestBootstrap_RunsOnlyOnce(t *testing.T) {
	access := signToken(t, "alice", common.RoleUser, 2, time.Now().Add(time.Hour))
	store := &memStore{}
	s := New(store, &fakeAuth{}, nil)

	s.Bootstrap(context.Background())
	require.Equal(t, StateUnauthenticated, s.State())

	// A token appearing later must not flip the state via Bootstrap.
	store.access, store.refresh = access, "R"
	s.Bootstrap(context.Background())
	require.Equal(t, StateUnauthenticated, s.State())
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	access := signToken(t, "alice", common.RoleUser, 2, time.Now().Add(time.Hour))
	auth := &fakeAuth{loginPair: models.TokenPair{AccessToken: access, RefreshToken: "R1"}}
	store := &memStore{}
	s := New(store, auth, nil)
	s.Bootstrap(context.Background())

	require.NoError(t, s.Login(context.Background(), "alice", "pw"))

	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, "alice", s.CurrentIdentity().Username)
	require.Equal(t, int64(2), s.CurrentIdentity().ID)
	require.Equal(t, access, store.access)
	require.Equal(t, "R1", store.refresh)

	require.True(t, s.HasCapability(rbac.BookRead))
	require.False(t, s.HasCapability(rbac.BookCreate))
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	auth := &fakeAuth{loginErr: common.ErrUnauthorized}
	store := &memStore{}
	s := New(store, auth, nil)
	s.Bootstrap(context.Background())

	err := s.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Equal(t, StateUnauthenticated, s.State())
	require.Empty(t, store.access)
}

func TestLogin_UndecodablePairRejected(t *testing.T) {
	auth := &fakeAuth{loginPair: models.TokenPair{AccessToken: "garbage", RefreshToken: "R1"}}
	store := &memStore{}
	s := New(store, auth, nil)
	s.Bootstrap(context.Background())

	err := s.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.Equal(t, StateUnauthenticated, s.State())
	require.Empty(t, store.access, "a pair with an undecodable access token must not be persisted")
}

// ---- logout ----

func TestLogout_ClearsLocalStateEvenWhenRevokeFails(t *testing.T) {
	access := signToken(t, "alice", common.RoleUser, 2, time.Now().Add(time.Hour))
	auth := &fakeAuth{logoutErr: common.ErrUnavailable}
	store := &memStore{access: access, refresh: "R"}
	s := New(store, auth, nil)
	s.Bootstrap(context.Background())
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Logout(context.Background()))

	require.Equal(t, 1, auth.logoutCalls)
	require.Equal(t, StateUnauthenticated, s.State())
	require.Nil(t, s.CurrentIdentity())
	require.Empty(t, store.access)
	require.Empty(t, store.refresh)
}

func TestLogout_WithoutTokenSkipsServerCall(t *testing.T) {
	auth := &fakeAuth{}
	s := New(&memStore{}, auth, nil)
	s.Bootstrap(context.Background())

	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, 0, auth.logoutCalls)
	require.Equal(t, StateUnauthenticated, s.State())
}

// ---- end to end ----

// TestLoginRefreshRetryScenario drives the real HTTP client against a fake
// service: login issues a pair, the first catalog call is rejected with 401,
// the client refreshes once and the retried call succeeds.
func TestLoginRefreshRetryScenario(t *testing.T) {
	access1 := signToken(t, "alice", common.RoleUser, 2, time.Now().Add(-time.Minute))
	access2 := signToken(t, "alice", common.RoleUser, 2, time.Now().Add(time.Hour))

	var refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(models.TokenPair{AccessToken: access1, RefreshToken: "R1"})
		case "/auth/refresh_token":
			refreshCalls++
			var req models.RefreshTokenRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "R1", req.RefreshToken)
			_ = json.NewEncoder(w).Encode(models.TokenPair{AccessToken: access2, RefreshToken: "R2"})
		case "/books":
			if r.Header.Get("Authorization") != "Bearer "+access2 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`[{"id":1,"title":"Dune"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := &memStore{}
	client := api.NewHTTPClient(srv.URL, store, 5*time.Second, nil)
	s := New(store, client, nil)
	s.Bootstrap(context.Background())

	require.NoError(t, s.Login(context.Background(), "alice", "pw"))
	require.Equal(t, common.RoleUser, s.CurrentIdentity().Role)

	books, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)

	require.Equal(t, 1, refreshCalls)
	require.Equal(t, access2, store.access)
	require.Equal(t, "R2", store.refresh)
}
