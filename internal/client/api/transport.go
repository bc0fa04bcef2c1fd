package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/tokenstore"
	"github.com/dmitrijs2005/libracli/internal/common"
	"github.com/dmitrijs2005/libracli/internal/logging"
)

// authTransport decorates an http.RoundTripper with the session's bearer
// token. On a 401 it refreshes the token pair through the refresh endpoint
// and replays the original request exactly once; a second 401 is returned
// to the caller untouched. The transport never clears the store: deciding
// that the session is over belongs to the session layer, not to a transport
// that may just have hit a transient failure.
//
// Refresh is single-flight: concurrent 401s queue on a mutex and the late
// arrivals reuse the pair the first one obtained.
type authTransport struct {
	base       http.RoundTripper
	store      tokenstore.Store
	refreshURL string
	log        logging.Logger

	mu sync.Mutex
}

func newAuthTransport(base http.RoundTripper, store tokenstore.Store, refreshURL string, log logging.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authTransport{base: base, store: store, refreshURL: refreshURL, log: log}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	access, err := t.store.Access(ctx)
	if err != nil {
		return nil, fmt.Errorf("token store read: %w", err)
	}

	out := cloneRequest(req, access)

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || access == "" {
		return resp, nil
	}

	newAccess, refreshErr := t.refreshPair(ctx, access)
	if refreshErr != nil {
		// Surface the original 401; the refresh outcome is only logged.
		t.log.Warn(ctx, "token refresh failed", "error", refreshErr)
		return resp, nil
	}

	// The replay consumes the request body again, so the original response
	// is no longer needed.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	retry := cloneRequest(req, newAccess)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		retry.Body = body
	}

	return t.base.RoundTrip(retry)
}

// refreshPair obtains a fresh token pair and persists it. staleAccess is the
// token that just got rejected: if the stored token already differs, another
// caller refreshed first and its result is reused.
func (t *authTransport) refreshPair(ctx context.Context, staleAccess string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.store.Access(ctx)
	if err != nil {
		return "", fmt.Errorf("token store read: %w", err)
	}
	if current != "" && current != staleAccess {
		return current, nil
	}

	refresh, err := t.store.Refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("token store read: %w", err)
	}
	if refresh == "" {
		return "", common.ErrNoRefreshToken
	}

	pair, err := t.requestRefresh(ctx, refresh)
	if err != nil {
		return "", err
	}

	if err := t.store.Save(ctx, pair); err != nil {
		return "", fmt.Errorf("token store write: %w", err)
	}

	t.log.Debug(ctx, "token pair refreshed")
	return pair.AccessToken, nil
}

// requestRefresh calls the refresh endpoint directly through the base
// transport so the exchange cannot recurse into RoundTrip.
func (t *authTransport) requestRefresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair

	payload, err := json.Marshal(models.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return pair, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return pair, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return pair, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pair, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return pair, statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, &pair); err != nil {
		return pair, fmt.Errorf("decode refresh response: %w", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return pair, fmt.Errorf("%w: incomplete token pair in refresh response", common.ErrInvalidToken)
	}
	return pair, nil
}

// cloneRequest copies req, attaching the bearer token (when present) and a
// request id. The original request is left untouched, as RoundTrip requires.
func cloneRequest(req *http.Request, access string) *http.Request {
	out := req.Clone(req.Context())
	if access != "" {
		out.Header.Set(common.AuthorizationHeaderName, "Bearer "+access)
	}
	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	return out
}
