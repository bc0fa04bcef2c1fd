package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/common"
)

func TestLogin_ReturnsPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		// Login must not carry a stale bearer token.
		require.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req.Username)
		require.Equal(t, "s3cret", req.Password)

		writePair(w, "A1", "R1")
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{access: "STALE", refresh: "STALE"})

	pair, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, models.TokenPair{AccessToken: "A1", RefreshToken: "R1"}, pair)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{})

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Contains(t, err.Error(), "bad credentials")
}

func TestLogin_IncompletePairRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePair(w, "A1", "")
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{})

	_, err := c.Login(context.Background(), "alice", "s3cret")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestMyTotalFines_DecodesNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fines/my-total", r.URL.Path)
		_, _ = w.Write([]byte(`12.5`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{access: "A", refresh: "R"})

	total, err := c.MyTotalFines(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12.5, total)
}

func TestStatusError_Mapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrUnauthorized},
		{http.StatusForbidden, common.ErrUnauthorized},
		{http.StatusNotFound, common.ErrNotFound},
		{http.StatusBadRequest, common.ErrValidation},
		{http.StatusUnprocessableEntity, common.ErrValidation},
		{http.StatusInternalServerError, common.ErrUnavailable},
		{http.StatusBadGateway, common.ErrUnavailable},
	}

	for _, tc := range tests {
		err := statusError(tc.status, []byte("msg"))
		require.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}

	// Statuses outside the taxonomy keep their code in the message.
	err := statusError(http.StatusTeapot, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "418")
}

func TestConnectionError_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, &memStore{}, time.Second, nil)

	_, err := c.ListBooks(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDeleteBook_SendsDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{access: "A", refresh: "R"})

	require.NoError(t, c.DeleteBook(context.Background(), 9))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/books/9", gotPath)
}

func TestUploadImage_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload/image", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "cover.png", hdr.Filename)

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(data))

		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/cover.png"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStore{access: "A", refresh: "R"})

	url, err := c.UploadImage(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/cover.png", url)
}
