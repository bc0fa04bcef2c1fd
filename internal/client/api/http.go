package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/tokenstore"
	"github.com/dmitrijs2005/libracli/internal/common"
	"github.com/dmitrijs2005/libracli/internal/logging"
)

// HTTPClient talks JSON over HTTP to the library service. Resource calls go
// through the authenticating transport; the /auth endpoints that establish
// or recover a session use a bare client so a stale bearer token is never
// attached to them.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	bare    *http.Client
	store   tokenstore.Store
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the service at baseURL. The token store
// feeds the authenticating transport and receives refreshed pairs.
func NewHTTPClient(baseURL string, store tokenstore.Store, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNopLogger()
	}
	baseURL = strings.TrimRight(baseURL, "/")

	transport := newAuthTransport(nil, store, baseURL+"/auth/refresh_token", log)

	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Transport: transport, Timeout: timeout},
		bare:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// statusError maps an HTTP status to one of the shared sentinel errors,
// keeping the server's message for user-facing output.
func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}

	var sentinel error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = common.ErrUnauthorized
	case status == http.StatusNotFound:
		sentinel = common.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		sentinel = common.ErrValidation
	case status >= 500:
		sentinel = common.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", status, msg)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// do sends a JSON request and decodes a JSON response into out (when out is
// non-nil). A nil body sends an empty request.
func (c *HTTPClient) do(ctx context.Context, client *http.Client, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) doAPI(ctx context.Context, method, path string, body any, out any) error {
	return c.do(ctx, c.http, method, path, body, out)
}

func (c *HTTPClient) doAuth(ctx context.Context, method, path string, body any, out any) error {
	return c.do(ctx, c.bare, method, path, body, out)
}

// ---- auth ----

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.doAuth(ctx, http.MethodPost, "/auth/login", req, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return models.TokenPair{}, fmt.Errorf("%w: incomplete token pair in login response", common.ErrInvalidToken)
	}
	return pair, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doAPI(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair
	req := models.RefreshTokenRequest{RefreshToken: refreshToken}
	if err := c.doAuth(ctx, http.MethodPost, "/auth/refresh_token", req, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) RequestRegister(ctx context.Context, req models.RegisterRequest) error {
	return c.doAuth(ctx, http.MethodPost, "/auth/request-register", req, nil)
}

func (c *HTTPClient) ConfirmRegister(ctx context.Context, req models.ConfirmRegisterRequest) error {
	return c.doAuth(ctx, http.MethodPost, "/auth/confirm-register", req, nil)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	return c.doAuth(ctx, http.MethodPost, "/auth/request-password-reset", models.PasswordResetRequest{Email: email}, nil)
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, req models.ConfirmPasswordResetRequest) error {
	return c.doAuth(ctx, http.MethodPost, "/auth/reset-password", req, nil)
}

// ---- books ----

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.doAPI(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := c.doAPI(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	var created models.Book
	if err := c.doAPI(ctx, http.MethodPost, "/books", book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id int64, book models.Book) (*models.Book, error) {
	var updated models.Book
	if err := c.doAPI(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id int64) error {
	return c.doAPI(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

// ---- borrows ----

func (c *HTTPClient) ListBorrows(ctx context.Context) ([]models.Borrow, error) {
	var borrows []models.Borrow
	if err := c.doAPI(ctx, http.MethodGet, "/borrows", nil, &borrows); err != nil {
		return nil, err
	}
	return borrows, nil
}

func (c *HTTPClient) GetBorrow(ctx context.Context, id int64) (*models.Borrow, error) {
	var borrow models.Borrow
	if err := c.doAPI(ctx, http.MethodGet, fmt.Sprintf("/borrows/%d", id), nil, &borrow); err != nil {
		return nil, err
	}
	return &borrow, nil
}

func (c *HTTPClient) CreateBorrow(ctx context.Context, req models.CreateBorrowRequest) (*models.Borrow, error) {
	var borrow models.Borrow
	if err := c.doAPI(ctx, http.MethodPost, "/borrows", req, &borrow); err != nil {
		return nil, err
	}
	return &borrow, nil
}

func (c *HTTPClient) ReturnBook(ctx context.Context, borrowID int64) (*models.Borrow, error) {
	var borrow models.Borrow
	if err := c.doAPI(ctx, http.MethodPut, fmt.Sprintf("/borrows/%d/return", borrowID), struct{}{}, &borrow); err != nil {
		return nil, err
	}
	return &borrow, nil
}

// ---- fines ----

func (c *HTTPClient) MyFines(ctx context.Context) ([]models.Fine, error) {
	var fines []models.Fine
	if err := c.doAPI(ctx, http.MethodGet, "/fines/my-fines", nil, &fines); err != nil {
		return nil, err
	}
	return fines, nil
}

func (c *HTTPClient) MyTotalFines(ctx context.Context) (float64, error) {
	var total float64
	if err := c.doAPI(ctx, http.MethodGet, "/fines/my-total", nil, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *HTTPClient) AllUsersFines(ctx context.Context) ([]models.UserFine, error) {
	var fines []models.UserFine
	if err := c.doAPI(ctx, http.MethodGet, "/fines", nil, &fines); err != nil {
		return nil, err
	}
	return fines, nil
}

func (c *HTTPClient) UserFines(ctx context.Context, userID int64) ([]models.Fine, error) {
	var fines []models.Fine
	if err := c.doAPI(ctx, http.MethodGet, fmt.Sprintf("/fines/user/%d", userID), nil, &fines); err != nil {
		return nil, err
	}
	return fines, nil
}

func (c *HTTPClient) MarkFinePaid(ctx context.Context, fineID int64) error {
	return c.doAPI(ctx, http.MethodPut, fmt.Sprintf("/fines/%d/mark-paid", fineID), struct{}{}, nil)
}

// ---- admin users ----

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doAPI(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.doAPI(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.doAPI(ctx, http.MethodPost, "/admin/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.doAPI(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.doAPI(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func (c *HTTPClient) UpdateUserStatus(ctx context.Context, id int64, status string) error {
	req := models.UpdateUserStatusRequest{Status: status}
	return c.doAPI(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/status", id), req, nil)
}

func (c *HTTPClient) ResetUserPassword(ctx context.Context, id int64) error {
	return c.doAPI(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/reset-password", id), struct{}{}, nil)
}

// ---- uploads ----

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage posts the file as multipart form data and returns the stored
// image URL.
func (c *HTTPClient) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart request: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("build multipart request: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload/image", bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, data)
	}

	var out uploadResponse
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
	}
	return out.URL, nil
}
