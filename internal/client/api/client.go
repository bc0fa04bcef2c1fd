// Package api implements the REST client for the library-management
// service: an authenticating transport that refreshes the token pair on 401
// and replays the failed request once, plus typed wrappers over the
// resource endpoints.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// Client is the full surface of the remote service as consumed by the CLI
// and the application services.
type Client interface {
	// Auth.
	Login(ctx context.Context, username, password string) (models.TokenPair, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error)
	RequestRegister(ctx context.Context, req models.RegisterRequest) error
	ConfirmRegister(ctx context.Context, req models.ConfirmRegisterRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, req models.ConfirmPasswordResetRequest) error

	// Books.
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, id int64, book models.Book) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// Borrows.
	ListBorrows(ctx context.Context) ([]models.Borrow, error)
	GetBorrow(ctx context.Context, id int64) (*models.Borrow, error)
	CreateBorrow(ctx context.Context, req models.CreateBorrowRequest) (*models.Borrow, error)
	ReturnBook(ctx context.Context, borrowID int64) (*models.Borrow, error)

	// Fines.
	MyFines(ctx context.Context) ([]models.Fine, error)
	MyTotalFines(ctx context.Context) (float64, error)
	AllUsersFines(ctx context.Context) ([]models.UserFine, error)
	UserFines(ctx context.Context, userID int64) ([]models.Fine, error)
	MarkFinePaid(ctx context.Context, fineID int64) error

	// Admin users.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateUserStatus(ctx context.Context, id int64, status string) error
	ResetUserPassword(ctx context.Context, id int64) error

	// Uploads.
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
