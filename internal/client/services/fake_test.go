package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// fakeClient implements api.Client for the service tests. Preset the *Ret /
// *Err fields and inspect the Last* fields after the call.
type fakeClient struct {
	LoginPair models.TokenPair
	LoginErr  error
	LogoutErr error

	RefreshPair models.TokenPair
	RefreshErr  error

	RegisterErr      error
	ConfirmErr       error
	ResetRequestErr  error
	ResetConfirmErr  error
	LastRegisterReq  models.RegisterRequest
	LastConfirmReq   models.ConfirmRegisterRequest
	LastResetEmail   string
	LastResetConfirm models.ConfirmPasswordResetRequest

	BooksRet     []models.Book
	BookRet      *models.Book
	BookErr      error
	LastBookID   int64
	LastBookSent models.Book

	BorrowsRet    []models.Borrow
	BorrowRet     *models.Borrow
	BorrowErr     error
	LastBorrowID  int64
	LastBorrowReq models.CreateBorrowRequest

	FinesRet      []models.Fine
	UserFinesRet  []models.UserFine
	TotalRet      float64
	FineErr       error
	LastFineID    int64
	LastFineUser  int64

	UsersRet     []models.User
	UserRet      *models.User
	UserErr      error
	LastUserID   int64
	LastUserSent models.User
	LastStatus   string

	UploadURL     string
	UploadErr     error
	LastUploadName string
	LastUploadData []byte
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	return f.LoginPair, f.LoginErr
}
func (f *fakeClient) Logout(ctx context.Context) error { return f.LogoutErr }
func (f *fakeClient) RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return f.RefreshPair, f.RefreshErr
}

func (f *fakeClient) RequestRegister(ctx context.Context, req models.RegisterRequest) error {
	f.LastRegisterReq = req
	return f.RegisterErr
}
func (f *fakeClient) ConfirmRegister(ctx context.Context, req models.ConfirmRegisterRequest) error {
	f.LastConfirmReq = req
	return f.ConfirmErr
}
func (f *fakeClient) RequestPasswordReset(ctx context.Context, email string) error {
	f.LastResetEmail = email
	return f.ResetRequestErr
}
func (f *fakeClient) ConfirmPasswordReset(ctx context.Context, req models.ConfirmPasswordResetRequest) error {
	f.LastResetConfirm = req
	return f.ResetConfirmErr
}

func (f *fakeClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	return f.BooksRet, f.BookErr
}
func (f *fakeClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	f.LastBookID = id
	return f.BookRet, f.BookErr
}
func (f *fakeClient) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	f.LastBookSent = book
	return f.BookRet, f.BookErr
}
func (f *fakeClient) UpdateBook(ctx context.Context, id int64, book models.Book) (*models.Book, error) {
	f.LastBookID, f.LastBookSent = id, book
	return f.BookRet, f.BookErr
}
func (f *fakeClient) DeleteBook(ctx context.Context, id int64) error {
	f.LastBookID = id
	return f.BookErr
}

func (f *fakeClient) ListBorrows(ctx context.Context) ([]models.Borrow, error) {
	return f.BorrowsRet, f.BorrowErr
}
func (f *fakeClient) GetBorrow(ctx context.Context, id int64) (*models.Borrow, error) {
	f.LastBorrowID = id
	return f.BorrowRet, f.BorrowErr
}
func (f *fakeClient) CreateBorrow(ctx context.Context, req models.CreateBorrowRequest) (*models.Borrow, error) {
	f.LastBorrowReq = req
	return f.BorrowRet, f.BorrowErr
}
func (f *fakeClient) ReturnBook(ctx context.Context, borrowID int64) (*models.Borrow, error) {
	f.LastBorrowID = borrowID
	return f.BorrowRet, f.BorrowErr
}

func (f *fakeClient) MyFines(ctx context.Context) ([]models.Fine, error) {
	return f.FinesRet, f.FineErr
}
func (f *fakeClient) MyTotalFines(ctx context.Context) (float64, error) {
	return f.TotalRet, f.FineErr
}
func (f *fakeClient) AllUsersFines(ctx context.Context) ([]models.UserFine, error) {
	return f.UserFinesRet, f.FineErr
}
func (f *fakeClient) UserFines(ctx context.Context, userID int64) ([]models.Fine, error) {
	f.LastFineUser = userID
	return f.FinesRet, f.FineErr
}
func (f *fakeClient) MarkFinePaid(ctx context.Context, fineID int64) error {
	f.LastFineID = fineID
	return f.FineErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.UsersRet, f.UserErr
}
func (f *fakeClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	f.LastUserID = id
	return f.UserRet, f.UserErr
}
func (f *fakeClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	f.LastUserSent = user
	return f.UserRet, f.UserErr
}
func (f *fakeClient) UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error) {
	f.LastUserID, f.LastUserSent = id, user
	return f.UserRet, f.UserErr
}
func (f *fakeClient) DeleteUser(ctx context.Context, id int64) error {
	f.LastUserID = id
	return f.UserErr
}
func (f *fakeClient) UpdateUserStatus(ctx context.Context, id int64, status string) error {
	f.LastUserID, f.LastStatus = id, status
	return f.UserErr
}
func (f *fakeClient) ResetUserPassword(ctx context.Context, id int64) error {
	f.LastUserID = id
	return f.UserErr
}

func (f *fakeClient) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	f.LastUploadName = filename
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.LastUploadData = data
	return f.UploadURL, f.UploadErr
}
