package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// DefaultBorrowPeriod is applied when the caller does not pick a due date.
const DefaultBorrowPeriod = 14 * 24 * time.Hour

// timeNow is a test seam for due-date defaulting.
var timeNow = time.Now

// BorrowService exposes borrowing operations to the CLI.
type BorrowService interface {
	List(ctx context.Context) ([]models.Borrow, error)
	Get(ctx context.Context, id int64) (*models.Borrow, error)
	// Borrow creates a borrow for bookID. A zero dueDate defaults to
	// DefaultBorrowPeriod from now.
	Borrow(ctx context.Context, bookID int64, dueDate time.Time) (*models.Borrow, error)
	Return(ctx context.Context, borrowID int64) (*models.Borrow, error)
}

type borrowService struct {
	client api.Client
}

func NewBorrowService(client api.Client) BorrowService {
	return &borrowService{client: client}
}

func (s *borrowService) List(ctx context.Context) ([]models.Borrow, error) {
	return s.client.ListBorrows(ctx)
}

func (s *borrowService) Get(ctx context.Context, id int64) (*models.Borrow, error) {
	return s.client.GetBorrow(ctx, id)
}

func (s *borrowService) Borrow(ctx context.Context, bookID int64, dueDate time.Time) (*models.Borrow, error) {
	if dueDate.IsZero() {
		dueDate = timeNow().Add(DefaultBorrowPeriod)
	}

	req := models.CreateBorrowRequest{
		BookID:  bookID,
		DueDate: dueDate.Format("2006-01-02"),
	}
	return s.client.CreateBorrow(ctx, req)
}

func (s *borrowService) Return(ctx context.Context, borrowID int64) (*models.Borrow, error) {
	return s.client.ReturnBook(ctx, borrowID)
}
