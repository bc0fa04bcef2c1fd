package services

import (
	"context"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// FineService exposes fine tracking to the CLI. The My* methods operate on
// the authenticated user; the rest require admin capabilities server-side.
type FineService interface {
	MyFines(ctx context.Context) ([]models.Fine, error)
	MyTotal(ctx context.Context) (float64, error)
	AllUsers(ctx context.Context) ([]models.UserFine, error)
	ByUser(ctx context.Context, userID int64) ([]models.Fine, error)
	MarkPaid(ctx context.Context, fineID int64) error
}

type fineService struct {
	client api.Client
}

func NewFineService(client api.Client) FineService {
	return &fineService{client: client}
}

func (s *fineService) MyFines(ctx context.Context) ([]models.Fine, error) {
	return s.client.MyFines(ctx)
}

func (s *fineService) MyTotal(ctx context.Context) (float64, error) {
	return s.client.MyTotalFines(ctx)
}

func (s *fineService) AllUsers(ctx context.Context) ([]models.UserFine, error) {
	return s.client.AllUsersFines(ctx)
}

func (s *fineService) ByUser(ctx context.Context, userID int64) ([]models.Fine, error) {
	return s.client.UserFines(ctx, userID)
}

func (s *fineService) MarkPaid(ctx context.Context, fineID int64) error {
	return s.client.MarkFinePaid(ctx, fineID)
}
