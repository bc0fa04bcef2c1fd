package services

import (
	"context"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// AdminService exposes user administration to the CLI.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateUserStatus(ctx context.Context, id int64, status string) error
	ResetUserPassword(ctx context.Context, id int64) error
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *adminService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.client.GetUser(ctx, id)
}

func (s *adminService) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	return s.client.CreateUser(ctx, user)
}

func (s *adminService) UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error) {
	return s.client.UpdateUser(ctx, id, user)
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	return s.client.DeleteUser(ctx, id)
}

func (s *adminService) UpdateUserStatus(ctx context.Context, id int64, status string) error {
	return s.client.UpdateUserStatus(ctx, id, status)
}

func (s *adminService) ResetUserPassword(ctx context.Context, id int64) error {
	return s.client.ResetUserPassword(ctx, id)
}
