package services

import (
	"context"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// AccountService covers the self-service account flows: two-step
// registration and two-step password reset. Both are opaque pass-throughs;
// verification codes are delivered out of band by the server.
type AccountService interface {
	RequestRegister(ctx context.Context, username, email, password string) error
	ConfirmRegister(ctx context.Context, username, email, password, verifyCode string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, username, email, newPassword, verifyCode string) error
}

type accountService struct {
	client api.Client
}

func NewAccountService(client api.Client) AccountService {
	return &accountService{client: client}
}

func (s *accountService) RequestRegister(ctx context.Context, username, email, password string) error {
	return s.client.RequestRegister(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (s *accountService) ConfirmRegister(ctx context.Context, username, email, password, verifyCode string) error {
	return s.client.ConfirmRegister(ctx, models.ConfirmRegisterRequest{
		Username:   username,
		Email:      email,
		Password:   password,
		VerifyCode: verifyCode,
	})
}

func (s *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.client.RequestPasswordReset(ctx, email)
}

func (s *accountService) ConfirmPasswordReset(ctx context.Context, username, email, newPassword, verifyCode string) error {
	return s.client.ConfirmPasswordReset(ctx, models.ConfirmPasswordResetRequest{
		Username:    username,
		Email:       email,
		NewPassword: newPassword,
		VerifyCode:  verifyCode,
	})
}
