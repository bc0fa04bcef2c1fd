package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libracli/internal/common"
)

// Register drives the two-step registration: request a verification code,
// then confirm with the code the user received.
func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.account.RequestRegister(ctx, username, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Registration request failed: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Verification code sent to", email)

	code, err := GetSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	if err := a.account.ConfirmRegister(ctx, username, email, string(password), code); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Registration complete, you can log in now")
}

// ResetPassword drives the two-step password reset flow.
func (a *App) ResetPassword(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	if err := a.account.RequestPasswordReset(ctx, email); err != nil {
		fmt.Fprintf(a.out, "Password reset request failed: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Verification code sent to", email)

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	code, err := GetSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	newPassword, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(newPassword)

	if err := a.account.ConfirmPasswordReset(ctx, username, email, string(newPassword), code); err != nil {
		fmt.Fprintf(a.out, "Password reset failed: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Password updated, you can log in now")
}
