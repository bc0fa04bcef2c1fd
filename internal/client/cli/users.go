package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/rbac"
	"github.com/dmitrijs2005/libracli/internal/common"
)

func (a *App) listUsers(ctx context.Context) {
	if !a.session.HasCapability(rbac.UserRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	users, err := a.admin.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%4d  %-25s %-30s %-12s %s\n",
			u.ID, u.Username, u.Email, u.Role, u.Status)
	}
}

func (a *App) addUser(ctx context.Context) {
	if !a.session.HasCapability(rbac.UserCreate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

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
	role, err := GetSimpleText(a.reader, fmt.Sprintf("Enter role (%s/%s)", common.RoleUser, common.RoleAdmin), a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if role != common.RoleUser && role != common.RoleAdmin {
		fmt.Fprintf(a.out, "Unknown role: %s\n", role)
		return
	}

	user, err := a.admin.CreateUser(ctx, models.User{Username: username, Email: email, Role: role})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "User %d created\n", user.ID)
}

func (a *App) deleteUser(ctx context.Context, id int64) {
	if !a.session.HasCapability(rbac.UserDelete) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	if err := a.admin.DeleteUser(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "User %d deleted\n", id)
}

func (a *App) updateUserStatus(ctx context.Context, args []string) {
	if !a.session.HasCapability(rbac.UserUpdate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: userstatus <id> <status>")
		return
	}
	id, ok := parseID(args[:1], "userstatus <id> <status>", a.out)
	if !ok {
		return
	}

	if err := a.admin.UpdateUserStatus(ctx, id, args[1]); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "User %d status set to %s\n", id, args[1])
}

func (a *App) resetUserPassword(ctx context.Context, id int64) {
	if !a.session.HasCapability(rbac.UserUpdate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	if err := a.admin.ResetUserPassword(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Password reset initiated for user %d\n", id)
}
