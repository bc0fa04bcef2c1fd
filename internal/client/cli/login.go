package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libracli/internal/common"
)

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
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

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return
	}

	id := a.session.CurrentIdentity()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", id.Username, id.Role)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout finished with error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) WhoAmI() {
	id := a.session.CurrentIdentity()
	if id == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (id %d, %s", id.Username, id.ID, id.Role)
	if id.Email != "" {
		fmt.Fprintf(a.out, ", %s", id.Email)
	}
	fmt.Fprintln(a.out, ")")
}
