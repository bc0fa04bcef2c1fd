package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/rbac"
)

func (a *App) printFines(fines []models.Fine) {
	if len(fines) == 0 {
		fmt.Fprintln(a.out, "No fines")
		return
	}
	for _, f := range fines {
		status := "unpaid"
		if f.IsPaid {
			status = "paid"
		}
		fmt.Fprintf(a.out, "%4d  %-40s %8.2f %-7s updated %s\n",
			f.ID, f.BookTitle, f.FineAmount, status, f.LastUpdated)
	}
}

func (a *App) myFines(ctx context.Context) {
	fines, err := a.fines.MyFines(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	a.printFines(fines)
}

func (a *App) myTotalFines(ctx context.Context) {
	total, err := a.fines.MyTotal(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Total outstanding fines: %.2f\n", total)
}

func (a *App) allFines(ctx context.Context) {
	if !a.session.HasCapability(rbac.FineRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	users, err := a.fines.AllUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No fines")
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%4d  %-25s %8.2f\n", u.UserID, u.Username, u.TotalFinesAmount)
	}
}

func (a *App) userFines(ctx context.Context, userID int64) {
	if !a.session.HasCapability(rbac.FineRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	fines, err := a.fines.ByUser(ctx, userID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	a.printFines(fines)
}

func (a *App) markFinePaid(ctx context.Context, fineID int64) {
	if !a.session.HasCapability(rbac.FineUpdate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	if err := a.fines.MarkPaid(ctx, fineID); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Fine %d marked as paid\n", fineID)
}
