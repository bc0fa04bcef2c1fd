package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/libracli/internal/client/rbac"
)

func (a *App) borrowBook(ctx context.Context, bookID int64) {
	if !a.session.HasCapability(rbac.BorrowCreate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	due, err := GetSimpleText(a.reader, "Due date YYYY-MM-DD (empty for 14 days)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	var dueDate time.Time
	if due != "" {
		dueDate, err = time.Parse("2006-01-02", due)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid date: %s\n", due)
			return
		}
	}

	borrow, err := a.borrows.Borrow(ctx, bookID, dueDate)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Borrow %d created, due %s\n", borrow.ID, borrow.DueDate)
}

func (a *App) listBorrows(ctx context.Context) {
	if !a.session.HasCapability(rbac.BorrowRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	borrows, err := a.borrows.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	if len(borrows) == 0 {
		fmt.Fprintln(a.out, "No borrows")
		return
	}
	for _, b := range borrows {
		line := fmt.Sprintf("%4d  %-40s %-10s borrowed %s", b.ID, b.BookTitle, b.Status, b.BorrowDate)
		if b.Username != "" {
			line += " by " + b.Username
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) returnBook(ctx context.Context, borrowID int64) {
	if !a.session.HasCapability(rbac.BorrowRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	borrow, err := a.borrows.Return(ctx, borrowID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Borrow %d returned (%s)\n", borrow.ID, borrow.Status)
}
