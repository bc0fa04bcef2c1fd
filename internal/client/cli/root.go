package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/libracli/internal/client/rbac"
)

func (a *App) getStatus() string {
	id := a.session.CurrentIdentity()
	if id == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", id.Username, id.Role)
}

func (a *App) printHelp() {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: login, register, resetpw, exit")
		return
	}

	cmds := []string{"whoami", "logout", "exit"}
	if a.session.HasCapability(rbac.BookRead) {
		cmds = append(cmds, "books", "book <id>")
	}
	if a.session.HasCapability(rbac.BookCreate) {
		cmds = append(cmds, "addbook")
	}
	if a.session.HasCapability(rbac.BookUpdate) {
		cmds = append(cmds, "editbook <id>")
	}
	if a.session.HasCapability(rbac.BookDelete) {
		cmds = append(cmds, "delbook <id>")
	}
	if a.session.HasCapability(rbac.BorrowCreate) {
		cmds = append(cmds, "borrow <book id>")
	}
	if a.session.HasCapability(rbac.BorrowRead) {
		cmds = append(cmds, "borrows", "return <borrow id>")
	}
	cmds = append(cmds, "myfines", "mytotal")
	if a.session.HasCapability(rbac.FineRead) {
		cmds = append(cmds, "fines", "userfines <user id>")
	}
	if a.session.HasCapability(rbac.FineUpdate) {
		cmds = append(cmds, "markpaid <fine id>")
	}
	if a.session.HasCapability(rbac.UserRead) {
		cmds = append(cmds, "users", "adduser", "deluser <id>", "userstatus <id> <status>", "resetuserpw <id>")
	}
	fmt.Fprintln(a.out, "Available commands:", strings.Join(cmds, ", "))
}

// parseID extracts the single numeric argument commands like "book <id>"
// expect.
func parseID(args []string, usage string, out interface{ Write([]byte) (int, error) }) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "Not a number: %s\n", args[0])
		return 0, false
	}
	return id, true
}

// Root runs the interactive command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to libracli (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "libracli %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "register":
			a.Register(ctx)
		case "resetpw":
			a.ResetPassword(ctx)

		case "books":
			a.listBooks(ctx)
		case "book":
			if id, ok := parseID(args, "book <id>", a.out); ok {
				a.showBook(ctx, id)
			}
		case "addbook":
			a.addBook(ctx)
		case "editbook":
			if id, ok := parseID(args, "editbook <id>", a.out); ok {
				a.editBook(ctx, id)
			}
		case "delbook":
			if id, ok := parseID(args, "delbook <id>", a.out); ok {
				a.deleteBook(ctx, id)
			}

		case "borrow":
			if id, ok := parseID(args, "borrow <book id>", a.out); ok {
				a.borrowBook(ctx, id)
			}
		case "borrows":
			a.listBorrows(ctx)
		case "return":
			if id, ok := parseID(args, "return <borrow id>", a.out); ok {
				a.returnBook(ctx, id)
			}

		case "myfines":
			a.myFines(ctx)
		case "mytotal":
			a.myTotalFines(ctx)
		case "fines":
			a.allFines(ctx)
		case "userfines":
			if id, ok := parseID(args, "userfines <user id>", a.out); ok {
				a.userFines(ctx, id)
			}
		case "markpaid":
			if id, ok := parseID(args, "markpaid <fine id>", a.out); ok {
				a.markFinePaid(ctx, id)
			}

		case "users":
			a.listUsers(ctx)
		case "adduser":
			a.addUser(ctx)
		case "deluser":
			if id, ok := parseID(args, "deluser <id>", a.out); ok {
				a.deleteUser(ctx, id)
			}
		case "userstatus":
			a.updateUserStatus(ctx, args)
		case "resetuserpw":
			if id, ok := parseID(args, "resetuserpw <id>", a.out); ok {
				a.resetUserPassword(ctx, id)
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
