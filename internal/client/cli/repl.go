package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Ping(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	ListPacks(ctx context.Context) error
	ShowPack(ctx context.Context, args []string) error
	Checkout(ctx context.Context, args []string) error
	Mail(ctx context.Context) error
	CancelMail(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	AdminPacks(ctx context.Context, args []string) error
	CheckIn(ctx context.Context) error
	SetStatus(ctx context.Context, args []string) error
	UpdatePack(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the PackChann CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: whoami, profile, (p)acks, pack, checkout, mail, cancelmail, open, ping, users, adminpacks, checkin, setstatus, updatepack, deluser, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: whoami, profile, (p)acks, pack, checkout, mail, cancelmail, open, ping, logout, exit")
			default:
				printlnFn("Available commands: register, login, open, ping, exit")
			}

		case "ping":
			_ = a.Ping(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "p", "packs":
			_ = a.ListPacks(ctx)

		case "pack":
			_ = a.ShowPack(ctx, args)

		case "checkout":
			_ = a.Checkout(ctx, args)

		case "mail":
			_ = a.Mail(ctx)

		case "cancelmail":
			_ = a.CancelMail(ctx, args)

		case "open":
			_ = a.Open(ctx, args)

		case "users":
			_ = a.Users(ctx)

		case "adminpacks":
			_ = a.AdminPacks(ctx, args)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx, args)

		case "updatepack":
			_ = a.UpdatePack(ctx, args)

		case "deluser":
			_ = a.DeleteUser(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
