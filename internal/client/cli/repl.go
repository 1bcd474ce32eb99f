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
	isSignedIn() bool
	Observe(ctx context.Context, seed string) error
	Regen(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Fav(ctx context.Context, id string) error
	Challenge(ctx context.Context, sub string) error
	Streak(ctx context.Context) error
	Badges(ctx context.Context) error
	Mindful(ctx context.Context) error
	Settings(ctx context.Context, args []string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Share(ctx context.Context, id string) error
	Open(ctx context.Context, rawURL string) error
	Export(ctx context.Context, path string) error
	Community(ctx context.Context) error
	TestEmail(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Daily Epiphany CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current identity (from statusFn) and accepts commands:
//
//	  - help                       — show available commands
//	  - observe                    — record an observation and generate an insight
//	  - regen                      — rerun generation for the last result
//	  - list | l                   — list the history
//	  - show <id>                  — show one record
//	  - fav <id>                   — toggle a record's favorite flag
//	  - challenge [start|cancel]   — today's challenge
//	  - streak, badges             — progress of the signed-in user
//	  - mindful                    — open the mindful-moment session
//	  - settings [set k v | save]  — view and change preferences
//	  - register | login | logout  — identity handling
//	  - deleteaccount              — erase the signed-in identity's data
//	  - share <id>, open <url>     — share links
//	  - export [path]              — write the history as JSON
//	  - community                  — browse the community feed
//	  - testemail                  — send a test digest
//	  - exit | quit                — leave the program
//
// Any errors returned by command handlers are printed here; handlers stay
// silent about expected conditions. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("epiphany %s > ", statusFn()))
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

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: observe, regen, (l)ist, show, fav, challenge, streak, badges, mindful, settings, share, open, export, community, testemail, exit")
			if a.isSignedIn() {
				printlnFn("Account: logout, deleteaccount")
			} else {
				printlnFn("Account: register, login")
			}

		case "observe":
			err = a.Observe(ctx, "")

		case "regen":
			err = a.Regen(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			err = a.Show(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <id>")
				continue
			}
			err = a.Fav(ctx, args[0])

		case "challenge":
			sub := ""
			if len(args) > 0 {
				sub = args[0]
			}
			err = a.Challenge(ctx, sub)

		case "streak":
			err = a.Streak(ctx)

		case "badges":
			err = a.Badges(ctx)

		case "mindful":
			err = a.Mindful(ctx)

		case "settings":
			err = a.Settings(ctx, args)

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "deleteaccount":
			err = a.DeleteAccount(ctx)

		case "share":
			if len(args) == 0 {
				printlnFn("Usage: share <id>")
				continue
			}
			err = a.Share(ctx, args[0])

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <url>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "export":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			err = a.Export(ctx, path)

		case "community":
			err = a.Community(ctx)

		case "testemail":
			err = a.TestEmail(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
