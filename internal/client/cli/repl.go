package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	View(ctx context.Context, name string) error
	Profile(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on "exit" / "quit", or when ctx is done.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                 — show available commands
//	  - login                — sign in
//	  - register             — create an account
//	  - view login|register  — switch forms
//	  - status               — show session state
//	  - exit | quit          — leave the program
//
//	Logged in:
//	  - help, profile, status, logout, exit | quit
//
// Errors returned by command handlers are not shown here; handlers report
// to the user themselves. EOF from a handler ends the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gophauth %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, status, logout, exit")
			} else {
				printlnFn("Available commands: login, register, view login|register, status, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "view":
			if len(args) != 1 {
				printlnFn("Usage: view login|register")
				continue
			}
			cmdErr = a.View(ctx, args[0])

		case "profile":
			cmdErr = a.Profile(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(cmdErr, io.EOF) {
			return
		}
	}
}
