package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	FilterWeek(ctx context.Context) error
	FilterRange(ctx context.Context) error
	ShowAll(ctx context.Context) error
	Summary(ctx context.Context) error
	Chart(ctx context.Context) error
	Save(ctx context.Context) error
	Load(ctx context.Context) error
}

// runREPL reads a line from the scanner, takes the first token as the
// command, and dispatches to a. Unknown commands are reported back. The
// loop ends on scanner EOF or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("studytrack (%s) >", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, edit, delete, week, range, all, summary, chart, save, load, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "week":
			_ = a.FilterWeek(ctx)

		case "range":
			_ = a.FilterRange(ctx)

		case "all":
			_ = a.ShowAll(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "chart":
			_ = a.Chart(ctx)

		case "save":
			_ = a.Save(ctx)

		case "load":
			_ = a.Load(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
