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
	isLoggedIn(ctx context.Context) bool
	reportError(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	List(ctx context.Context, term string) error
	Filter(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) error

	Theme(ctx context.Context, name string) error
	Backup(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, theme [light|dark], exit"
	helpLoggedIn  = "Available commands: (d)ashboard, (l)ist [term], filter, add, edit <id>, show <id>, delete <id>, categories, theme [light|dark], backup, logout, exit"
)

// authCommands need a logged-in session.
var authCommands = map[string]bool{
	"d": true, "dashboard": true,
	"l": true, "list": true,
	"filter": true, "add": true, "edit": true, "show": true, "delete": true,
	"categories": true, "backup": true, "logout": true,
}

// runREPL starts a simple read-eval-print loop for the SkillSync client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'; the rest of the line is passed as the
// argument where a command takes one. Unknown commands are reported back to
// the user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                show available commands
//	  - register            create the account
//	  - login               authenticate
//	  - theme [light|dark]  toggle or set the colour theme
//	  - exit | quit         leave the program
//
//	Logged in:
//	  - help                show available commands
//	  - dashboard | d       totals and recent skills
//	  - list | l [term]     list skills, optionally searching name/description
//	  - filter              search by term, category and level interactively
//	  - add                 add a skill
//	  - edit [id]           edit a skill
//	  - show [id]           show one skill in full
//	  - delete [id]         delete a skill after confirmation
//	  - categories          list categories with counts
//	  - theme [light|dark]  toggle or set the colour theme
//	  - backup              export skills to the configured destinations
//	  - logout              log out
//	  - exit | quit         leave the program
//
// Errors returned by command handlers are reported through a.reportError and
// never end the loop.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(promptFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))

		if authCommands[cmd] && !a.isLoggedIn(ctx) {
			printlnFn("Please log in first (type 'login' or 'register').")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help", "?":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register", "login":
			if a.isLoggedIn(ctx) {
				printlnFn("Already logged in. Type 'logout' first.")
				continue
			}
			if cmd == "register" {
				cmdErr = a.Register(ctx)
			} else {
				cmdErr = a.Login(ctx)
			}

		case "logout":
			cmdErr = a.Logout(ctx)

		case "d", "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, arg)

		case "filter":
			cmdErr = a.Filter(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit":
			cmdErr = a.Edit(ctx, arg)

		case "show":
			cmdErr = a.Show(ctx, arg)

		case "delete":
			cmdErr = a.Delete(ctx, arg)

		case "categories":
			cmdErr = a.Categories(ctx)

		case "theme":
			cmdErr = a.Theme(ctx, arg)

		case "backup":
			cmdErr = a.Backup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.reportError(cmdErr)
		}
	}
}
