package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Channels(ctx context.Context) error
	Channel(ctx context.Context, args []string) error
	NewChannel(ctx context.Context) error
	EditChannel(ctx context.Context, args []string) error
	Invite(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Popup(ctx context.Context) error
	User(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// usageError is returned by a command called with bad arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// runREPL starts a simple read–eval–print loop for the chat CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                        show available commands
//	  - login                       authenticate
//	  - exit | quit                 leave the program
//
//	Logged in:
//	  - channels                    refresh and list channels
//	  - channel <id>                show one channel
//	  - newchannel                  create a channel and select it
//	  - editchannel <id>            edit name, image and theme
//	  - invite <user> <channelId>   add a user to a channel
//	  - select <id|none>            change the selected channel
//	  - popup                       toggle the channel popup
//	  - user <name>                 show a user
//	  - users <a,b,...>             show several users
//	  - profile                     toggle the own profile
//	  - editprofile                 edit own profile fields
//	  - logout                      log out
//
// Errors returned by command handlers are logged and shown as a short
// message; they never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, log logging.Logger) {
	for {
		printlnFn(fmt.Sprintf("chat %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				printlnFn("Available commands: channels, channel, newchannel, editchannel, invite, select, popup, user, users, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "channels":
			cmdErr = a.Channels(ctx)

		case "channel":
			cmdErr = a.Channel(ctx, args)

		case "newchannel":
			cmdErr = a.NewChannel(ctx)

		case "editchannel":
			cmdErr = a.EditChannel(ctx, args)

		case "invite":
			cmdErr = a.Invite(ctx, args)

		case "select":
			cmdErr = a.Select(ctx, args)

		case "popup":
			cmdErr = a.Popup(ctx)

		case "user":
			cmdErr = a.User(ctx, args)

		case "users":
			cmdErr = a.Users(ctx, args)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "editprofile":
			cmdErr = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			reportError(ctx, log, cmd, cmdErr)
		}
		if err != nil {
			return
		}
	}
}

// reportError logs err and prints a one-line explanation for the user.
func reportError(ctx context.Context, log logging.Logger, cmd string, err error) {
	var usage usageError
	if errors.As(err, &usage) {
		printlnFn(strings.ToUpper(usage.Error()[:1]) + usage.Error()[1:])
		return
	}
	log.Error(ctx, "command failed", "command", cmd, "error", err)
	printlnFn("Error:", describe(err))
}

// describe turns an error into a short message for the prompt.
func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "not logged in, use 'login'"
	case errors.Is(err, client.ErrAuthenticationFailed):
		return "login failed, check username and password"
	case errors.Is(err, client.ErrUnauthorized):
		return "session rejected by the server, log in again"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, client.ErrNetworkFailure):
		return "server unreachable"
	case errors.Is(err, models.ErrIncorrectField):
		return err.Error()
	}
	if code := client.StatusCode(err); code != 0 {
		return fmt.Sprintf("server answered %d", code)
	}
	return err.Error()
}
