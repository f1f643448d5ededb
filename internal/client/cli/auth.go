package cli

import (
	"context"
	"errors"
	"fmt"
)

// getSimpleText, getTextWithDefault, getPassword and getFields are
// indirections used to facilitate testing. They point to interactive input
// helpers and can be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
	getFields          = GetFields
)

// Login prompts for credentials and exchanges them for a session token.
// On success the channel list is loaded so the popup has something to show.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		return errors.New("username must not be empty")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if _, err := a.users.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	a.loggedIn = true
	a.userName = userName
	if name, err := a.users.CurrentUser(ctx); err == nil {
		a.userName = name
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.userName)

	if _, err := a.channels.RefreshChannels(ctx); err != nil {
		a.log.Warn(ctx, "cannot load channels", "error", err)
	}
	return nil
}

// Logout forgets the session and clears the UI state.
func (a *App) Logout(ctx context.Context) error {
	err := a.users.Logout(ctx)
	a.loggedIn = false
	a.userName = ""
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
