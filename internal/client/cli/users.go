package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

// User prints one user.
func (a *App) User(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("user <name>")
	}
	u, err := a.users.GetOneUserByName(ctx, args[0])
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

// Users prints several users looked up in one request. Names may be comma
// or space separated.
func (a *App) Users(ctx context.Context, args []string) error {
	names := splitNames(args)
	if len(names) == 0 {
		return usageError("users <a,b,...>")
	}
	users, err := a.users.GetMultipleUserByName(ctx, names)
	if err != nil {
		return err
	}
	for i, u := range users {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		a.printUser(u)
	}
	return nil
}

func splitNames(args []string) []string {
	var names []string
	for _, arg := range args {
		for _, n := range strings.Split(arg, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	return names
}

// Profile toggles the own profile; the watcher renders it.
func (a *App) Profile(context.Context) error {
	a.state.SetShowProfile(!a.state.Profile().Get())
	return nil
}

// EditProfile shows the own profile, reads name=value edits and posts the
// updated record. Fields not edited are sent back unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	u, err := a.users.GetOneUserByName(ctx, name)
	if err != nil {
		return err
	}
	a.printUser(u)

	lines, err := getFields(a.reader, a.out)
	if err != nil {
		return err
	}
	fields, err := models.ProfileFieldsFromLines(lines)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}
	for _, f := range fields {
		u.SetField(f.Name, f.Value)
	}

	if err := a.users.UpdateUserProfile(ctx, u); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
