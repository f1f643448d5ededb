package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/state"
)

// startWatchers binds the UI to the state store. Each watcher runs until ctx
// is done; the returned channels close when they have exited.
func (a *App) startWatchers(ctx context.Context) []<-chan struct{} {
	return []<-chan struct{}{
		a.state.ChannelPopup().Watch(ctx, func(show bool) {
			if !show {
				fmt.Fprintln(a.out, "[channel popup closed]")
				return
			}
			a.renderChannelPopup()
		}),
		a.state.Profile().Watch(ctx, func(show bool) {
			if !show {
				fmt.Fprintln(a.out, "[profile closed]")
				return
			}
			if err := a.renderOwnProfile(ctx); err != nil {
				reportError(ctx, a.log, "profile", err)
			}
		}),
		a.state.Selected().Watch(ctx, func(sel state.Selection) {
			if a.selection == nil {
				return
			}
			if err := a.selection.SaveSelectedChannel(ctx, sel.ID, sel.Valid); err != nil {
				a.log.Warn(ctx, "cannot persist selection", "error", err)
			}
		}),
	}
}

func (a *App) renderChannelPopup() {
	fmt.Fprintln(a.out, "[channel popup]")
	a.printChannels(a.state.Channels())
	fmt.Fprintln(a.out, "Use 'select <id>' to switch, 'popup' to close.")
}

func (a *App) renderOwnProfile(ctx context.Context) error {
	name, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	u, err := a.users.GetOneUserByName(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "[profile]")
	a.printUser(u)
	return nil
}
