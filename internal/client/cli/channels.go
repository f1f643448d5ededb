package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

func parseChannelID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel id %q", s)
	}
	return id, nil
}

// Channels refreshes the cached list from the server and prints it.
func (a *App) Channels(ctx context.Context) error {
	channels, err := a.channels.RefreshChannels(ctx)
	if err != nil {
		return err
	}
	a.printChannels(channels)
	return nil
}

// Channel prints one channel fetched from the server.
func (a *App) Channel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("channel <id>")
	}
	id, err := parseChannelID(args[0])
	if err != nil {
		return err
	}
	ch, err := a.channels.GetChannelByID(ctx, id)
	if err != nil {
		return err
	}
	a.printChannel(ch)
	return nil
}

// NewChannel prompts for a name and an image and creates the channel. The
// new channel becomes the selected one.
func (a *App) NewChannel(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter channel name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("channel name must not be empty")
	}
	img, err := getSimpleText(a.reader, "Enter image reference (optional)", a.out)
	if err != nil {
		return err
	}

	ch, err := a.channels.CreateChannel(ctx, name, img)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created channel #%d %s\n", ch.ID, ch.Name)
	return nil
}

// EditChannel loads the channel, lets the user change name, image and theme
// colours (Enter keeps a value), saves it and refreshes the cached list.
func (a *App) EditChannel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("editchannel <id>")
	}
	id, err := parseChannelID(args[0])
	if err != nil {
		return err
	}
	ch, err := a.channels.GetChannelByID(ctx, id)
	if err != nil {
		return err
	}

	theme := ch.Theme.First()
	prompts := []struct {
		label string
		value *string
	}{
		{"Name", &ch.Name},
		{"Image", &ch.Img},
		{"Primary color", &theme.PrimaryColor},
		{"Primary color (dark)", &theme.PrimaryColorDark},
		{"Accent color", &theme.AccentColor},
		{"Text color", &theme.TextColor},
		{"Accent text color", &theme.AccentTextColor},
	}
	for _, p := range prompts {
		v, err := getTextWithDefault(a.reader, p.label, *p.value, a.out)
		if err != nil {
			return err
		}
		*p.value = v
	}
	if theme != ch.Theme.First() {
		ch.Theme.SetFirst(theme)
	}

	if err := a.channels.UpdateChannelMetadata(ctx, id, ch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Channel #%d updated\n", id)

	if _, err := a.channels.RefreshChannels(ctx); err != nil {
		a.log.Warn(ctx, "cannot refresh channels", "error", err)
	}
	return nil
}

// Invite adds a user to a channel.
func (a *App) Invite(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("invite <user> <channelId>")
	}
	id, err := parseChannelID(args[1])
	if err != nil {
		return err
	}
	if err := a.users.AddUserToChannel(ctx, args[0], id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s to channel #%d\n", args[0], id)
	return nil
}

// Select changes the selected channel; "none" clears it. Ids missing from
// the cached list are accepted with a warning since the cache may be stale.
func (a *App) Select(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("select <id|none>")
	}
	if args[0] == "none" {
		a.state.ClearSelection()
		fmt.Fprintln(a.out, "Selection cleared")
		return nil
	}
	id, err := parseChannelID(args[0])
	if err != nil {
		return err
	}
	if _, ok := models.FindChannel(a.state.Channels(), id); !ok {
		fmt.Fprintf(a.out, "Channel #%d is not in the cached list, run 'channels' to refresh\n", id)
	}
	a.state.SelectChannel(id)
	return nil
}

// Popup toggles the channel popup.
func (a *App) Popup(context.Context) error {
	a.state.SetShowChannelPopup(!a.state.ChannelPopup().Get())
	return nil
}
