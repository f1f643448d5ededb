package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

func (a *App) printChannels(channels []models.Channel) {
	if len(channels) == 0 {
		fmt.Fprintln(a.out, "No channels.")
		return
	}
	selected, hasSelection := a.state.SelectedChannelID()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tCREATOR\tMEMBERS")
	for _, c := range channels {
		mark := ""
		if hasSelection && c.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\n", mark, c.ID, c.Name, c.Creator, len(c.Users))
	}
	_ = tw.Flush()
}

func (a *App) printChannel(c models.Channel) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Image:\t%s\n", c.Img)
	fmt.Fprintf(tw, "Creator:\t%s\n", c.Creator)
	if t := c.Theme.First(); !t.IsZero() {
		fmt.Fprintf(tw, "Theme:\tprimary=%s primary_dark=%s accent=%s text=%s accent_text=%s\n",
			t.PrimaryColor, t.PrimaryColorDark, t.AccentColor, t.TextColor, t.AccentTextColor)
	}
	members := make([]string, 0, len(c.Users))
	for _, u := range c.Users {
		members = append(members, u.Username)
	}
	fmt.Fprintf(tw, "Members:\t%s\n", strings.Join(members, ", "))
	_ = tw.Flush()
}

func (a *App) printUser(u models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "username:\t%s\n", u.Username)
	for _, name := range u.FieldNames() {
		v, _ := u.Field(name)
		fmt.Fprintf(tw, "%s:\t%s\n", name, v)
	}
	_ = tw.Flush()
}
