package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Theme holds a channel's colour role assignments.
type Theme struct {
	PrimaryColor     string `json:"primary_color"`
	PrimaryColorDark string `json:"primary_color_dark"`
	AccentColor      string `json:"accent_color"`
	TextColor        string `json:"text_color"`
	AccentTextColor  string `json:"accent_text_color"`
}

func (t Theme) IsZero() bool {
	return t == Theme{}
}

// ThemeForm records which JSON shape a channel theme arrived in.
type ThemeForm uint8

const (
	// ThemeFormUnset is a locally built channel; it encodes as an empty list.
	ThemeFormUnset ThemeForm = iota
	ThemeFormNull
	ThemeFormObject
	ThemeFormList
)

// ChannelTheme is the theme attached to a channel. The server sends either a
// single object, a list of objects or null, and a channel sent back on update
// must carry the theme in the shape it was read.
type ChannelTheme struct {
	Form ThemeForm
	// Items keeps list entries in order, null entries included.
	Items []*Theme
}

// SingleTheme returns a theme in the object form.
func SingleTheme(t Theme) ChannelTheme {
	return ChannelTheme{Form: ThemeFormObject, Items: []*Theme{&t}}
}

// ThemeList returns a theme in the list form.
func ThemeList(themes ...Theme) ChannelTheme {
	items := make([]*Theme, 0, len(themes))
	for i := range themes {
		t := themes[i]
		items = append(items, &t)
	}
	return ChannelTheme{Form: ThemeFormList, Items: items}
}

// First returns the first non-null theme, or the zero Theme.
func (c ChannelTheme) First() Theme {
	for _, t := range c.Items {
		if t != nil {
			return *t
		}
	}
	return Theme{}
}

// SetFirst replaces the theme returned by First. A list without any non-null
// entry gets t appended; an unset theme becomes a one-element list.
func (c *ChannelTheme) SetFirst(t Theme) {
	switch c.Form {
	case ThemeFormList, ThemeFormUnset:
		c.Form = ThemeFormList
		items := make([]*Theme, len(c.Items))
		copy(items, c.Items)
		for i, it := range items {
			if it != nil {
				items[i] = &t
				c.Items = items
				return
			}
		}
		c.Items = append(items, &t)
	default:
		c.Form = ThemeFormObject
		c.Items = []*Theme{&t}
	}
}

func (c ChannelTheme) IsZero() bool {
	return c.First().IsZero()
}

func (c ChannelTheme) MarshalJSON() ([]byte, error) {
	switch c.Form {
	case ThemeFormNull:
		return []byte("null"), nil
	case ThemeFormObject:
		return json.Marshal(c.First())
	default:
		items := c.Items
		if items == nil {
			items = []*Theme{}
		}
		return json.Marshal(items)
	}
}

func (c *ChannelTheme) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = ChannelTheme{Form: ThemeFormNull}
		return nil
	}

	switch b[0] {
	case '{':
		var t Theme
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		*c = SingleTheme(t)
		return nil

	case '[':
		var items []*Theme
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		if items == nil {
			items = []*Theme{}
		}
		*c = ChannelTheme{Form: ThemeFormList, Items: items}
		return nil

	default:
		return fmt.Errorf("theme: unexpected JSON %s", string(b))
	}
}
