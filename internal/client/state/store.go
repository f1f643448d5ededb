package state

import (
	"slices"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

// Selection is the selected channel id. Valid is false when nothing is
// selected.
type Selection struct {
	ID    int64
	Valid bool
}

// Store is the client-local UI state: the selected channel, two visibility
// flags and the cached channel list. Values are advisory copies of server
// state, last write wins.
//
// Readers get Views; writes go through the Store methods only.
type Store struct {
	selected     *Cell[Selection]
	channelPopup *Cell[bool]
	profile      *Cell[bool]
	channels     *Cell[[]models.Channel]
}

// NewStore returns an empty store: no selection, both flags off, no channels.
func NewStore() *Store {
	return &Store{
		selected:     NewComparableCell(Selection{}),
		channelPopup: NewComparableCell(false),
		profile:      NewComparableCell(false),
		channels:     NewCell([]models.Channel{}),
	}
}

func (s *Store) Selected() View[Selection]           { return s.selected }
func (s *Store) ChannelPopup() View[bool]            { return s.channelPopup }
func (s *Store) Profile() View[bool]                 { return s.profile }
func (s *Store) ChannelList() View[[]models.Channel] { return s.channels }

// SelectedChannelID returns the selected channel id and whether one is set.
func (s *Store) SelectedChannelID() (int64, bool) {
	sel := s.selected.Get()
	return sel.ID, sel.Valid
}

// Channels returns a copy of the cached channel list.
func (s *Store) Channels() []models.Channel {
	return slices.Clone(s.channels.Get())
}

// AppendChannel adds ch to the end of the cached list. The stored slice is
// never modified in place, values handed to subscribers stay stable.
func (s *Store) AppendChannel(ch models.Channel) {
	s.channels.Update(func(cur []models.Channel) []models.Channel {
		next := make([]models.Channel, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, ch)
	})
}

// ReplaceChannels replaces the cached list with a copy of channels.
func (s *Store) ReplaceChannels(channels []models.Channel) {
	next := slices.Clone(channels)
	if next == nil {
		next = []models.Channel{}
	}
	s.channels.Set(next)
}

func (s *Store) SelectChannel(id int64) {
	s.selected.Set(Selection{ID: id, Valid: true})
}

func (s *Store) ClearSelection() {
	s.selected.Set(Selection{})
}

func (s *Store) SetShowChannelPopup(show bool) {
	s.channelPopup.Set(show)
}

func (s *Store) SetShowProfile(show bool) {
	s.profile.Set(show)
}

// Reset returns every cell to its initial value. Used on logout. Selection and
// flags that already hold their initial value do not notify.
func (s *Store) Reset() {
	s.ClearSelection()
	s.SetShowChannelPopup(false)
	s.SetShowProfile(false)
	s.ReplaceChannels(nil)
}
