package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/client/state"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// ChannelService defines channel operations for the UI.
//
// Contract:
//   - ListChannelsForCurrentUser: fetch the caller's channels, no state change.
//   - GetChannelByID: fetch the list and pick one; client.ErrNotFound if absent.
//   - CreateChannel: create on the server, then append the local record to the
//     channel list and select it, in that order.
//   - UpdateChannelMetadata: replace the channel's metadata, no state change.
//   - RefreshChannels: fetch the list and replace the cached one.
type ChannelService interface {
	ListChannelsForCurrentUser(ctx context.Context) ([]models.Channel, error)
	GetChannelByID(ctx context.Context, id int64) (models.Channel, error)
	CreateChannel(ctx context.Context, name, img string) (models.Channel, error)
	UpdateChannelMetadata(ctx context.Context, id int64, channel models.Channel) error
	RefreshChannels(ctx context.Context) ([]models.Channel, error)
}

type channelService struct {
	client  client.Client
	session session.Provider
	state   *state.Store
	log     logging.Logger
}

// NewChannelService wires a ChannelService. A nil logger discards output.
func NewChannelService(c client.Client, p session.Provider, st *state.Store, log logging.Logger) ChannelService {
	if log == nil {
		log = logging.Nop{}
	}
	return &channelService{client: c, session: p, state: st, log: log}
}

func (s *channelService) ListChannelsForCurrentUser(ctx context.Context) ([]models.Channel, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return s.client.ListChannelsForCurrentUser(ctx, token)
}

func (s *channelService) GetChannelByID(ctx context.Context, id int64) (models.Channel, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return models.Channel{}, fmt.Errorf("get channel %d: %w", id, err)
	}
	return s.client.GetChannelByID(ctx, token, id)
}

// CreateChannel does not re-fetch: creator, theme and members of the cached
// record stay empty until the next RefreshChannels.
func (s *channelService) CreateChannel(ctx context.Context, name, img string) (models.Channel, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return models.Channel{}, fmt.Errorf("create channel: %w", err)
	}

	id, err := s.client.CreateChannel(ctx, token, name, img)
	if err != nil {
		return models.Channel{}, err
	}

	ch := models.NewLocalChannel(id, name, img)
	s.state.AppendChannel(ch)
	s.state.SelectChannel(id)

	s.log.Info(ctx, "channel created", "channel_id", id, "name", name)
	return ch, nil
}

func (s *channelService) UpdateChannelMetadata(ctx context.Context, id int64, channel models.Channel) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("update channel %d: %w", id, err)
	}
	return s.client.UpdateChannelMetadata(ctx, token, id, channel)
}

func (s *channelService) RefreshChannels(ctx context.Context) ([]models.Channel, error) {
	channels, err := s.ListChannelsForCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.state.ReplaceChannels(channels)
	s.log.Debug(ctx, "channels refreshed", "count", len(channels))
	return channels, nil
}
