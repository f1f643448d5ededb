package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

const (
	pathUserChannels = "/protected/user/channels"
	pathChannel      = "/protected/channel"
)

func channelMetadataPath(id int64) string {
	return fmt.Sprintf("%s/%d/update_metadata", pathChannel, id)
}

type createChannelRequest struct {
	Name string `json:"name"`
	Img  string `json:"img"`
}

// ListChannelsForCurrentUser returns the channels the token's user belongs to,
// in server order.
func (c *HTTPClient) ListChannelsForCurrentUser(ctx context.Context, token string) ([]models.Channel, error) {
	var channels []models.Channel
	if err := c.do(ctx, http.MethodGet, pathUserChannels, token, nil, &channels); err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	return channels, nil
}

// GetChannelByID lists the user's channels and returns the one with the given
// id. Every call re-fetches the list, so the result reflects the latest
// server state.
func (c *HTTPClient) GetChannelByID(ctx context.Context, token string, id int64) (models.Channel, error) {
	channels, err := c.ListChannelsForCurrentUser(ctx, token)
	if err != nil {
		return models.Channel{}, err
	}
	channel, ok := models.FindChannel(channels, id)
	if !ok {
		return models.Channel{}, fmt.Errorf("channel %d: %w", id, ErrNotFound)
	}
	return channel, nil
}

// CreateChannel creates a channel and returns the server-assigned id, which
// the server sends as a bare JSON number.
func (c *HTTPClient) CreateChannel(ctx context.Context, token, name, img string) (int64, error) {
	var id int64
	req := createChannelRequest{Name: name, Img: img}
	if err := c.do(ctx, http.MethodPost, pathChannel, token, req, &id); err != nil {
		return 0, fmt.Errorf("create channel %q: %w", name, err)
	}
	return id, nil
}

// UpdateChannelMetadata replaces the channel's metadata with the full channel
// representation.
func (c *HTTPClient) UpdateChannelMetadata(ctx context.Context, token string, id int64, channel models.Channel) error {
	if err := c.do(ctx, http.MethodPut, channelMetadataPath(id), token, channel, nil); err != nil {
		return fmt.Errorf("update channel %d: %w", id, err)
	}
	return nil
}
