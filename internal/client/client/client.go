package client

import (
	"context"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

// Client is the transport-level API contract of the chat backend. Every
// method performs exactly one HTTP round trip, except GetChannelByID which
// lists and filters client-side. Methods taking a token send it as a bearer
// credential; an empty token sends no Authorization header.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)

	ListChannelsForCurrentUser(ctx context.Context, token string) ([]models.Channel, error)
	GetChannelByID(ctx context.Context, token string, id int64) (models.Channel, error)
	CreateChannel(ctx context.Context, token, name, img string) (int64, error)
	UpdateChannelMetadata(ctx context.Context, token string, id int64, channel models.Channel) error

	AddUserToChannel(ctx context.Context, token, username string, channelID int64) error
	GetOneUserByName(ctx context.Context, token, username string) (models.User, error)
	GetMultipleUserByName(ctx context.Context, token string, usernames []string) ([]models.User, error)
	UpdateUserProfile(ctx context.Context, token string, user models.User) error
}
