package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

const (
	pathLogin    = "/login"
	pathUserMeta = "/protected/user/meta"
)

func channelUserPath(channelID int64, username string) string {
	return fmt.Sprintf("%s/%d/user/%s", pathChannel, channelID, url.PathEscape(username))
}

// userLookupPath builds /protected/user/meta?users=a,b,c. Each name is query
// escaped, the separating commas are not.
func userLookupPath(usernames []string) string {
	escaped := make([]string, len(usernames))
	for i, name := range usernames {
		escaped[i] = url.QueryEscape(name)
	}
	return pathUserMeta + "?users=" + strings.Join(escaped, ",")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. A 401/403 reply, an
// undecodable reply or a reply without a token all match
// ErrAuthenticationFailed.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, pathLogin, "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrMalformedResponse) {
			return "", fmt.Errorf("login %s: %w: %w", username, ErrAuthenticationFailed, err)
		}
		return "", fmt.Errorf("login %s: %w", username, err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login %s: %w: no token in response", username, ErrAuthenticationFailed)
	}
	return resp.Token, nil
}

// AddUserToChannel adds username to the channel. The request has no body.
func (c *HTTPClient) AddUserToChannel(ctx context.Context, token, username string, channelID int64) error {
	if err := c.do(ctx, http.MethodPut, channelUserPath(channelID, username), token, nil, nil); err != nil {
		return fmt.Errorf("add %s to channel %d: %w", username, channelID, err)
	}
	return nil
}

// GetOneUserByName looks up a single user. The server answers with a list;
// an empty one is ErrNotFound, otherwise the first element is returned.
func (c *HTTPClient) GetOneUserByName(ctx context.Context, token, username string) (models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, userLookupPath([]string{username}), token, nil, &users); err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", username, err)
	}
	if len(users) == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return users[0], nil
}

// GetMultipleUserByName looks up several users in one request and returns
// the server's list verbatim, in server order.
func (c *HTTPClient) GetMultipleUserByName(ctx context.Context, token string, usernames []string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, userLookupPath(usernames), token, nil, &users); err != nil {
		return nil, fmt.Errorf("get users %s: %w", strings.Join(usernames, ","), err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateUserProfile posts the full user record.
func (c *HTTPClient) UpdateUserProfile(ctx context.Context, token string, user models.User) error {
	if err := c.do(ctx, http.MethodPost, pathUserMeta, token, user, nil); err != nil {
		return fmt.Errorf("update profile %s: %w", user.Username, err)
	}
	return nil
}
