package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/client/state"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// UserService defines session and user operations for the UI.
//
// Contract:
//   - Login: exchange credentials for a token and store it; the state store
//     is reset so the new session starts clean.
//   - Logout: forget the token and reset the state store.
//   - CurrentUser: username of the logged-in user, read from the token.
//   - the remaining methods map one-to-one to client operations.
type UserService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)

	AddUserToChannel(ctx context.Context, username string, channelID int64) error
	GetOneUserByName(ctx context.Context, username string) (models.User, error)
	GetMultipleUserByName(ctx context.Context, usernames []string) ([]models.User, error)
	UpdateUserProfile(ctx context.Context, user models.User) error
}

type userService struct {
	client  client.Client
	session session.Store
	state   *state.Store
	log     logging.Logger
}

// NewUserService wires a UserService. A nil logger discards output.
func NewUserService(c client.Client, store session.Store, st *state.Store, log logging.Logger) UserService {
	if log == nil {
		log = logging.Nop{}
	}
	return &userService{client: c, session: store, state: st, log: log}
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := s.session.Save(ctx, token); err != nil {
		return "", fmt.Errorf("login %s: %w", username, err)
	}
	s.state.Reset()

	s.log.Info(ctx, "logged in", "username", username)
	return token, nil
}

func (s *userService) Logout(ctx context.Context) error {
	err := s.session.Clear(ctx)
	s.state.Reset()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *userService) CurrentUser(ctx context.Context) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", err
	}
	return session.Subject(token)
}

func (s *userService) AddUserToChannel(ctx context.Context, username string, channelID int64) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("add %s to channel %d: %w", username, channelID, err)
	}
	return s.client.AddUserToChannel(ctx, token, username, channelID)
}

func (s *userService) GetOneUserByName(ctx context.Context, username string) (models.User, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", username, err)
	}
	return s.client.GetOneUserByName(ctx, token, username)
}

func (s *userService) GetMultipleUserByName(ctx context.Context, usernames []string) ([]models.User, error) {
	if len(usernames) == 0 {
		return nil, errors.New("get users: no usernames given")
	}
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return s.client.GetMultipleUserByName(ctx, token, usernames)
}

func (s *userService) UpdateUserProfile(ctx context.Context, user models.User) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", user.Username, err)
	}
	return s.client.UpdateUserProfile(ctx, token, user)
}
