package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtFor(t *testing.T, sub string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestLogin_StoresTokenAndResetsState(t *testing.T) {
	token := jwtFor(t, "alice")
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"token": "`+token+`"}`)
	})
	ctx := context.Background()
	require.NoError(t, f.session.Clear(ctx))
	f.state.AppendChannel(models.NewLocalChannel(1, "old session", ""))
	f.state.SelectChannel(1)

	got, err := f.users.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, token, got)

	stored, err := f.session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	assert.Empty(t, f.state.Channels())
	_, ok := f.state.SelectedChannelID()
	assert.False(t, ok)

	me, err := f.users.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", me)
}

func TestLogin_FailureKeepsSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ctx := context.Background()

	_, err := f.users.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, client.ErrAuthenticationFailed)

	stored, err := f.session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, testToken, stored)
}

type failingSaveStore struct {
	session.MemoryStore
}

func (*failingSaveStore) Save(context.Context, string) error { return errors.New("disk full") }

func TestLogin_SaveError(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token": "t"}`)
	})
	svc := NewUserService(f.client, &failingSaveStore{}, f.state, nil)

	_, err := svc.Login(context.Background(), "alice", "pw")
	require.ErrorContains(t, err, "disk full")
}

func TestLogout(t *testing.T) {
	f := newFixture(t, unexpected(t))
	ctx := context.Background()
	f.state.AppendChannel(models.NewLocalChannel(1, "a", ""))
	f.state.SelectChannel(1)
	f.state.SetShowProfile(true)
	f.state.SetShowChannelPopup(true)

	require.NoError(t, f.users.Logout(ctx))

	_, err := f.session.Token(ctx)
	require.ErrorIs(t, err, session.ErrNoSession)
	assert.Empty(t, f.state.Channels())
	_, ok := f.state.SelectedChannelID()
	assert.False(t, ok)
	assert.False(t, f.state.Profile().Get())
	assert.False(t, f.state.ChannelPopup().Get())

	_, err = f.users.CurrentUser(ctx)
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestCurrentUser_OpaqueToken(t *testing.T) {
	f := newFixture(t, unexpected(t))

	_, err := f.users.CurrentUser(context.Background())
	require.Error(t, err, "test-token is not a JWT")
}

func TestAddUserToChannel(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/protected/channel/4/user/bob", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, f.users.AddUserToChannel(context.Background(), "bob", 4))
}

func TestGetOneUserByName(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("users") == "alice" {
			_, _ = io.WriteString(w, `[{"username": "alice", "status": "online"}]`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})
	ctx := context.Background()

	u, err := f.users.GetOneUserByName(ctx, "alice")
	require.NoError(t, err)
	status, ok := u.Field("status")
	assert.True(t, ok)
	assert.Equal(t, "online", status)

	_, err = f.users.GetOneUserByName(ctx, "nobody")
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestGetMultipleUserByName(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "users=alice,bob", r.URL.RawQuery)
		_, _ = io.WriteString(w, `[{"username": "alice"}, {"username": "bob"}]`)
	})
	ctx := context.Background()

	users, err := f.users.GetMultipleUserByName(ctx, []string{"alice", "bob"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestGetMultipleUserByName_NoNames(t *testing.T) {
	f := newFixture(t, unexpected(t))

	_, err := f.users.GetMultipleUserByName(context.Background(), nil)
	require.Error(t, err)
}

func TestUpdateUserProfile(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/protected/user/meta", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username": "alice", "bio": "hello"}`, string(b))
		w.WriteHeader(http.StatusOK)
	})

	u := models.User{Username: "alice"}
	u.SetField("bio", "hello")
	require.NoError(t, f.users.UpdateUserProfile(context.Background(), u))
}

func TestUserService_NoSession(t *testing.T) {
	f := newFixture(t, unexpected(t))
	ctx := context.Background()
	require.NoError(t, f.session.Clear(ctx))

	assert.ErrorIs(t, f.users.AddUserToChannel(ctx, "bob", 1), session.ErrNoSession)
	_, err := f.users.GetOneUserByName(ctx, "bob")
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = f.users.GetMultipleUserByName(ctx, []string{"bob"})
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.ErrorIs(t, f.users.UpdateUserProfile(ctx, models.User{Username: "bob"}), session.ErrNoSession)
}
