package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/client/state"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type fixture struct {
	client   *client.HTTPClient
	session  *session.MemoryStore
	state    *state.Store
	channels ChannelService
	users    UserService
}

// newFixture wires both services to a stub backend. The session starts
// logged in with testToken.
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.NewHTTPClient(srv.URL, client.Options{})
	t.Cleanup(c.CloseIdleConnections)

	sess := session.NewMemoryStore()
	require.NoError(t, sess.Save(context.Background(), testToken))

	st := state.NewStore()
	return &fixture{
		client:   c,
		session:  sess,
		state:    st,
		channels: NewChannelService(c, sess, st, nil),
		users:    NewUserService(c, sess, st, nil),
	}
}

// failingProvider is a session without a token.
type failingProvider struct{}

func (failingProvider) Token(context.Context) (string, error) { return "", session.ErrNoSession }

// unexpected fails the test if the backend is called at all.
func unexpected(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
	}
}
