package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/client/state"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// lockedBuffer is an io.Writer safe to read while watchers write to it.
type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

type fakeUsers struct {
	mu sync.Mutex

	loginUser, loginPass string
	loginErr             error

	current    string
	currentErr error

	logoutCalled bool
	logoutErr    error

	addUser    string
	addChannel int64
	addErr     error

	byName    map[string]models.User
	manyNames []string

	updated   *models.User
	updateErr error
}

func (f *fakeUsers) Login(_ context.Context, username, password string) (string, error) {
	f.loginUser, f.loginPass = username, password
	return "token", f.loginErr
}

func (f *fakeUsers) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeUsers) CurrentUser(context.Context) (string, error) {
	if f.currentErr != nil {
		return "", f.currentErr
	}
	if f.current == "" {
		return "", session.ErrNoSession
	}
	return f.current, nil
}

func (f *fakeUsers) AddUserToChannel(_ context.Context, username string, channelID int64) error {
	f.addUser, f.addChannel = username, channelID
	return f.addErr
}

func (f *fakeUsers) GetOneUserByName(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byName[username]
	if !ok {
		return models.User{}, client.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetMultipleUserByName(_ context.Context, usernames []string) ([]models.User, error) {
	f.manyNames = usernames
	var out []models.User
	for _, n := range usernames {
		if u, ok := f.byName[n]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) UpdateUserProfile(_ context.Context, user models.User) error {
	f.updated = &user
	return f.updateErr
}

// fakeChannels keeps the server list in memory and applies the same state
// side effects as the real service.
type fakeChannels struct {
	state *state.Store

	list      []models.Channel
	listErr   error
	refreshes int

	nextID    int64
	createErr error

	updatedID int64
	updated   models.Channel
	updateErr error
}

func (f *fakeChannels) ListChannelsForCurrentUser(context.Context) ([]models.Channel, error) {
	return f.list, f.listErr
}

func (f *fakeChannels) GetChannelByID(_ context.Context, id int64) (models.Channel, error) {
	if f.listErr != nil {
		return models.Channel{}, f.listErr
	}
	ch, ok := models.FindChannel(f.list, id)
	if !ok {
		return models.Channel{}, client.ErrNotFound
	}
	return ch, nil
}

func (f *fakeChannels) CreateChannel(_ context.Context, name, img string) (models.Channel, error) {
	if f.createErr != nil {
		return models.Channel{}, f.createErr
	}
	ch := models.NewLocalChannel(f.nextID, name, img)
	f.list = append(f.list, ch)
	f.state.AppendChannel(ch)
	f.state.SelectChannel(ch.ID)
	return ch, nil
}

func (f *fakeChannels) UpdateChannelMetadata(_ context.Context, id int64, ch models.Channel) error {
	f.updatedID, f.updated = id, ch
	return f.updateErr
}

func (f *fakeChannels) RefreshChannels(context.Context) ([]models.Channel, error) {
	f.refreshes++
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.state.ReplaceChannels(f.list)
	return f.list, nil
}

type fakeSelection struct {
	mu    sync.Mutex
	id    int64
	ok    bool
	saves int
}

func (f *fakeSelection) SelectedChannel(context.Context) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id, f.ok, nil
}

func (f *fakeSelection) SaveSelectedChannel(_ context.Context, id int64, ok bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.id, f.ok = id, ok
	f.saves++
	return nil
}

func (f *fakeSelection) get() (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id, f.ok
}

// newTestApp builds an App over fakes; input feeds the interactive prompts.
func newTestApp(input string) (*App, *fakeUsers, *fakeChannels, *lockedBuffer) {
	st := state.NewStore()
	users := &fakeUsers{byName: map[string]models.User{}}
	channels := &fakeChannels{state: st}
	out := &lockedBuffer{}
	sess := session.NewMemoryStore()

	a := &App{
		log:      logging.Nop{},
		users:    users,
		channels: channels,
		state:    st,
		session:  sess,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	return a, users, channels, out
}
