// Package session keeps the bearer token of the logged-in user.
//
// Services read the token through Provider; Login and Logout write it
// through Store. MemoryStore lives for the process, PersistentStore keeps the
// session in the local database so the CLI stays logged in across runs.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"

	sessionrepo "github.com/dmitrijs2005/gophchat/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession is returned by Token when nobody is logged in.
var ErrNoSession = errors.New("no active session")

// Provider supplies the bearer token for authenticated requests.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Store is a Provider that can also be written.
type Store interface {
	Provider
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	return s.token, nil
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// PersistentStore keeps the session in the local SQLite database.
type PersistentStore struct {
	db   *sql.DB
	repo sessionrepo.Repository
}

func NewPersistentStore(db *sql.DB) *PersistentStore {
	return &PersistentStore{db: db, repo: sessionrepo.NewSQLiteRepository(db)}
}

func (s *PersistentStore) Token(ctx context.Context) (string, error) {
	token, ok, err := s.repo.Get(ctx, sessionrepo.KeyToken)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if !ok || token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Save stores token and forgets the selection of the previous session in
// one transaction.
func (s *PersistentStore) Save(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrepo.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionrepo.KeyToken, token); err != nil {
			return err
		}
		return repo.Delete(ctx, sessionrepo.KeySelectedChannel)
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Clear drops the whole session, the remembered selection included.
func (s *PersistentStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SelectedChannel returns the channel selected in the previous run.
func (s *PersistentStore) SelectedChannel(ctx context.Context) (int64, bool, error) {
	v, ok, err := s.repo.Get(ctx, sessionrepo.KeySelectedChannel)
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("selected channel %q: %w", v, err)
	}
	return id, true, nil
}

// SaveSelectedChannel remembers the selection; ok=false forgets it.
func (s *PersistentStore) SaveSelectedChannel(ctx context.Context, id int64, ok bool) error {
	if !ok {
		return s.repo.Delete(ctx, sessionrepo.KeySelectedChannel)
	}
	return s.repo.Set(ctx, sessionrepo.KeySelectedChannel, strconv.FormatInt(id, 10))
}

// ErrNoSubject is returned by Subject for tokens without a "sub" claim.
var ErrNoSubject = errors.New("token has no subject")

// Subject reads the "sub" claim of a JWT without verifying its signature.
// The client cannot verify server tokens; the value is only used for display
// and as the default profile to open.
func Subject(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if sub == "" {
		return "", ErrNoSubject
	}
	return sub, nil
}
