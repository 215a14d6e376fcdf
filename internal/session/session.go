// Package session replaces the browser-side ambient state of the old
// storefront (localStorage flags, the in-page cart, the recovery wizard
// step) with one explicit server-side object: a Session is created at
// login, mutated only through Store methods, and torn down at logout.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rnrstore/retrostore-golang/internal/cart"
	"github.com/rnrstore/retrostore-golang/internal/recovery"
)

// ErrNotFound means the session id does not exist (expired server restart,
// logout, or a forged token).
var ErrNotFound = errors.New("session not found")

// Session is the per-visitor state the storefront keeps between requests.
type Session struct {
	ID        string
	User      User
	Cart      cart.Cart
	CreatedAt time.Time
}

// Store is the in-memory session table. All access goes through the
// mutex; Session values handed out by View are copies.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	// wizards holds password-recovery state for visitors who are, by
	// definition, not logged in. Keyed by an opaque token.
	wizards map[string]*recovery.Wizard
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		wizards:  make(map[string]*recovery.Wizard),
	}
}

// Create opens a new session for an authenticated user and returns it.
func (s *Store) Create(user User) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		User:      user,
		Cart:      cart.Cart{},
		CreatedAt: time.Now(),
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// View returns a copy of the session, or ErrNotFound.
func (s *Store) View(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// UpdateCart replaces the session's cart with fn(current). The cart type
// is copy-on-write, so fn receives a snapshot it can transform freely.
func (s *Store) UpdateCart(id string, fn func(cart.Cart) cart.Cart) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.Cart = fn(sess.Cart)
	return sess.Cart, nil
}

// Destroy removes a session. Destroying an unknown id is a no-op, the
// same as logging out twice.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// BeginRecovery opens a fresh password-recovery wizard and returns its
// token. The wizard lives until the reset completes or the process dies.
func (s *Store) BeginRecovery() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.wizards[token] = recovery.NewWizard()
	return token
}

// ViewRecovery returns a copy of the wizard for token, or ErrNotFound.
// Handlers read the email and step through this before calling the user
// service, so the backend call never runs with the store lock held.
func (s *Store) ViewRecovery(token string) (recovery.Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wizards[token]
	if !ok {
		return recovery.Wizard{}, ErrNotFound
	}
	return *w, nil
}

// WithRecovery runs fn against the wizard for token under the lock. fn
// must not block: backend calls belong between a ViewRecovery snapshot
// and the WithRecovery that advances the step.
func (s *Store) WithRecovery(token string, fn func(*recovery.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[token]
	if !ok {
		return ErrNotFound
	}
	return fn(w)
}

// EndRecovery discards a wizard after a successful reset.
func (s *Store) EndRecovery(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, token)
}
