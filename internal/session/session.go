// Package session binds the single logged-in user to their in-memory
// bundle and writes every mutation through to the store.
package session

import (
	"errors"
	"fmt"

	"github.com/yassink/reclaim/internal/progress"
	"github.com/yassink/reclaim/internal/store"
)

// Session is the live account state for the logged-in user. It is
// created at login and destroyed at logout; exactly one exists at a
// time.
type Session struct {
	Username string
	Bundle   progress.Bundle

	store *store.Store
}

// Open loads the user's saved bundle or, when none exists, initializes
// a fresh one with the seeded default tasks, then marks the session
// authenticated.
func Open(st *store.Store, username string, seed progress.Profile, defaultTasks []string) (*Session, error) {
	// A missing or undecodable bundle falls back to a fresh account
	// with the seeded task list. Any other error means the stored
	// bundle may be intact, so it must not be overwritten.
	bundle, err := st.LoadBundle(username)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		bundle = progress.NewBundle(seed, defaultTasks)
	default:
		return nil, fmt.Errorf("load bundle: %w", err)
	}

	s := &Session{Username: username, Bundle: bundle, store: st}
	if err := st.SetAuthenticated(true); err != nil {
		return nil, err
	}
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume rebuilds the session for the stored active user, if the
// previous run left one authenticated.
func Resume(st *store.Store, defaultTasks []string) (*Session, bool) {
	if !st.Authenticated() {
		return nil, false
	}
	cur, err := st.ActiveUser()
	if err != nil {
		return nil, false
	}
	seed := progress.Profile{ID: cur.ID, Name: cur.Name}
	s, err := Open(st, cur.Username, seed, defaultTasks)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Save writes the current bundle through to the store. Called after
// every mutating operation.
func (s *Session) Save() error {
	return s.store.SaveBundle(s.Username, s.Bundle)
}

// Apply replaces the bundle and persists it in one step.
func (s *Session) Apply(b progress.Bundle) error {
	s.Bundle = b
	return s.Save()
}

// Close ends the session, clearing the active-user pointer but leaving
// the user's bundle intact.
func (s *Session) Close() error {
	return s.store.ClearActiveSession()
}
