// Package session keeps the applicant's login between runs: the auth token,
// the email it belongs to and the cached profile.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lshigami/admission/internal/dto"
	"gopkg.in/yaml.v3"
)

type state struct {
	Token   string           `yaml:"token,omitempty"`
	Email   string           `yaml:"email,omitempty"`
	Profile *dto.UserProfile `yaml:"profile,omitempty"`
}

// Session is safe for concurrent use. Changes are kept in memory until Save.
type Session struct {
	mu   sync.RWMutex
	path string
	st   state
}

// New returns an empty session that saves to path. An empty path keeps the
// session in memory only.
func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the session at path. A missing file gives an empty session.
func Load(path string) (*Session, error) {
	s := New(path)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := yaml.Unmarshal(b, &s.st); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}
	return s, nil
}

// Save writes the session file with owner-only permissions.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	b, err := yaml.Marshal(s.st)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear forgets everything and removes the file.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.st = state{}
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Session) AuthToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Token
}

// SetLogin records a fresh token for email and drops the cached profile if
// it belonged to someone else.
func (s *Session) SetLogin(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.Email != email {
		s.st.Profile = nil
	}
	s.st.Token = token
	s.st.Email = email
}

// DropToken forgets the token but keeps the email, as after a 401.
func (s *Session) DropToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Token = ""
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Email
}

func (s *Session) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Email = email
}

func (s *Session) Profile() (dto.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.Profile == nil {
		return dto.UserProfile{}, false
	}
	return *s.st.Profile, true
}

func (s *Session) SetProfile(p dto.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Profile = &p
}
