package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Session is the signed-in state saved between CLI invocations.
type Session struct {
	Server       string `yaml:"server"`
	UserID       string `yaml:"user_id"`
	DisplayName  string `yaml:"display_name,omitempty"`
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// DefaultSessionPath returns $XDG_CONFIG_HOME/feedsync/session.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultSessionPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "feedsync-session.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "feedsync", "session.yaml")
}

// SessionStore keeps the session in a YAML file readable only by its owner.
type SessionStore struct {
	mu   sync.Mutex
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Path returns the session file location.
func (s *SessionStore) Path() string {
	return s.path
}

// Load reads the saved session. ok is false when no session is saved.
func (s *SessionStore) Load() (session Session, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, &session); err != nil {
		return Session{}, false, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	if session.RefreshToken == "" {
		return Session{}, false, nil
	}
	return session, true, nil
}

// Save writes session, creating the parent directory with mode 0700.
func (s *SessionStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("failed to restrict session file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the saved session. A missing file is not an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	return nil
}
