package platform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SessionAuth signs out by removing the stored session token file.
type SessionAuth struct {
	path string
}

// NewSessionAuth returns an authenticator for the session file at path.
func NewSessionAuth(path string) *SessionAuth {
	return &SessionAuth{path: path}
}

// DefaultSessionPath is where the session token lives unless configured.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "bloop", "session.json"), nil
}

// SignOut removes the session file. Signing out while already signed out
// succeeds.
func (s *SessionAuth) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.path == "" {
		return errors.New("no session file configured")
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// SignedIn reports whether a session file exists.
func (s *SessionAuth) SignedIn() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}
