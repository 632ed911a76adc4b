package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/api"
)

type Session struct {
	Token      string    `json:"-" yaml:"-"`
	User       api.User  `json:"user" yaml:"user"`
	LoggedInAt time.Time `json:"logged_in_at" yaml:"logged_in_at"`
}

// SaveSession replaces the stored session.
func SaveSession(db *sql.DB, token string, user api.User) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("session token is required")
	}
	_, err := db.Exec(`
INSERT INTO session(id, token, user_id, name, email, logged_in_at)
VALUES(1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  token=excluded.token,
  user_id=excluded.user_id,
  name=excluded.name,
  email=excluded.email,
  logged_in_at=excluded.logged_in_at
`, token, user.ID, user.Name, user.Email, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// CurrentSession returns nil when nobody is logged in.
func CurrentSession(db *sql.DB) (*Session, error) {
	var (
		s          Session
		loggedInAt string
	)
	err := db.QueryRow(`SELECT token, user_id, name, email, logged_in_at FROM session WHERE id = 1`).
		Scan(&s.Token, &s.User.ID, &s.User.Name, &s.User.Email, &loggedInAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, loggedInAt); err == nil {
		s.LoggedInAt = t
	}
	return &s, nil
}

func ClearSession(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
