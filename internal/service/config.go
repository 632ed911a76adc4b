package service

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/model"
)

const (
	ConfigAPIURL        = "api_url"
	ConfigTimeout       = "timeout"
	ConfigDefaultWindow = "default_window"
)

var ConfigKeys = []string{ConfigAPIURL, ConfigDefaultWindow, ConfigTimeout}

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value, err := normalizeConfigValue(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	_, err = db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

func normalizeConfigValue(key, value string) (string, error) {
	switch key {
	case ConfigAPIURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("invalid api url %q (expected http or https URL)", value)
		}
		return strings.TrimRight(value, "/"), nil
	case ConfigTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return "", fmt.Errorf("invalid timeout %q (expected a positive duration like 10s)", value)
		}
		return d.String(), nil
	case ConfigDefaultWindow:
		w, ok := model.ParseWindow(value)
		if !ok {
			return "", fmt.Errorf("invalid default window %q (expected Daily, Weekly or Monthly)", value)
		}
		return string(w), nil
	default:
		return "", fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(ConfigKeys, ", "))
	}
}
