package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/apitest"
	"github.com/saadjs/fittrack/internal/db"
)

var now = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fittrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func newTestClient(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer(t)
	return srv, &api.Client{BaseURL: srv.URL(), Token: apitest.Token, HTTPClient: srv.HTTPClient()}
}
