package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE favorites (id INTEGER PRIMARY KEY, track TEXT NOT NULL UNIQUE)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx(t *testing.T) {
	abort := errors.New("abort")

	tests := []struct {
		name      string
		tracks    []string
		fail      error
		wantErr   bool
		wantCount int
	}{
		{name: "commit", tracks: []string{"a", "b", "c"}, wantCount: 3},
		{name: "callback error rolls back", tracks: []string{"a", "b"}, fail: abort, wantErr: true},
		{name: "constraint error rolls back", tracks: []string{"a", "a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			err := WithTx(db, func(tx *sql.Tx) error {
				for _, track := range tt.tracks {
					if _, err := tx.Exec(`INSERT INTO favorites (track) VALUES (?)`, track); err != nil {
						return err
					}
				}
				return tt.fail
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("WithTx error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.fail != nil && !errors.Is(err, tt.fail) {
				t.Errorf("WithTx should return the callback error, got %v", err)
			}
			if got := countRows(t, db); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestNullStringValue(t *testing.T) {
	tests := []struct {
		in   sql.NullString
		want string
	}{
		{sql.NullString{String: "hello", Valid: true}, "hello"},
		{sql.NullString{String: "ignored", Valid: false}, ""},
		{sql.NullString{String: "", Valid: true}, ""},
	}

	for _, tt := range tests {
		if got := NullStringValue(tt.in); got != tt.want {
			t.Errorf("NullStringValue(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
