package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS range_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			preset INTEGER NOT NULL DEFAULT 0,
			start_day TEXT NOT NULL,
			end_day TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track TEXT NOT NULL,
			artist TEXT NOT NULL,
			track_key TEXT NOT NULL,
			artist_key TEXT NOT NULL,
			image_url TEXT,
			added_at INTEGER NOT NULL,
			UNIQUE(track_key, artist_key)
		);

		CREATE INDEX IF NOT EXISTS idx_favorites_added_at ON favorites(added_at);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
