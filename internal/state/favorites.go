package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/topplays/internal/db"
	"github.com/llehouerou/topplays/internal/history"
)

// DefaultMaxFavorites is the favorites capacity when none is configured.
const DefaultMaxFavorites = 4

// Favorite is a pinned track.
type Favorite struct {
	ID       int64
	Track    history.TrackIdentity
	ImageURL string
	AddedAt  time.Time
}

// ListFavorites returns the favorites, oldest first.
func (m *Manager) ListFavorites() ([]Favorite, error) {
	return listFavorites(m.db)
}

// IsFavorite reports whether id is pinned.
func (m *Manager) IsFavorite(id history.TrackIdentity) (bool, error) {
	return isFavorite(m.db, id)
}

// AddFavorite pins id. When the list is full the oldest favorite is
// replaced. Adding a track that is already pinned does nothing.
func (m *Manager) AddFavorite(id history.TrackIdentity, imageURL string) error {
	return addFavorite(m.db, id, imageURL, m.maxFavorites)
}

// RemoveFavorite unpins id.
func (m *Manager) RemoveFavorite(id history.TrackIdentity) error {
	return removeFavorite(m.db, id)
}

// ToggleFavorite pins id if it is not pinned and unpins it otherwise. It
// reports whether the track is pinned afterwards.
func (m *Manager) ToggleFavorite(id history.TrackIdentity, imageURL string) (bool, error) {
	var pinned bool
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		wasPinned, err := isFavorite(tx, id)
		if err != nil {
			return err
		}
		if wasPinned {
			return removeFavorite(tx, id)
		}
		pinned = true
		return insertFavorite(tx, id, imageURL, m.maxFavorites)
	})
	if err != nil {
		return false, err
	}
	return pinned, nil
}

func listFavorites(db *sql.DB) ([]Favorite, error) {
	rows, err := db.Query(`
		SELECT id, track, artist, image_url, added_at
		FROM favorites ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []Favorite
	for rows.Next() {
		var f Favorite
		var imageURL sql.NullString
		var addedAt int64
		if err := rows.Scan(&f.ID, &f.Track.Track, &f.Track.Artist, &imageURL, &addedAt); err != nil {
			return nil, err
		}
		f.ImageURL = dbutil.NullStringValue(imageURL)
		f.AddedAt = time.Unix(addedAt, 0)
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func isFavorite(db dbutil.Querier, id history.TrackIdentity) (bool, error) {
	key := id.Key()
	var found int
	err := db.QueryRow(`
		SELECT 1 FROM favorites WHERE track_key = ? AND artist_key = ?
	`, key.Track, key.Artist).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func addFavorite(db *sql.DB, id history.TrackIdentity, imageURL string, maxFavorites int) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		return insertFavorite(tx, id, imageURL, maxFavorites)
	})
}

// insertFavorite pins id unless it already is, evicting the oldest entries
// past maxFavorites.
func insertFavorite(tx dbutil.Querier, id history.TrackIdentity, imageURL string, maxFavorites int) error {
	key := id.Key()
	var exists int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM favorites WHERE track_key = ? AND artist_key = ?
	`, key.Track, key.Artist).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&count); err != nil {
		return err
	}
	if count >= maxFavorites {
		// Drop the oldest entries to make room for one more.
		_, err := tx.Exec(`
			DELETE FROM favorites WHERE id IN (
				SELECT id FROM favorites ORDER BY id LIMIT ?
			)
		`, count-maxFavorites+1)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO favorites (track, artist, track_key, artist_key, image_url, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id.Track, id.Artist, key.Track, key.Artist, imageURL, time.Now().Unix())
	return err
}

func removeFavorite(db dbutil.Querier, id history.TrackIdentity) error {
	key := id.Key()
	_, err := db.Exec(`
		DELETE FROM favorites WHERE track_key = ? AND artist_key = ?
	`, key.Track, key.Artist)
	return err
}
