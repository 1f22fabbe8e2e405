package state

import (
	"database/sql"
	"errors"
)

// RangeState is the last date range selected in the TUI. Preset is the
// quick range key (1-4) or 0 for a custom range.
type RangeState struct {
	Preset int
	Start  string // YYYY-MM-DD
	End    string // YYYY-MM-DD
}

func getRange(db *sql.DB) (*RangeState, error) {
	var state RangeState
	err := db.QueryRow(`
		SELECT preset, start_day, end_day FROM range_state WHERE id = 1
	`).Scan(&state.Preset, &state.Start, &state.End)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved range is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func saveRange(db *sql.DB, state RangeState) error {
	_, err := db.Exec(`
		INSERT INTO range_state (id, preset, start_day, end_day)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			preset = excluded.preset,
			start_day = excluded.start_day,
			end_day = excluded.end_day
	`, state.Preset, state.Start, state.End)
	return err
}
