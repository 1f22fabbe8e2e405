package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "topplays"
	dbFileName   = "topplays.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db           *sql.DB
	maxFavorites int
	saveMu       sync.Mutex
	saveTimer    *time.Timer
	pending      *RangeState
}

// Open opens the state database under the XDG data directory. maxFavorites
// bounds the favorites list.
func Open(maxFavorites int) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, maxFavorites)
}

// OpenPath opens the state database at dbPath.
func OpenPath(dbPath string, maxFavorites int) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return newManager(db, maxFavorites), nil
}

func newManager(db *sql.DB, maxFavorites int) *Manager {
	if maxFavorites <= 0 {
		maxFavorites = DefaultMaxFavorites
	}
	return &Manager{db: db, maxFavorites: maxFavorites}
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveRange(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetRange() (*RangeState, error) {
	return getRange(m.db)
}

// SaveRange stores the selected range after a short quiet period, so rapid
// switching only writes the last choice.
func (m *Manager) SaveRange(state RangeState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveRange(m.db, *pending)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
