// Package cache keeps the last fetched server snapshots in a local sqlite
// database so the UI can render instantly and replace the view when the
// network load lands.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	_ "modernc.org/sqlite"

	"habitlink/internal/logger"
	"habitlink/internal/models"
)

// Snapshot kinds.
const (
	KindHabits        = "habits"
	KindFeed          = "feed"
	KindFriends       = "friends"
	KindNotifications = "notifications"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			kind        TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			payload     TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// save stores one snapshot, skipping the write when the fingerprint matches
// what is already on disk.
func (s *Store) save(kind string, value interface{}) error {
	if s == nil || s.db == nil {
		return nil
	}
	hash, err := hashstructure.Hash(value, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("failed to fingerprint %s snapshot: %w", kind, err)
	}
	fingerprint := fmt.Sprintf("%016x", hash)

	var stored string
	err = s.db.QueryRow(`SELECT fingerprint FROM snapshots WHERE kind = ?`, kind).Scan(&stored)
	if err == nil && stored == fingerprint {
		logger.Debug("Snapshot unchanged, skipping write", "kind", kind)
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", kind, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (kind, fingerprint, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		kind, fingerprint, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", kind, err)
	}
	return nil
}

// load reads one snapshot into out. The second return is false when no
// snapshot of that kind exists.
func (s *Store) load(kind string, out interface{}) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE kind = ?`, kind).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", kind, err)
	}
	return true, nil
}

func (s *Store) SaveHabits(habits []models.Habit) error {
	return s.save(KindHabits, habits)
}

func (s *Store) Habits() ([]models.Habit, bool, error) {
	var habits []models.Habit
	ok, err := s.load(KindHabits, &habits)
	return habits, ok, err
}

func (s *Store) SaveFeed(events []models.ActivityEvent) error {
	return s.save(KindFeed, events)
}

func (s *Store) Feed() ([]models.ActivityEvent, bool, error) {
	var events []models.ActivityEvent
	ok, err := s.load(KindFeed, &events)
	return events, ok, err
}

func (s *Store) SaveFriends(friends []models.Friend) error {
	return s.save(KindFriends, friends)
}

func (s *Store) Friends() ([]models.Friend, bool, error) {
	var friends []models.Friend
	ok, err := s.load(KindFriends, &friends)
	return friends, ok, err
}

func (s *Store) SaveNotifications(items []models.Notification) error {
	return s.save(KindNotifications, items)
}

func (s *Store) Notifications() ([]models.Notification, bool, error) {
	var items []models.Notification
	ok, err := s.load(KindNotifications, &items)
	return items, ok, err
}

// Clear drops all snapshots, used on logout so the next viewer never sees a
// stale account's data.
func (s *Store) Clear() error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`DELETE FROM snapshots`)
	return err
}
