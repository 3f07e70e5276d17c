package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/ftracker/internal/training"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB is a local SQLite log of computed training sessions, kept by the
// console driver so past runs can be inspected without a server.
type DB struct {
	db *sql.DB
}

// Entry is one recorded session.
type Entry struct {
	ID           uuid.UUID
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
	Message      string
	CreatedAt    time.Time
}

// Open opens (or creates) the history database at dir/history.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		training_type TEXT NOT NULL,
		duration      REAL NOT NULL,
		distance      REAL NOT NULL,
		speed         REAL NOT NULL,
		calories      REAL NOT NULL,
		message       TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sessions table: %w", err)
	}

	return &DB{db: db}, nil
}

// Record stores one computed session and returns its generated ID.
func (h *DB) Record(info training.InfoMessage) (uuid.UUID, error) {
	id := uuid.New()
	_, err := h.db.Exec(
		`INSERT INTO sessions (id, training_type, duration, distance, speed, calories, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), info.TrainingType, info.Duration, info.Distance, info.Speed,
		info.Calories, info.Message(), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("recording session: %w", err)
	}
	return id, nil
}

// Recent returns the n most recently recorded sessions, newest first.
func (h *DB) Recent(n int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, training_type, duration, distance, speed, calories, message, created_at
		 FROM sessions ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var id string
		if err := rows.Scan(&id, &e.TrainingType, &e.Duration, &e.Distance,
			&e.Speed, &e.Calories, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing history id %q: %w", id, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the history database.
func (h *DB) Close() error {
	return h.db.Close()
}
