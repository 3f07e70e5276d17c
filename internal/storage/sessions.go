package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Session is one stored training session: the raw sensor package plus the
// metrics computed from it.
type Session struct {
	ID           uuid.UUID `json:"id"`
	TrainingType string    `json:"training_type"`
	Action       int64     `json:"action"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Speed        float64   `json:"speed"`
	Calories     float64   `json:"calories"`
	RawPackage   []byte    `json:"raw_package,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TypeStats holds per-training-type aggregates over a time range.
type TypeStats struct {
	TrainingType  string  `json:"training_type"`
	Count         int64   `json:"count"`
	TotalDistance float64 `json:"total_distance"`
	TotalCalories float64 `json:"total_calories"`
	AvgSpeed      float64 `json:"avg_speed"`
}

// SaveSession inserts one computed session.
func (db *DB) SaveSession(ctx context.Context, s Session) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO training_sessions
		 (id, training_type, action, duration, distance, speed, calories, raw_package, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.TrainingType, s.Action, s.Duration, s.Distance, s.Speed, s.Calories,
		s.RawPackage, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// QuerySessions retrieves sessions in a time range, newest first, optionally
// filtered by training type.
func (db *DB) QuerySessions(ctx context.Context, start, end time.Time, typeFilter string) ([]Session, error) {
	query := `SELECT id, training_type, action, duration, distance, speed, calories, raw_package, created_at
		 FROM training_sessions
		 WHERE created_at >= $1 AND created_at < $2`
	args := []any{start, end}

	if typeFilter != "" {
		query += ` AND training_type = $3`
		args = append(args, typeFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	return scanSessionRows(rows)
}

// GetSession retrieves a single session by ID.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	var s Session
	err := db.Pool.QueryRow(ctx,
		`SELECT id, training_type, action, duration, distance, speed, calories, raw_package, created_at
		 FROM training_sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.TrainingType, &s.Action, &s.Duration, &s.Distance, &s.Speed,
		&s.Calories, &s.RawPackage, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying session %s: %w", id, err)
	}
	return &s, nil
}

// SessionStats returns per-type aggregates over a time range.
func (db *DB) SessionStats(ctx context.Context, start, end time.Time) ([]TypeStats, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT training_type, COUNT(*), COALESCE(SUM(distance), 0),
		 COALESCE(SUM(calories), 0), COALESCE(AVG(speed), 0)
		 FROM training_sessions
		 WHERE created_at >= $1 AND created_at < $2
		 GROUP BY training_type
		 ORDER BY training_type`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("querying session stats: %w", err)
	}
	defer rows.Close()

	var stats []TypeStats
	for rows.Next() {
		var st TypeStats
		if err := rows.Scan(&st.TrainingType, &st.Count, &st.TotalDistance,
			&st.TotalCalories, &st.AvgSpeed); err != nil {
			return nil, fmt.Errorf("scanning stats row: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func scanSessionRows(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.TrainingType, &s.Action, &s.Duration, &s.Distance,
			&s.Speed, &s.Calories, &s.RawPackage, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
