package mcp

import (
	"context"
	"time"

	"github.com/claude/ftracker/internal/storage"
)

// DataSource abstracts the session store for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	QuerySessions(ctx context.Context, start, end time.Time, typeFilter string) ([]storage.Session, error)
	SessionStats(ctx context.Context, start, end time.Time) ([]storage.TypeStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
