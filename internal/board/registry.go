package board

import (
	"context"
	"log/slog"
	"sync"

	"tableside/internal/domain/floor"
	"tableside/internal/pkg/errs"
)

// TableSource fetches the table collection. The client dashboard and the
// staff dashboards read different endpoints, so the source is injected.
type TableSource interface {
	FetchTables(ctx context.Context) ([]floor.Table, error)
}

type TableSourceFunc func(ctx context.Context) ([]floor.Table, error)

func (f TableSourceFunc) FetchTables(ctx context.Context) ([]floor.Table, error) {
	return f(ctx)
}

// Registry holds the latest known set of tables and exposes a stable,
// duplicate-free view sorted by display number. Refresh replaces prior state
// wholesale; there is no incremental merge.
type Registry struct {
	source TableSource
	logger *slog.Logger

	mu     sync.RWMutex
	tables []floor.Table
}

func NewRegistry(source TableSource, logger *slog.Logger) *Registry {
	return &Registry{
		source: source,
		logger: logger,
	}
}

// Refresh fetches and replaces the held collection. A failed fetch leaves
// prior state intact; the caller decides whether to surface the error.
func (r *Registry) Refresh(ctx context.Context) error {
	fetched, err := r.source.FetchTables(ctx)
	if err != nil {
		return errs.Wrap(err, "table refresh failed")
	}
	normalized := floor.Normalize(fetched)

	r.mu.Lock()
	r.tables = normalized
	r.mu.Unlock()
	return nil
}

// Tables returns a snapshot of the current view.
func (r *Registry) Tables() []floor.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]floor.Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Available filters the view to tables open for reservation.
func (r *Registry) Available() []floor.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []floor.Table
	for _, t := range r.tables {
		if t.IsAvailable() {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) Find(id int) (floor.Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tables {
		if t.ID == id {
			return t, true
		}
	}
	return floor.Table{}, false
}
