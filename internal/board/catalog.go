package board

import (
	"context"
	"log/slog"
	"sync"

	"tableside/internal/domain/order"
	"tableside/internal/pkg/errs"
)

type MenuSource interface {
	MenuItems(ctx context.Context) ([]order.MenuItem, error)
}

// Catalog holds the menu, read-only from the client perspective and refreshed
// once per polling cycle.
type Catalog struct {
	source MenuSource
	logger *slog.Logger

	mu    sync.RWMutex
	items []order.MenuItem
}

func NewCatalog(source MenuSource, logger *slog.Logger) *Catalog {
	return &Catalog{
		source: source,
		logger: logger,
	}
}

func (c *Catalog) Refresh(ctx context.Context) error {
	fetched, err := c.source.MenuItems(ctx)
	if err != nil {
		return errs.Wrap(err, "menu refresh failed")
	}
	c.mu.Lock()
	c.items = fetched
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Items() []order.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]order.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// FindByCode resolves an exact staff-entered code, for quick add.
func (c *Catalog) FindByCode(code string) (order.MenuItem, bool) {
	want := order.NormalizeCode(code)
	if want == "" {
		return order.MenuItem{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.items {
		if order.NormalizeCode(m.Code) == want {
			return m, true
		}
	}
	return order.MenuItem{}, false
}

// Filter narrows the menu by substring match on code; an empty query returns
// everything.
func (c *Catalog) Filter(query string) []order.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if order.NormalizeCode(query) == "" {
		out := make([]order.MenuItem, len(c.items))
		copy(out, c.items)
		return out
	}
	var out []order.MenuItem
	for _, m := range c.items {
		if m.MatchesCode(query) {
			out = append(out, m)
		}
	}
	return out
}
