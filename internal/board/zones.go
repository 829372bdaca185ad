package board

import (
	"context"
	"log/slog"
	"sync"

	"tableside/internal/api"
	"tableside/internal/domain/floor"
	"tableside/internal/pkg/errs"
)

type ZoneGateway interface {
	Zones(ctx context.Context) ([]floor.Zone, error)
	CreateZone(ctx context.Context, req api.CreateZoneRequest) (floor.Zone, error)
	UpdateZone(ctx context.Context, id int, req api.UpdateZoneRequest) (floor.Zone, error)
	DeleteZone(ctx context.Context, id int) error
}

// ZoneLayout is the read-mostly collection of overlay rectangles. Mutations
// are manager-only round trips; local state is updated on success and never
// rolled back afterwards (a single-operator workflow is assumed).
type ZoneLayout struct {
	gateway ZoneGateway
	logger  *slog.Logger

	mu    sync.RWMutex
	zones []floor.Zone
}

func NewZoneLayout(gateway ZoneGateway, logger *slog.Logger) *ZoneLayout {
	return &ZoneLayout{
		gateway: gateway,
		logger:  logger,
	}
}

func (z *ZoneLayout) Refresh(ctx context.Context) error {
	fetched, err := z.gateway.Zones(ctx)
	if err != nil {
		return errs.Wrap(err, "zone refresh failed")
	}
	z.mu.Lock()
	z.zones = fetched
	z.mu.Unlock()
	return nil
}

func (z *ZoneLayout) Zones() []floor.Zone {
	z.mu.RLock()
	defer z.mu.RUnlock()
	out := make([]floor.Zone, len(z.zones))
	copy(out, z.zones)
	return out
}

func (z *ZoneLayout) Create(ctx context.Context, req api.CreateZoneRequest) (floor.Zone, error) {
	created, err := z.gateway.CreateZone(ctx, req)
	if err != nil {
		return floor.Zone{}, errs.Wrap(err, "zone create failed")
	}
	z.mu.Lock()
	z.zones = append(z.zones, created)
	z.mu.Unlock()
	return created, nil
}

func (z *ZoneLayout) Move(ctx context.Context, id, left, top int) error {
	return z.update(ctx, id, api.UpdateZoneRequest{Left: &left, Top: &top})
}

func (z *ZoneLayout) Resize(ctx context.Context, id, width, height int) error {
	return z.update(ctx, id, api.UpdateZoneRequest{Width: &width, Height: &height})
}

func (z *ZoneLayout) update(ctx context.Context, id int, req api.UpdateZoneRequest) error {
	updated, err := z.gateway.UpdateZone(ctx, id, req)
	if err != nil {
		return errs.Wrap(err, "zone update failed")
	}
	z.mu.Lock()
	for i := range z.zones {
		if z.zones[i].ID == id {
			z.zones[i] = updated
			break
		}
	}
	z.mu.Unlock()
	return nil
}

func (z *ZoneLayout) Delete(ctx context.Context, id int) error {
	if err := z.gateway.DeleteZone(ctx, id); err != nil {
		return errs.Wrap(err, "zone delete failed")
	}
	z.mu.Lock()
	kept := z.zones[:0]
	for _, zone := range z.zones {
		if zone.ID != id {
			kept = append(kept, zone)
		}
	}
	z.zones = kept
	z.mu.Unlock()
	return nil
}
