package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tableside/internal/api"
	"tableside/internal/board"
	"tableside/internal/domain/floor"
	"tableside/internal/poll"
)

// ManagerGateway covers the table-editing calls the manager screen issues
// directly, outside any store.
type ManagerGateway interface {
	CreateTable(ctx context.Context, req api.CreateTableRequest) (floor.Table, error)
	MoveTable(ctx context.Context, id, left, top int) (floor.Table, error)
	DeleteTable(ctx context.Context, id int) error
}

// ManagerDashboard combines the pending-reservation queue with the table and
// zone editor.
type ManagerDashboard struct {
	registry *board.Registry
	zones    *board.ZoneLayout
	queue    *board.Queue
	gateway  ManagerGateway
	poller   *poll.Scheduler
	renderer *FloorRenderer
	logger   *slog.Logger

	in  io.Reader
	out io.Writer
}

func NewManagerDashboard(
	registry *board.Registry,
	zones *board.ZoneLayout,
	queue *board.Queue,
	gateway ManagerGateway,
	poller *poll.Scheduler,
	renderer *FloorRenderer,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *ManagerDashboard {
	return &ManagerDashboard{
		registry: registry,
		zones:    zones,
		queue:    queue,
		gateway:  gateway,
		poller:   poller,
		renderer: renderer,
		logger:   logger,
		in:       in,
		out:      out,
	}
}

func (d *ManagerDashboard) Run(ctx context.Context) error {
	d.poller.Start(ctx)
	defer d.poller.Stop()

	fmt.Fprintln(d.out, "Manager board. Commands: floor, pending, approve <id>, reject <id>, addtable <number> <chairs>, movetable <id> <left> <top>, deltable <id>, addzone <type> <left> <top> <w> <h>, movezone <id> <left> <top>, resizezone <id> <w> <h>, delzone <id>, quit")

	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return nil
		}
		if err := d.dispatch(ctx, fields); err != nil {
			fmt.Fprintln(d.out, "error:", err)
		}
	}
	return scanner.Err()
}

func (d *ManagerDashboard) dispatch(ctx context.Context, fields []string) error {
	switch fields[0] {
	case "floor":
		fmt.Fprint(d.out, d.renderer.Render(d.registry.Tables(), d.zones.Zones()))
		fmt.Fprint(d.out, Legend())
		return nil
	case "pending":
		d.printPending()
		return nil
	case "approve":
		id, err := argInt(fields, 1, "reservation id")
		if err != nil {
			return err
		}
		return d.queue.Approve(ctx, id)
	case "reject":
		id, err := argInt(fields, 1, "reservation id")
		if err != nil {
			return err
		}
		return d.queue.Reject(ctx, id)
	case "addtable":
		return d.addTable(ctx, fields)
	case "movetable":
		return d.moveTable(ctx, fields)
	case "deltable":
		id, err := argInt(fields, 1, "table id")
		if err != nil {
			return err
		}
		if err := d.gateway.DeleteTable(ctx, id); err != nil {
			return err
		}
		return d.registry.Refresh(ctx)
	case "addzone":
		return d.addZone(ctx, fields)
	case "movezone":
		return d.moveZone(ctx, fields)
	case "resizezone":
		return d.resizeZone(ctx, fields)
	case "delzone":
		id, err := argInt(fields, 1, "zone id")
		if err != nil {
			return err
		}
		return d.zones.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func (d *ManagerDashboard) printPending() {
	pending := d.queue.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(d.out, "No pending reservations")
		return
	}
	for _, r := range pending {
		fmt.Fprintf(d.out, "  #%d table %d at %s  by %s  %q\n",
			r.ID, r.Table, r.Datetime.Local().Format("2006-01-02 15:04"), r.UserUsername, r.Description)
	}
}

// addTable creates the table at the origin; position is edited afterwards
// with movetable, the way drops are persisted in the visual editor.
func (d *ManagerDashboard) addTable(ctx context.Context, fields []string) error {
	number, err := argInt(fields, 1, "table number")
	if err != nil {
		return err
	}
	chairs, err := argInt(fields, 2, "chair count")
	if err != nil {
		return err
	}
	_, err = d.gateway.CreateTable(ctx, api.CreateTableRequest{
		Number: number,
		Chairs: chairs,
		Status: floor.StatusAvailable,
	})
	if err != nil {
		return err
	}
	return d.registry.Refresh(ctx)
}

func (d *ManagerDashboard) moveTable(ctx context.Context, fields []string) error {
	id, err := argInt(fields, 1, "table id")
	if err != nil {
		return err
	}
	left, err := argInt(fields, 2, "left")
	if err != nil {
		return err
	}
	top, err := argInt(fields, 3, "top")
	if err != nil {
		return err
	}
	if _, err := d.gateway.MoveTable(ctx, id, left, top); err != nil {
		return err
	}
	return d.registry.Refresh(ctx)
}

func (d *ManagerDashboard) addZone(ctx context.Context, fields []string) error {
	if len(fields) < 6 {
		return fmt.Errorf("usage: addzone <type> <left> <top> <w> <h>")
	}
	zoneType, err := floor.NewZoneType(fields[1])
	if err != nil {
		return err
	}
	left, err := argInt(fields, 2, "left")
	if err != nil {
		return err
	}
	top, err := argInt(fields, 3, "top")
	if err != nil {
		return err
	}
	width, err := argInt(fields, 4, "width")
	if err != nil {
		return err
	}
	height, err := argInt(fields, 5, "height")
	if err != nil {
		return err
	}
	_, err = d.zones.Create(ctx, api.CreateZoneRequest{
		Type: zoneType, Left: left, Top: top, Width: width, Height: height,
	})
	return err
}

func (d *ManagerDashboard) moveZone(ctx context.Context, fields []string) error {
	id, err := argInt(fields, 1, "zone id")
	if err != nil {
		return err
	}
	left, err := argInt(fields, 2, "left")
	if err != nil {
		return err
	}
	top, err := argInt(fields, 3, "top")
	if err != nil {
		return err
	}
	return d.zones.Move(ctx, id, left, top)
}

func (d *ManagerDashboard) resizeZone(ctx context.Context, fields []string) error {
	id, err := argInt(fields, 1, "zone id")
	if err != nil {
		return err
	}
	width, err := argInt(fields, 2, "width")
	if err != nil {
		return err
	}
	height, err := argInt(fields, 3, "height")
	if err != nil {
		return err
	}
	return d.zones.Resize(ctx, id, width, height)
}
