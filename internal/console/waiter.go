package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"tableside/internal/board"
	"tableside/internal/poll"
)

// WaiterDashboard is the staff order-management screen: the live floor plan
// plus an order panel for the selected table.
type WaiterDashboard struct {
	registry *board.Registry
	catalog  *board.Catalog
	zones    *board.ZoneLayout
	session  *board.Session
	poller   *poll.Scheduler
	renderer *FloorRenderer
	logger   *slog.Logger

	in  io.Reader
	out io.Writer
}

func NewWaiterDashboard(
	registry *board.Registry,
	catalog *board.Catalog,
	zones *board.ZoneLayout,
	session *board.Session,
	poller *poll.Scheduler,
	renderer *FloorRenderer,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *WaiterDashboard {
	return &WaiterDashboard{
		registry: registry,
		catalog:  catalog,
		zones:    zones,
		session:  session,
		poller:   poller,
		renderer: renderer,
		logger:   logger,
		in:       in,
		out:      out,
	}
}

// Run owns the screen's polling loop: acquired on entry, released on every
// exit path.
func (d *WaiterDashboard) Run(ctx context.Context) error {
	d.poller.Start(ctx)
	defer d.poller.Stop()

	fmt.Fprintln(d.out, "Waiter board. Commands: floor, menu [query], open <table-id>, start, add <code> [qty], inc <item-id>, dec <item-id>, rm <item-id>, seat <table-id>, pay, close, quit")

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
		d.dispatch(ctx, fields)
	}
	return scanner.Err()
}

func (d *WaiterDashboard) dispatch(ctx context.Context, fields []string) {
	var err error
	switch fields[0] {
	case "floor":
		fmt.Fprint(d.out, d.renderer.Render(d.registry.Tables(), d.zones.Zones()))
		fmt.Fprint(d.out, Legend())
		d.printSummaries()
	case "menu":
		d.printMenu(strings.Join(fields[1:], " "))
	case "open":
		err = d.open(ctx, fields)
	case "start":
		err = d.session.Start(ctx)
	case "add":
		err = d.add(ctx, fields)
	case "inc":
		err = d.bump(ctx, fields, +1)
	case "dec":
		err = d.bump(ctx, fields, -1)
	case "rm":
		err = d.remove(ctx, fields)
	case "seat":
		err = d.seat(ctx, fields)
	case "pay":
		err = d.session.Pay(ctx)
		if err == nil {
			fmt.Fprintln(d.out, "order paid, table released")
		}
	case "close":
		d.session.Close()
	default:
		fmt.Fprintf(d.out, "unknown command %q\n", fields[0])
	}
	if err != nil {
		fmt.Fprintln(d.out, "error:", err)
		return
	}
	d.printOrder()
}

func (d *WaiterDashboard) open(ctx context.Context, fields []string) error {
	id, err := argInt(fields, 1, "table id")
	if err != nil {
		return err
	}
	t, ok := d.registry.Find(id)
	if !ok {
		return fmt.Errorf("table %d not on the floor", id)
	}
	return d.session.Open(ctx, t)
}

// add resolves a staff code exactly; partial codes are a menu query, not an
// order action.
func (d *WaiterDashboard) add(ctx context.Context, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("usage: add <code> [qty]")
	}
	item, ok := d.catalog.FindByCode(fields[1])
	if !ok {
		return fmt.Errorf("no menu item with code %q", fields[1])
	}
	qty := 1
	if len(fields) > 2 {
		q, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("bad quantity %q", fields[2])
		}
		qty = q
	}
	return d.session.AddItem(ctx, item.ID, qty)
}

func (d *WaiterDashboard) bump(ctx context.Context, fields []string, delta int) error {
	itemID, err := argInt(fields, 1, "order item id")
	if err != nil {
		return err
	}
	o, ok := d.session.Order()
	if !ok {
		return fmt.Errorf("no active order")
	}
	it, ok := o.Item(itemID)
	if !ok {
		return fmt.Errorf("no order item %d", itemID)
	}
	return d.session.SetQuantity(ctx, itemID, it.Quantity+delta)
}

func (d *WaiterDashboard) remove(ctx context.Context, fields []string) error {
	itemID, err := argInt(fields, 1, "order item id")
	if err != nil {
		return err
	}
	return d.session.RemoveItem(ctx, itemID)
}

func (d *WaiterDashboard) seat(ctx context.Context, fields []string) error {
	id, err := argInt(fields, 1, "table id")
	if err != nil {
		return err
	}
	return d.session.SeatGuests(ctx, id)
}

func (d *WaiterDashboard) printMenu(query string) {
	for _, m := range d.catalog.Filter(query) {
		fmt.Fprintf(d.out, "  %-8s %-30s %8.2f  %s\n", m.Code, m.Name, m.Price, m.ItemType)
	}
}

func (d *WaiterDashboard) printSummaries() {
	for _, t := range d.registry.Tables() {
		line := fmt.Sprintf("  table %d (%d chairs, id %d): %s", t.Number, t.Chairs, t.ID, t.Status)
		if t.ActiveOrder != nil {
			line += fmt.Sprintf("  items: %d  total: %.2f", t.ActiveOrder.ItemsCount, t.ActiveOrder.Total)
		}
		fmt.Fprintln(d.out, statusColor(t.Status).Sprint(line))
	}
}

func (d *WaiterDashboard) printOrder() {
	t, ok := d.session.Table()
	if !ok {
		return
	}
	switch d.session.State() {
	case board.SessionCreating:
		fmt.Fprintf(d.out, "table %d selected, no active order. Type 'start' to open one.\n", t.Number)
	case board.SessionActive:
		o, _ := d.session.Order()
		fmt.Fprintf(d.out, "order #%d for table %d:\n", o.ID, t.Number)
		for _, it := range o.Items {
			fmt.Fprintf(d.out, "  [%d] %dx %-30s %8.2f\n", it.ID, it.Quantity, it.MenuItemDetail.Name, it.MenuItemDetail.Price)
		}
		fmt.Fprintf(d.out, "  total: %.2f\n", o.Total)
	}
}

func argInt(fields []string, idx int, what string) (int, error) {
	if len(fields) <= idx {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(fields[idx])
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, fields[idx])
	}
	return n, nil
}
