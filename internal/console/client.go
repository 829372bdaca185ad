package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tableside/internal/board"
	"tableside/internal/pkg/errs"
	"tableside/internal/poll"

	cr "github.com/cockroachdb/errors"
)

// ClientDashboard lets an authenticated client browse available tables and
// submit reservation requests.
type ClientDashboard struct {
	registry *board.Registry
	form     *board.Form
	poller   *poll.Scheduler
	renderer *FloorRenderer
	logger   *slog.Logger

	in  io.Reader
	out io.Writer
}

func NewClientDashboard(
	registry *board.Registry,
	form *board.Form,
	poller *poll.Scheduler,
	renderer *FloorRenderer,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *ClientDashboard {
	return &ClientDashboard{
		registry: registry,
		form:     form,
		poller:   poller,
		renderer: renderer,
		logger:   logger,
		in:       in,
		out:      out,
	}
}

func (d *ClientDashboard) Run(ctx context.Context) error {
	d.poller.Start(ctx)
	defer d.poller.Stop()

	fmt.Fprintln(d.out, "Commands: floor, list, when <YYYY-MM-DDTHH:MM>, note <text>, reserve <table-id>, quit")

	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit":
			return nil
		case "floor":
			fmt.Fprint(d.out, d.renderer.Render(d.registry.Tables(), nil))
			fmt.Fprint(d.out, Legend())
		case "list":
			d.printAvailable()
		case "when":
			if len(fields) < 2 {
				fmt.Fprintln(d.out, "usage: when <YYYY-MM-DDTHH:MM>")
				continue
			}
			d.form.SetWhen(fields[1])
		case "note":
			d.form.SetDescription(strings.Join(fields[1:], " "))
		case "reserve":
			d.reserve(ctx, fields)
		default:
			fmt.Fprintf(d.out, "unknown command %q\n", fields[0])
		}
	}
	return scanner.Err()
}

func (d *ClientDashboard) printAvailable() {
	available := d.registry.Available()
	if len(available) == 0 {
		fmt.Fprintln(d.out, "no available tables right now")
		return
	}
	for _, t := range available {
		fmt.Fprintf(d.out, "  table %d (%d chairs, id %d)\n", t.Number, t.Chairs, t.ID)
	}
}

func (d *ClientDashboard) reserve(ctx context.Context, fields []string) {
	id, err := argInt(fields, 1, "table id")
	if err != nil {
		fmt.Fprintln(d.out, "error:", err)
		return
	}
	if err := d.form.Reserve(ctx, id); err != nil {
		if cr.Is(err, errs.ErrMissingDatetime) {
			fmt.Fprintln(d.out, "Choose date and time first (the 'when' command).")
			return
		}
		fmt.Fprintln(d.out, "error:", err)
		return
	}
	fmt.Fprintln(d.out, "The request is sent (pending).")
}
