//go:build unit

package console_test

import (
	"strings"
	"testing"

	"tableside/internal/console"
	"tableside/internal/domain/floor"
	"tableside/tests/common/builder"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkersEncodeShape(t *testing.T) {
	color.NoColor = true
	r := console.NewFloorRenderer(75, 18)

	tables := []floor.Table{
		builder.NewTableBuilder().WithID(1).WithNumber(1).WithChairs(4).WithPosition(0, 0).Build(),
		builder.NewTableBuilder().WithID(2).WithNumber(2).WithChairs(6).WithPosition(300, 200).Build(),
		builder.NewTableBuilder().WithID(3).WithNumber(3).WithChairs(8).WithPosition(600, 400).Build(),
	}

	out := r.Render(tables, nil)
	assert.Contains(t, out, "[1]", "four chairs render square brackets")
	assert.Contains(t, out, "[ 2 ]", "six chairs render a wide rectangle")
	assert.Contains(t, out, "(3)", "eight chairs render round")
}

func TestRenderZonesSitBeneathTables(t *testing.T) {
	color.NoColor = true
	r := console.NewFloorRenderer(75, 18)

	zone := floor.Zone{ID: 1, Type: floor.ZoneGlass, Left: 0, Top: 0, Width: 750, Height: 450}
	table := builder.NewTableBuilder().WithID(1).WithNumber(7).WithPosition(300, 200).Build()

	out := r.Render([]floor.Table{table}, []floor.Zone{zone})
	assert.Contains(t, out, "~", "zone fill visible")
	assert.Contains(t, out, "[7]", "table drawn over the zone")
}

func TestRenderGridIsBordered(t *testing.T) {
	color.NoColor = true
	r := console.NewFloorRenderer(40, 10)

	out := r.Render(nil, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12, "10 rows plus top and bottom borders")
	assert.Equal(t, "+"+strings.Repeat("-", 40)+"+", lines[0])
	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "|"))
		assert.True(t, strings.HasSuffix(line, "|"))
	}
}

func TestRenderClampsOutOfRoomPositions(t *testing.T) {
	color.NoColor = true
	r := console.NewFloorRenderer(40, 10)

	table := builder.NewTableBuilder().WithID(1).WithNumber(9).WithPosition(5000, 5000).Build()
	out := r.Render([]floor.Table{table}, nil)
	assert.Contains(t, out, "[9]", "marker stays inside the grid")
}
