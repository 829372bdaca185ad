//go:build unit

package floor_test

import (
	"testing"

	"tableside/internal/domain/floor"
	"tableside/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	cases := []struct {
		name   string
		chairs int
		want   floor.Shape
	}{
		{name: "one chair is square", chairs: 1, want: floor.ShapeSquare},
		{name: "four chairs is square", chairs: 4, want: floor.ShapeSquare},
		{name: "five chairs is rect", chairs: 5, want: floor.ShapeRect},
		{name: "six chairs is rect", chairs: 6, want: floor.ShapeRect},
		{name: "seven chairs is round", chairs: 7, want: floor.ShapeRound},
		{name: "twelve chairs is round", chairs: 12, want: floor.ShapeRound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := builder.NewTableBuilder().WithChairs(tc.chairs).Build()
			assert.Equal(t, tc.want, table.Shape())
		})
	}
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"available", "reserved", "occupied"} {
		got, err := floor.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got.String())
	}

	_, err := floor.NewStatus("closed")
	assert.ErrorIs(t, err, floor.ErrInvalidStatus)
}

func TestNormalize(t *testing.T) {
	t.Run("sorts by display number", func(t *testing.T) {
		in := []floor.Table{
			builder.NewTableBuilder().WithID(3).WithNumber(30).Build(),
			builder.NewTableBuilder().WithID(1).WithNumber(10).Build(),
			builder.NewTableBuilder().WithID(2).WithNumber(20).Build(),
		}
		got := floor.Normalize(in)
		require.Len(t, got, 3)
		assert.Equal(t, []int{10, 20, 30}, []int{got[0].Number, got[1].Number, got[2].Number})
	})

	t.Run("drops duplicate ids keeping the first occurrence", func(t *testing.T) {
		first := builder.NewTableBuilder().WithID(1).WithNumber(5).WithChairs(2).Build()
		dup := builder.NewTableBuilder().WithID(1).WithNumber(5).WithChairs(8).Build()
		got := floor.Normalize([]floor.Table{first, dup})
		require.Len(t, got, 1)
		assert.Empty(t, cmp.Diff(first, got[0]))
	})

	t.Run("sort is stable for equal numbers", func(t *testing.T) {
		a := builder.NewTableBuilder().WithID(1).WithNumber(7).Build()
		b := builder.NewTableBuilder().WithID(2).WithNumber(7).Build()
		got := floor.Normalize([]floor.Table{a, b})
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, floor.Normalize(nil))
	})
}
