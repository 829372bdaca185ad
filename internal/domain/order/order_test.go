//go:build unit

package order_test

import (
	"testing"

	"tableside/internal/domain/order"
	"tableside/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero clamps to one", in: 0, want: 1},
		{name: "negative clamps to one", in: -3, want: 1},
		{name: "one passes through", in: 1, want: 1},
		{name: "larger passes through", in: 9, want: 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, order.ClampQuantity(tc.in))
		})
	}
}

func TestMatchesCode(t *testing.T) {
	item := builder.NewMenuItemBuilder().WithCode("Carb").Build()

	assert.True(t, item.MatchesCode("carb"))
	assert.True(t, item.MatchesCode("  CAR "))
	assert.True(t, item.MatchesCode(""))
	assert.False(t, item.MatchesCode("esp"))
}

func TestOrderItemLookup(t *testing.T) {
	esp := builder.NewMenuItemBuilder().WithID(1).WithCode("esp").WithPrice(2.5).Build()
	cap := builder.NewMenuItemBuilder().WithID(2).WithCode("cap").WithPrice(3).Build()
	o := builder.NewOrderBuilder().
		WithItem(100, esp, 2).
		WithItem(101, cap, 1).
		Build()

	got, ok := o.Item(101)
	require.True(t, ok)
	assert.Equal(t, cap.ID, got.MenuItemID)

	_, ok = o.Item(999)
	assert.False(t, ok)
}
