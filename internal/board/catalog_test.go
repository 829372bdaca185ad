//go:build unit

package board_test

import (
	"context"
	"log/slog"
	"testing"

	"tableside/internal/board"
	"tableside/internal/domain/order"
	"tableside/tests/common/builder"
	boardmock "tableside/tests/mock/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalog(t *testing.T, items []order.MenuItem) *board.Catalog {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := boardmock.NewMockMenuSource(ctrl)
	source.EXPECT().MenuItems(gomock.Any()).Return(items, nil).Times(1)

	catalog := board.NewCatalog(source, slog.New(slog.DiscardHandler))
	require.NoError(t, catalog.Refresh(context.Background()))
	return catalog
}

func TestCatalogFindByCode(t *testing.T) {
	catalog := newCatalog(t, []order.MenuItem{
		builder.NewMenuItemBuilder().WithID(1).WithCode("esp").Build(),
		builder.NewMenuItemBuilder().WithID(2).WithCode("cap").Build(),
	})

	t.Run("exact match ignoring case and spacing", func(t *testing.T) {
		got, ok := catalog.FindByCode(" ESP ")
		require.True(t, ok)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("substring does not qualify as exact", func(t *testing.T) {
		_, ok := catalog.FindByCode("es")
		assert.False(t, ok)
	})

	t.Run("blank query never matches", func(t *testing.T) {
		_, ok := catalog.FindByCode("   ")
		assert.False(t, ok)
	})
}

func TestCatalogFilter(t *testing.T) {
	catalog := newCatalog(t, []order.MenuItem{
		builder.NewMenuItemBuilder().WithID(1).WithCode("esp").Build(),
		builder.NewMenuItemBuilder().WithID(2).WithCode("espresso-double").Build(),
		builder.NewMenuItemBuilder().WithID(3).WithCode("cap").Build(),
	})

	assert.Len(t, catalog.Filter("esp"), 2)
	assert.Len(t, catalog.Filter(""), 3)
	assert.Empty(t, catalog.Filter("zzz"))
}
