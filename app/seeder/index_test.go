package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	ix := newIndex("tag")
	_, ok := ix.First()
	assert.False(t, ok)

	ix.add("retail", 7)
	ix.add("barcode", 3)
	ix.add("retail", 9)

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, []string{"retail", "barcode"}, ix.Slugs())

	first, ok := ix.First()
	require.True(t, ok)
	assert.Equal(t, uint(9), first)

	ids, err := ix.ResolveAll([]string{"barcode", "retail"})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 9}, ids)

	ids, err = ix.ResolveAll([]string{"barcode", "inventory", "rfid"})
	assert.Nil(t, ids)
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.EqualError(t, err, `tag "inventory" not found`)

	empty, err := ix.ResolveAll(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
