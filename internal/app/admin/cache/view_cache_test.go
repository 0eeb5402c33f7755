package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func newTestCache() *ViewCache[item] {
	return NewViewCache(func(i item) string { return i.ID })
}

func TestViewCache_ReplaceKeepsServerOrder(t *testing.T) {
	c := newTestCache()

	c.Replace([]item{{ID: "b"}, {ID: "a"}, {ID: "c"}})

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestViewCache_ItemsReturnsCopy(t *testing.T) {
	c := newTestCache()
	c.Replace([]item{{ID: "a", Name: "one"}})

	items := c.Items()
	items[0].Name = "mutated"

	original, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", original.Name)
}

func TestViewCache_Patch(t *testing.T) {
	c := newTestCache()
	c.Replace([]item{{ID: "a", Name: "one"}})

	ok := c.Patch("a", func(i item) item {
		i.Name = "patched"
		return i
	})
	require.True(t, ok)

	got, _ := c.Get("a")
	assert.Equal(t, "patched", got.Name)

	assert.False(t, c.Patch("missing", func(i item) item { return i }))
}

func TestViewCache_Upsert(t *testing.T) {
	c := newTestCache()
	c.Replace([]item{{ID: "a", Name: "one"}})

	c.Upsert(item{ID: "a", Name: "replaced"})
	c.Upsert(item{ID: "b", Name: "new"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "replaced", items[0].Name)
	assert.Equal(t, "b", items[1].ID) // Новые добавляются в конец
}

func TestViewCache_Remove(t *testing.T) {
	c := newTestCache()
	c.Replace([]item{{ID: "a"}, {ID: "b"}})

	c.Remove("a")
	c.Remove("not-there") // Отсутствие записи не ошибка

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
