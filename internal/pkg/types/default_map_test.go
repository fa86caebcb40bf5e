package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 42 })

		assert.Zero(t, dm.Len())
		assert.False(t, dm.Has("missing"))
	})

	t.Run("should create and store defaults on read", func(t *testing.T) {
		dm := NewDefaultMap[string](func() []int { return []int{} })

		assert.Empty(t, dm.Get("session"))
		assert.True(t, dm.Has("session"))
		assert.Equal(t, 1, dm.Len())
	})

	t.Run("should return stored values", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("existing", 100)

		assert.Equal(t, 100, dm.Get("existing"))
	})

	t.Run("should call the default func once per missing key", func(t *testing.T) {
		calls := 0
		dm := NewDefaultMap[int](func() string {
			calls++
			return "default"
		})

		dm.Get(1)
		dm.Get(1)
		dm.Get(2)

		assert.Equal(t, 2, calls)
	})

	t.Run("should not share defaults between keys", func(t *testing.T) {
		dm := NewDefaultMap[string](func() *[]int { return &[]int{} })

		a := dm.Get("a")
		*a = append(*a, 1)

		assert.Empty(t, *dm.Get("b"))
		assert.Equal(t, []int{1}, *dm.Get("a"))
	})

	t.Run("should recreate deleted keys from the default", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 7 })
		dm.Set("k", 1)

		dm.Delete("k")
		assert.False(t, dm.Has("k"))
		assert.Equal(t, 7, dm.Get("k"))
	})

	t.Run("should ignore deleting a missing key", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })

		assert.NotPanics(t, func() { dm.Delete("missing") })
	})
}
