package set_test

import (
	"testing"

	"github.com/denismitr/topokit/set"
	"github.com/stretchr/testify/assert"
)

func TestOrderedSet_Insert(t *testing.T) {
	t.Run("items keep insertion order", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")

		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("duplicate insert does not reorder", func(t *testing.T) {
		s := set.NewOrderedSet("foo", "bar", "baz")

		assert.False(t, s.Insert("foo"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})
}

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewOrderedSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("bar"))
		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.NewOrderedSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("foo"))
		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
	})

	t.Run("remove existing item from the end", func(t *testing.T) {
		s := set.NewOrderedSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("123"))
		assert.False(t, s.Has("123"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("remove non existing item", func(t *testing.T) {
		s := set.NewOrderedSet("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestOrderedSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewOrderedSet(3)
		s2 := set.NewOrderedSet(9)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}

func TestOrderedSet_InsertSlice(t *testing.T) {
	t.Run("set and slice with single elements", func(t *testing.T) {
		s1 := set.NewOrderedSet(3)

		assert.True(t, s1.InsertSlice([]int{9}))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}

func TestOrderedSet_Clear(t *testing.T) {
	t.Run("cleared set is empty and reusable", func(t *testing.T) {
		s := set.NewOrderedSet("foo", "bar")
		s.Clear()

		assert.Equal(t, 0, s.Len())

		s.Insert("baz")
		assert.Equal(t, []string{"baz"}, s.Items())
	})
}
