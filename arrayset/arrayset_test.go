package arrayset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/adt"
)

func TestSet_AddFindRemove(t *testing.T) {
	s := New[string](4)

	require.True(t, s.Add("alpha"))
	require.True(t, s.Add("beta"))
	require.False(t, s.Add("alpha"), "duplicate must be rejected")
	assert.Equal(t, 2, s.Len())

	got, ok := s.Find("beta")
	require.True(t, ok)
	assert.Equal(t, "beta", got)

	_, ok = s.Find("gamma")
	assert.False(t, ok)

	assert.False(t, s.Remove("gamma"))
	assert.True(t, s.Remove("alpha"))
	assert.Equal(t, []string{"beta"}, s.Elements())
}

func TestSet_RemoveMovesLastIntoHole(t *testing.T) {
	s := New[int](8)
	for _, n := range []int{1, 2, 3, 4} {
		s.Add(n)
	}
	s.Remove(2)
	assert.Equal(t, []int{1, 4, 3}, s.Elements())
}

func TestSet_Full(t *testing.T) {
	s := New[int](2)
	s.Add(1)
	s.Add(2)
	assert.True(t, adt.IsFull[int](s))
	assert.False(t, s.Add(2), "present elements are not an overflow")
	assert.False(t, s.Add(3))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Find(3)
	assert.False(t, ok)
}

func TestSet_ElementsIsCopy(t *testing.T) {
	s := New[string](2)
	s.Add("x")
	out := s.Elements()
	out[0] = "y"
	_, ok := s.Find("x")
	assert.True(t, ok)
}

func TestNew_RejectsZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
}
