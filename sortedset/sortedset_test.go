package sortedset

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_KeepsOrder(t *testing.T) {
	s := New[string](16)
	for _, w := range strings.Fields("pear apple fig banana apple cherry") {
		s.Add(w)
	}

	expect := []string{"apple", "banana", "cherry", "fig", "pear"}
	if diff := cmp.Diff(expect, s.Elements()); diff != "" {
		t.Errorf("wrong elements (-expect +actual):\n%s", diff)
	}

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, "apple", lo)
	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, "pear", hi)
}

func TestSet_Remove(t *testing.T) {
	s := New[int](8)
	for _, n := range []int{5, 1, 3, 7} {
		require.True(t, s.Add(n))
	}
	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.Equal(t, []int{1, 5, 7}, s.Elements())
	assert.True(t, s.Remove(1))
	assert.True(t, s.Remove(7))
	assert.Equal(t, []int{5}, s.Elements())
}

func TestSet_Empty(t *testing.T) {
	s := New[int](1)
	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
	_, ok = s.Find(0)
	assert.False(t, ok)
	assert.False(t, s.Remove(0))
}

func TestNewFunc_CaseInsensitive(t *testing.T) {
	s := NewFunc(4, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.True(t, s.Add("Go"))
	require.False(t, s.Add("GO"))

	got, ok := s.Find("go")
	require.True(t, ok)
	assert.Equal(t, "Go", got, "Find returns the stored element")
}

func TestNewFunc_Preconditions(t *testing.T) {
	assert.Panics(t, func() { NewFunc[string](4, nil) })
	assert.Panics(t, func() { NewFunc(0, strings.Compare) })
}

func TestSet_Overflow(t *testing.T) {
	s := New[int](1)
	s.Add(1)
	assert.False(t, s.Add(2))
	assert.Equal(t, []int{1}, s.Elements())
}

func TestSet_MatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New[int](1000)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n := rng.Intn(2000)
		assert.Equal(t, !seen[n], s.Add(n))
		seen[n] = true
	}

	expect := make([]int, 0, len(seen))
	for n := range seen {
		expect = append(expect, n)
	}
	sort.Ints(expect)
	if diff := cmp.Diff(expect, s.Elements()); diff != "" {
		t.Errorf("wrong elements (-expect +actual):\n%s", diff)
	}
}
