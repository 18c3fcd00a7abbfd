// Package labs holds the drivers that exercise the containers: word
// counting over the SET implementations and radix sorting over the deque.
package labs

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/adt"
	"github.com/chronos-tachyon/adt/arrayset"
	"github.com/chronos-tachyon/adt/hashset"
	"github.com/chronos-tachyon/adt/sortedset"
)

// ErrUnknownImpl is returned by NewSet for an unrecognized implementation.
var ErrUnknownImpl = errors.New("unknown set implementation")

// NewSet returns an empty string set backed by impl, which is one of
// "array", "sorted", "open" or "chained", sized for maxElts words.
func NewSet(impl string, maxElts int) (adt.Set[string], error) {
	if maxElts <= 0 {
		return nil, fmt.Errorf("maxElts must be positive, got %d", maxElts)
	}
	switch impl {
	case "array":
		return arrayset.New[string](maxElts), nil
	case "sorted":
		return sortedset.New[string](maxElts), nil
	case "open":
		return hashset.NewOpen(maxElts, hashset.StrHash), nil
	case "chained":
		return hashset.NewChained(maxElts, hashset.StrHash), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImpl, impl)
	}
}
