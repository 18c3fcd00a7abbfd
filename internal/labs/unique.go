package labs

import (
	"fmt"
	"io"
	"slices"

	"github.com/chronos-tachyon/adt"
)

// UniqueResult summarizes a Unique run.
type UniqueResult struct {
	Total    int
	Distinct int
}

// Unique adds every word of r to set and reports how many words were read
// and how many of them were distinct.  It fails with adt.ErrFull if set is
// bounded and runs out of room.
func Unique(set adt.Set[string], r io.Reader) (UniqueResult, error) {
	var res UniqueResult
	err := ScanWords(r, func(word string) error {
		res.Total++
		if _, found := set.Find(word); found {
			return nil
		}
		if adt.IsFull(set) {
			return fmt.Errorf("%w: cannot add %q after %d distinct words", adt.ErrFull, word, set.Len())
		}
		set.Add(word)
		return nil
	})
	res.Distinct = set.Len()
	return res, err
}

// Parity toggles each word of r in set: a word seen for the first time is
// added and a word seen again is removed.  What remains, returned sorted,
// are the words that occur an odd number of times.
func Parity(set adt.Set[string], r io.Reader) ([]string, error) {
	err := ScanWords(r, func(word string) error {
		if set.Remove(word) {
			return nil
		}
		if adt.IsFull(set) {
			return fmt.Errorf("%w: cannot add %q after %d words", adt.ErrFull, word, set.Len())
		}
		set.Add(word)
		return nil
	})
	if err != nil {
		return nil, err
	}
	words := set.Elements()
	slices.Sort(words)
	return words, nil
}
