package labs

import (
	"bufio"
	"io"
)

// MaxWordLength bounds a single word; longer runs of non-space bytes are an
// error rather than an unbounded allocation.
const MaxWordLength = 64 * 1024

// ScanWords calls fn for every whitespace-separated word in r, stopping at
// the first error fn returns.
func ScanWords(r io.Reader, fn func(word string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxWordLength)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
