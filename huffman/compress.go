package huffman

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
)

// Options tunes Compress.
type Options struct {
	// TempDir is where Compress spools input that cannot be rewound.
	// Empty means os.TempDir().
	TempDir string
}

// Option modifies Options.
type Option func(*Options)

// WithTempDir sets Options.TempDir.
func WithTempDir(dir string) Option {
	return func(o *Options) { o.TempDir = dir }
}

// Report describes the code chosen for one input.
type Report struct {
	Frequencies Frequencies
	Encoder     *Encoder
	InputBytes  int64
	OutputBytes int64
	CRC         uint32
}

// Analyze reads src to the end and returns the Report that Compress would
// produce for it, without packing anything.
func Analyze(src io.Reader) (*Report, error) {
	crc := crc32.NewIEEE()
	freqs, n, err := CountFrequencies(io.TeeReader(src, crc))
	if err != nil {
		return nil, err
	}
	return newReport(freqs, n, crc.Sum32()), nil
}

func newReport(freqs Frequencies, n int64, crc uint32) *Report {
	return &Report{
		Frequencies: freqs,
		Encoder:     NewEncoder(freqs.CodeSizes()),
		InputBytes:  n,
		CRC:         crc,
	}
}

// Compress encodes src into dst.
//
// The input is read twice: once to count byte frequencies, once to pack.  If
// src can seek, it is rewound to its starting offset; otherwise it is copied
// into a temporary file during the first pass.
//
func Compress(dst io.Writer, src io.Reader, opts ...Option) (report *Report, err error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	// Pipes and terminals are *os.File too, but fail to seek.
	var start int64
	input, ok := src.(io.ReadSeeker)
	if ok {
		start, err = input.Seek(0, io.SeekCurrent)
		ok = (err == nil)
	}
	if !ok {
		tmp, createErr := os.CreateTemp(o.TempDir, "huffman-spool-*")
		if createErr != nil {
			return nil, fmt.Errorf("failed to create spool file: %w", createErr)
		}
		defer func() { multierr.AppendInto(&err, os.Remove(tmp.Name())) }()
		defer multierr.AppendInvoke(&err, multierr.Close(tmp))

		src = io.TeeReader(src, tmp)
		input = tmp
		start = 0
	}

	report, err = Analyze(src)
	if err != nil {
		return nil, fmt.Errorf("failed to count frequencies: %w", err)
	}

	if _, err = input.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}

	report.OutputBytes, err = Pack(dst, io.LimitReader(input, report.InputBytes), report.Encoder, uint64(report.InputBytes), report.CRC)
	if err != nil {
		return nil, fmt.Errorf("failed to pack: %w", err)
	}
	return report, nil
}

// Decompress decodes a stream written by Compress.  It returns the number
// of bytes written to dst.
func Decompress(dst io.Writer, src io.Reader) (int64, error) {
	return Unpack(dst, src)
}

// TotalBits returns the number of bits needed to encode the input, not
// counting the header, EOF, or padding.
func (r *Report) TotalBits() uint64 {
	var sum uint64
	for symbol := Symbol(0); symbol < EOF; symbol++ {
		sum += r.Frequencies[symbol] * uint64(r.Encoder.Encode(symbol).Size)
	}
	return sum
}

// CodeEntry is one row of Report.Table.
type CodeEntry struct {
	Symbol int    `json:"symbol" yaml:"symbol"`
	Label  string `json:"label" yaml:"label"`
	Count  uint64 `json:"count" yaml:"count"`
	Size   int    `json:"size" yaml:"size"`
	Code   string `json:"code" yaml:"code"`
}

// Table lists every Symbol that has a code, in Symbol order.
func (r *Report) Table() []CodeEntry {
	var out []CodeEntry
	for symbol := Symbol(0); symbol <= EOF; symbol++ {
		hc := r.Encoder.Encode(symbol)
		if hc.Size == 0 {
			continue
		}
		code, _ := strconv.Unquote(hc.String())
		out = append(out, CodeEntry{
			Symbol: int(symbol),
			Label:  SymbolLabel(symbol),
			Count:  r.Frequencies[symbol],
			Size:   int(hc.Size),
			Code:   code,
		})
	}
	return out
}

// WriteTo writes one line per byte value that occurs in the input, giving
// its count, its code length, and the bits it contributes, e.g.
//
//     'a': 12 x 3 bits = 36 bits
//
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for symbol := Symbol(0); symbol < EOF; symbol++ {
		count := r.Frequencies[symbol]
		if count == 0 {
			continue
		}
		size := uint64(r.Encoder.Encode(symbol).Size)
		fmt.Fprintf(&buf, "%s: %d x %d bits = %d bits\n", SymbolLabel(symbol), count, size, count*size)
	}
	return buf.WriteTo(w)
}

// SymbolLabel returns a printable name for a Symbol of the byte alphabet:
// printable ASCII characters in single quotes, other bytes as three octal
// digits, and "EOF".
func SymbolLabel(symbol Symbol) string {
	switch {
	case symbol == EOF:
		return "EOF"
	case symbol >= 0x20 && symbol < 0x7f:
		return "'" + string(rune(symbol)) + "'"
	default:
		return fmt.Sprintf("%03o", int(symbol))
	}
}
