package huffman

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// Magic identifies a packed file.
const Magic = "HUF1"

// Version is the only packed format version understood by this package.
const Version = 1

var (
	// ErrBadMagic is returned when a packed stream does not begin with
	// Magic.
	ErrBadMagic = errors.New("not a packed Huffman stream")

	// ErrBadVersion is returned for a packed stream of an unknown version.
	ErrBadVersion = errors.New("unsupported packed Huffman version")

	// ErrCorrupt is returned when a packed stream is malformed or
	// truncated.
	ErrCorrupt = errors.New("corrupt packed Huffman stream")

	// ErrChecksum is returned when the unpacked data does not match the
	// length or CRC-32 recorded in the header.
	ErrChecksum = errors.New("packed Huffman checksum mismatch")
)

// Header is the fixed part of a packed stream.
//
// On the wire, all integers are little-endian:
//
//     magic    [4]byte  "HUF1"
//     version  uint8    1
//     length   uint64   number of bytes in the original data
//     crc      uint32   CRC-32 (IEEE) of the original data
//     used     uint16   number of Symbols with a non-zero bit length
//     entries  used × { symbol uint16, size uint8 }
//
// The entries are followed by the packed codes, least significant bit
// first, ending with the code for EOF and zero-padded to a whole byte.
//
type Header struct {
	Length uint64
	CRC    uint32
	Sizes  []byte // bit length for each Symbol in [0, NumSymbols)
}

// WriteTo writes the header in wire format.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(Version)

	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], h.Length)
	buf.Write(scratch[:8])
	binary.LittleEndian.PutUint32(scratch[:], h.CRC)
	buf.Write(scratch[:4])

	var used uint16
	for _, size := range h.Sizes {
		if size != 0 {
			used++
		}
	}
	binary.LittleEndian.PutUint16(scratch[:], used)
	buf.Write(scratch[:2])

	for symbol, size := range h.Sizes {
		if size == 0 {
			continue
		}
		binary.LittleEndian.PutUint16(scratch[:], uint16(symbol))
		buf.Write(scratch[:2])
		buf.WriteByte(size)
	}
	return buf.WriteTo(w)
}

// ReadHeader reads and validates a header written by Header.WriteTo.
func ReadHeader(r io.Reader) (Header, error) {
	var fixed [4 + 1 + 8 + 4 + 2]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: short header", ErrCorrupt)
		}
		return Header{}, err
	}
	if string(fixed[0:4]) != Magic {
		return Header{}, ErrBadMagic
	}
	if fixed[4] != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrBadVersion, fixed[4])
	}

	h := Header{
		Length: binary.LittleEndian.Uint64(fixed[5:13]),
		CRC:    binary.LittleEndian.Uint32(fixed[13:17]),
		Sizes:  make([]byte, NumSymbols),
	}
	used := int(binary.LittleEndian.Uint16(fixed[17:19]))
	if used > NumSymbols {
		return Header{}, fmt.Errorf("%w: %d symbols in a %d-symbol alphabet", ErrCorrupt, used, NumSymbols)
	}

	entries := make([]byte, 3*used)
	if _, err := io.ReadFull(r, entries); err != nil {
		return Header{}, fmt.Errorf("%w: short symbol table: %v", ErrCorrupt, err)
	}
	for i := 0; i < used; i++ {
		symbol := int(binary.LittleEndian.Uint16(entries[3*i:]))
		size := entries[3*i+2]
		switch {
		case symbol >= NumSymbols:
			return Header{}, fmt.Errorf("%w: symbol %d out of range", ErrCorrupt, symbol)
		case size == 0 || size > MaxBitsPerCode:
			return Header{}, fmt.Errorf("%w: symbol %d has bit length %d", ErrCorrupt, symbol, size)
		case h.Sizes[symbol] != 0:
			return Header{}, fmt.Errorf("%w: symbol %d listed twice", ErrCorrupt, symbol)
		}
		h.Sizes[symbol] = size
	}
	if h.Sizes[EOF] == 0 {
		return Header{}, fmt.Errorf("%w: no code for EOF", ErrCorrupt)
	}
	return h, nil
}

// Pack writes the header and then every byte of r encoded with enc, followed
// by the code for EOF.  length and crc describe the contents of r and are
// recorded in the header for Unpack to verify.  It returns the number of
// bytes written to w.
func Pack(w io.Writer, r io.Reader, enc *Encoder, length uint64, crc uint32) (int64, error) {
	if enc.MaxSymbol() != EOF || enc.Encode(EOF).Size == 0 {
		return 0, fmt.Errorf("encoder is not for the byte alphabet: MaxSymbol %d, want %d with a code for EOF", enc.MaxSymbol(), EOF)
	}

	hdr := Header{Length: length, CRC: crc, Sizes: enc.SizeBySymbol()}
	total, err := hdr.WriteTo(w)
	if err != nil {
		return total, err
	}

	// Reverse once up front: Encoder codes are most significant bit
	// first, the stream is least significant bit first.
	var table [NumSymbols]Code
	for symbol := range table {
		table[symbol] = enc.Encode(Symbol(symbol)).Reversed()
	}

	bw := newBitWriter(w, 64*1024)
	br := bufio.NewReader(r)
	buf := make([]byte, 64*1024)
	for {
		n, readErr := br.Read(buf)
		for _, b := range buf[:n] {
			hc := table[b]
			if hc.Size == 0 {
				return total + bw.BytesWritten(), fmt.Errorf("byte %#02x has no code", b)
			}
			if err := bw.WriteCode(hc); err != nil {
				return total + bw.BytesWritten(), err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return total + bw.BytesWritten(), readErr
		}
	}

	if err := bw.WriteCode(table[EOF]); err != nil {
		return total + bw.BytesWritten(), err
	}
	err = bw.Flush()
	return total + bw.BytesWritten(), err
}

// Unpack reads a stream written by Pack and writes the original bytes to w.
// It returns the number of bytes written.
func Unpack(w io.Writer, r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	hdr, err := ReadHeader(br)
	if err != nil {
		return 0, err
	}

	var d Decoder
	if err := d.Init(hdr.Sizes); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	crc := crc32.NewIEEE()
	bw := bufio.NewWriterSize(io.MultiWriter(w, crc), 64*1024)
	bits := newBitReader(br)

	var n int64
	for {
		symbol, err := d.readSymbol(bits)
		if err != nil {
			return n, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if symbol == EOF {
			break
		}
		if uint64(n) >= hdr.Length {
			if err := bw.Flush(); err != nil {
				return n, err
			}
			return n, fmt.Errorf("%w: stream continues past %d bytes", ErrChecksum, hdr.Length)
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return n, err
		}
		n++
	}

	if err := bw.Flush(); err != nil {
		return n, err
	}
	if uint64(n) != hdr.Length {
		return n, fmt.Errorf("%w: got %d bytes, expected %d", ErrChecksum, n, hdr.Length)
	}
	if sum := crc.Sum32(); sum != hdr.CRC {
		return n, fmt.Errorf("%w: got CRC %08x, expected %08x", ErrChecksum, sum, hdr.CRC)
	}
	return n, nil
}
