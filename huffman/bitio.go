package huffman

import (
	"bufio"
	"io"
)

// bitWriter packs bits into bytes least significant bit first, the same
// order DEFLATE uses.
type bitWriter struct {
	w     *bufio.Writer
	acc   uint64
	nbits uint
	n     int64
}

func newBitWriter(w io.Writer, size int) *bitWriter {
	return &bitWriter{w: bufio.NewWriterSize(w, size)}
}

// WriteCode writes the bits of hc, first bit first.  hc must be in
// transmission order, i.e. as returned by Code.Reversed for an Encoder's
// codes.
func (bw *bitWriter) WriteCode(hc Code) error {
	bw.acc |= uint64(hc.Bits) << bw.nbits
	bw.nbits += uint(hc.Size)
	for bw.nbits >= 8 {
		if err := bw.w.WriteByte(byte(bw.acc)); err != nil {
			return err
		}
		bw.n++
		bw.acc >>= 8
		bw.nbits -= 8
	}
	return nil
}

// Flush pads the final partial byte with zero bits and flushes the buffer.
func (bw *bitWriter) Flush() error {
	if bw.nbits > 0 {
		if err := bw.w.WriteByte(byte(bw.acc)); err != nil {
			return err
		}
		bw.n++
		bw.acc = 0
		bw.nbits = 0
	}
	return bw.w.Flush()
}

// BytesWritten returns the number of bytes produced so far.
func (bw *bitWriter) BytesWritten() int64 {
	return bw.n
}

// bitReader is the inverse of bitWriter.
type bitReader struct {
	r     io.ByteReader
	acc   byte
	nbits uint
}

func newBitReader(r io.ByteReader) *bitReader {
	return &bitReader{r: r}
}

// ReadBit returns the next bit.  It returns io.ErrUnexpectedEOF if the
// underlying reader is exhausted.
func (br *bitReader) ReadBit() (uint32, error) {
	if br.nbits == 0 {
		b, err := br.r.ReadByte()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}
		br.acc = b
		br.nbits = 8
	}
	bit := uint32(br.acc & 1)
	br.acc >>= 1
	br.nbits--
	return bit, nil
}
