// Package snap provides a snappy block codec.
//
// Each Encode call compresses its input as one snappy block and writes it
// with a 32-bit length prefix, so the stream is a sequence of self-contained
// frames.  Decode consumes exactly one frame per call and requires dst to
// hold the whole decompressed frame; readers should size their buffer to the
// largest range the writing side ever encoded at once.
package snap

import (
	"fmt"
	"io"

	"github.com/golang/snappy"

	"github.com/gotvc/encio/src/internal/sbe"
)

type Codec struct {
	frame []byte
	comp  []byte
}

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Encode(w io.Writer, src []byte) error {
	c.comp = snappy.Encode(c.comp[:cap(c.comp)], src)
	c.frame = sbe.AppendLP32(c.frame[:0], c.comp)
	_, err := w.Write(c.frame)
	return err
}

func (c *Codec) Decode(r io.Reader, dst []byte) (int, error) {
	if len(c.comp) < snappy.MaxEncodedLen(len(dst)) {
		c.comp = make([]byte, snappy.MaxEncodedLen(len(dst)))
	}
	n, err := sbe.ReadLP32From(r, c.comp)
	if err != nil {
		return 0, err
	}
	dlen, err := snappy.DecodedLen(c.comp[:n])
	if err != nil {
		return 0, err
	}
	if dlen > len(dst) {
		return 0, fmt.Errorf("snap: frame decodes to %d bytes, buffer is %d", dlen, len(dst))
	}
	if _, err := snappy.Decode(dst, c.comp[:n]); err != nil {
		return 0, err
	}
	return dlen, nil
}
