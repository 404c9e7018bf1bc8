// Package packbits implements the PackBits run-length encoding.
//
// The output is a sequence of segments: a header byte h followed by either
// h+1 literal bytes (0 <= h <= 127), or one byte repeated 257-h times
// (129 <= h <= 255).  128 is a no-op header and is never emitted.
package packbits

import (
	"fmt"
	"io"
)

const maxSeg = 128

type Codec struct {
	frame []byte

	// decode state carried across calls, for runs and literal segments
	// which straddle a dst boundary.
	runByte byte
	runLeft int
	litLeft int
}

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Encode(w io.Writer, src []byte) error {
	c.frame = appendPacked(c.frame[:0], src)
	_, err := w.Write(c.frame)
	return err
}

func (c *Codec) Decode(r io.Reader, dst []byte) (int, error) {
	var n int
	for n < len(dst) {
		switch {
		case c.runLeft > 0:
			for n < len(dst) && c.runLeft > 0 {
				dst[n] = c.runByte
				n++
				c.runLeft--
			}
		case c.litLeft > 0:
			m := c.litLeft
			if rem := len(dst) - n; m > rem {
				m = rem
			}
			if _, err := io.ReadFull(r, dst[n:n+m]); err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return n, err
			}
			n += m
			c.litLeft -= m
		default:
			h, err := readByte(r)
			if err != nil {
				if err == io.EOF && n > 0 {
					return n, nil
				}
				return n, err
			}
			switch {
			case h <= 127:
				c.litLeft = int(h) + 1
			case h == 128:
				// no-op header
			default:
				c.runLeft = 257 - int(h)
				c.runByte, err = readByte(r)
				if err != nil {
					if err == io.EOF {
						err = io.ErrUnexpectedEOF
					}
					return n, err
				}
			}
		}
	}
	return n, nil
}

// appendPacked appends the PackBits encoding of src to out.
func appendPacked(out []byte, src []byte) []byte {
	for i := 0; i < len(src); {
		run := 1
		for i+run < len(src) && run < maxSeg && src[i+run] == src[i] {
			run++
		}
		if run > 1 {
			out = append(out, byte(257-run), src[i])
			i += run
			continue
		}
		lit := 1
		for i+lit < len(src) && lit < maxSeg {
			if i+lit+1 < len(src) && src[i+lit] == src[i+lit+1] {
				break
			}
			lit++
		}
		out = append(out, byte(lit-1))
		out = append(out, src[i:i+lit]...)
		i += lit
	}
	return out
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var buf [1]byte
	n, err := r.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil {
		err = fmt.Errorf("packbits: short read")
	}
	return 0, err
}
