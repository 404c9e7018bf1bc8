// Package raw provides the identity codec: bytes pass through unchanged.
package raw

import "io"

type Codec struct{}

func New() Codec {
	return Codec{}
}

func (Codec) Encode(w io.Writer, src []byte) error {
	_, err := w.Write(src)
	return err
}

func (Codec) Decode(r io.Reader, dst []byte) (int, error) {
	return r.Read(dst)
}
