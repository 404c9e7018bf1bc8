// Package encio provides streams which transform data on the fly as it is
// written to, or read from, an underlying stream.
//
// The transformation itself is supplied by the caller as an Encoder or
// Decoder, which encio never inspects; encio only manages buffering and the
// order in which byte ranges are handed to the capability.
package encio

import "io"

// An Encoder transforms src and writes the result to w.
// Every byte of src must be accounted for by the time Encode returns nil.
// Errors from w, and errors in the transformation itself, are returned
// unchanged.
type Encoder interface {
	Encode(w io.Writer, src []byte) error
}

// A Decoder reads from r and fills dst with up to len(dst) decoded bytes,
// returning the number of bytes produced.
// Decoders follow the io.Reader error conventions: io.EOF when the source
// is exhausted, and n > 0 alongside a nil error whenever progress was made.
type Decoder interface {
	Decode(r io.Reader, dst []byte) (int, error)
}

// EncoderFunc allows a function to be used as an Encoder.
type EncoderFunc func(w io.Writer, src []byte) error

func (fn EncoderFunc) Encode(w io.Writer, src []byte) error {
	return fn(w, src)
}

// DecoderFunc allows a function to be used as a Decoder.
type DecoderFunc func(r io.Reader, dst []byte) (int, error)

func (fn DecoderFunc) Decode(r io.Reader, dst []byte) (int, error) {
	return fn(r, dst)
}

// Flusher is implemented by sinks which buffer, and can be told to write
// everything out.
type Flusher interface {
	Flush() error
}
