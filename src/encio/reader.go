package encio

import "io"

type ReaderOption = func(*Reader)

// WithReadBufferSize sets the size of the decode buffer.
// It must be at least as large as the biggest range the decoder can produce
// in one call; framed decoders document this as their maximum frame size.
func WithReadBufferSize(n int) ReaderOption {
	if n <= 0 {
		panic("encio: buffer size must be > 0")
	}
	return func(r *Reader) {
		r.bufSize = n
	}
}

// Reader is the decoding counterpart to Writer.  It refills a fixed size
// buffer from a Decoder and serves reads out of it.
//
// Reader is not safe for concurrent use.
type Reader struct {
	in  io.Reader
	dec Decoder

	bufSize  int
	buf      []byte
	pos, end int
	err      error
}

// NewReader creates a Reader which decodes everything read through it from in.
func NewReader(in io.Reader, dec Decoder, opts ...ReaderOption) *Reader {
	if dec == nil {
		panic("encio: NewReader called with nil decoder")
	}
	r := &Reader{
		in:      in,
		dec:     dec,
		bufSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.buf = make([]byte, r.bufSize)
	return r
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.pos == r.end {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(p, r.buf[r.pos:r.end])
	r.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos == r.end {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}
	c := r.buf[r.pos]
	r.pos++
	return c, nil
}

// Buffered returns the number of decoded bytes not yet read.
func (r *Reader) Buffered() int {
	return r.end - r.pos
}

func (r *Reader) fill() error {
	if r.err != nil {
		err := r.err
		r.err = nil
		return err
	}
	n, err := r.dec.Decode(r.in, r.buf)
	r.pos, r.end = 0, n
	if n > 0 {
		// Deliver what we have; the error surfaces once these bytes
		// drain, without calling the decoder again.
		r.err = err
		return nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return err
}
