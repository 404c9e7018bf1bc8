package encio

import "io"

// DefaultBufferSize is the size of a Writer's accumulation buffer unless
// WithBufferSize is used.
const DefaultBufferSize = 1024

type WriterOption = func(*Writer)

// WithBufferSize sets the size of the accumulation buffer.
// The buffer is allocated once at construction and never grows.
func WithBufferSize(n int) WriterOption {
	if n <= 0 {
		panic("encio: buffer size must be > 0")
	}
	return func(w *Writer) {
		w.bufSize = n
	}
}

// WithFlushOnWrite causes Write to bypass the buffer entirely, handing every
// slice straight to the encoder.  WriteByte still accumulates.
func WithFlushOnWrite() WriterOption {
	return func(w *Writer) {
		w.flushOnWrite = true
	}
}

// Writer accumulates written bytes in a fixed size buffer and hands them to
// an Encoder, which produces the transformed output on the underlying
// writer.  The underlying writer is only ever written to by the encoder.
//
// Writer is not safe for concurrent use.
type Writer struct {
	out          io.Writer
	enc          Encoder
	flushOnWrite bool

	bufSize int
	buf     []byte
	n       int
}

// NewWriter creates a Writer which encodes everything written to it onto out.
func NewWriter(out io.Writer, enc Encoder, opts ...WriterOption) *Writer {
	if enc == nil {
		panic("encio: NewWriter called with nil encoder")
	}
	w := &Writer{
		out:     out,
		enc:     enc,
		bufSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.buf = make([]byte, w.bufSize)
	return w
}

// Write implements io.Writer.
// p is accumulated when it fits strictly within the remaining buffer space.
// Otherwise any accumulated bytes are encoded first, and then p is handed to
// the encoder whole; a slice too large for the buffer is never split.
func (w *Writer) Write(p []byte) (int, error) {
	if !w.flushOnWrite && w.n+len(p) < len(w.buf) {
		copy(w.buf[w.n:], p)
		w.n += len(p)
		return len(p), nil
	}
	if err := w.encodeBuffer(); err != nil {
		return 0, err
	}
	if err := w.enc.Encode(w.out, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
// Single bytes always accumulate, even on a Writer constructed with
// WithFlushOnWrite.
func (w *Writer) WriteByte(c byte) error {
	if w.n >= len(w.buf)-1 {
		if err := w.encodeBuffer(); err != nil {
			return err
		}
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

// Flush encodes any accumulated bytes, then flushes the underlying writer if
// it implements Flusher.  A failed encode leaves the accumulated bytes in
// place and the underlying writer unflushed.
func (w *Writer) Flush() error {
	if err := w.encodeBuffer(); err != nil {
		return err
	}
	if f, ok := w.out.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes the underlying writer if it implements
// io.Closer.  When Flush fails the underlying writer is left open, and
// Close can be called again once the cause has cleared.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if c, ok := w.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Buffered returns the number of accumulated bytes which have not yet been
// handed to the encoder.
func (w *Writer) Buffered() int {
	return w.n
}

// encodeBuffer hands the accumulated bytes to the encoder.
// The cursor only resets after the encoder returns nil, so a failed encode
// leaves the accumulated bytes intact for a retry.
func (w *Writer) encodeBuffer() error {
	if w.n == 0 {
		return nil
	}
	if err := w.enc.Encode(w.out, w.buf[:w.n]); err != nil {
		return err
	}
	w.n = 0
	return nil
}
