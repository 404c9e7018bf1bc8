package encio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gotvc/encio/src/internal/testutil"
)

func TestReadAll(t *testing.T) {
	data := testutil.RandBytes(t, 10_000)
	r := NewReader(bytes.NewReader(data), passthrough(), WithReadBufferSize(256))
	testutil.StreamsEqual(t, bytes.NewReader(data), r)
}

func TestReadByte(t *testing.T) {
	data := []byte("hello world")
	r := NewReader(bytes.NewReader(data), passthrough(), WithReadBufferSize(4))
	var out []byte
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, c)
	}
	require.Equal(t, data, out)
}

func TestShortDecodes(t *testing.T) {
	// a decoder which produces at most 3 bytes per call must still yield
	// the whole stream.
	data := testutil.RandBytes(t, 1000)
	dec := DecoderFunc(func(r io.Reader, dst []byte) (int, error) {
		if len(dst) > 3 {
			dst = dst[:3]
		}
		return r.Read(dst)
	})
	r := NewReader(bytes.NewReader(data), dec)
	testutil.StreamsEqual(t, bytes.NewReader(data), r)
}

func TestBuffered(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abcd")), passthrough(), WithReadBufferSize(16))
	require.Equal(t, 0, r.Buffered())
	c, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)
	require.Equal(t, 3, r.Buffered())
}

func TestDeferredDecodeError(t *testing.T) {
	// an error delivered alongside bytes surfaces after those bytes drain,
	// without asking the decoder again.
	boom := errors.New("boom")
	var calls int
	dec := DecoderFunc(func(r io.Reader, dst []byte) (int, error) {
		calls++
		return copy(dst, "abc"), boom
	})
	r := NewReader(bytes.NewReader(nil), dec)

	buf := make([]byte, 8)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("abc"), buf[:n])

	_, err = r.Read(buf)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func passthrough() Decoder {
	return DecoderFunc(func(r io.Reader, dst []byte) (int, error) {
		return r.Read(dst)
	})
}
