package snap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gotvc/encio/src/encio"
	"github.com/gotvc/encio/src/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	for _, data := range [][]byte{
		testutil.RandBytes(t, 1<<16),
		bytes.Repeat([]byte("compress me "), 5000),
		{},
		{0x42},
	} {
		comp := &bytes.Buffer{}
		w := encio.NewWriter(comp, New())
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		r := encio.NewReader(bytes.NewReader(comp.Bytes()), New(), encio.WithReadBufferSize(1<<16))
		testutil.StreamsEqual(t, bytes.NewReader(data), r)
	}
}

func TestCompresses(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 1<<16)
	comp := &bytes.Buffer{}
	w := encio.NewWriter(comp, New())
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.Less(t, comp.Len(), len(data)/10)
}

func TestFrameLargerThanBuffer(t *testing.T) {
	data := testutil.RandBytes(t, 1<<12)
	comp := &bytes.Buffer{}
	w := encio.NewWriter(comp, New())
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	small := make([]byte, 128)
	_, err = New().Decode(bytes.NewReader(comp.Bytes()), small)
	require.Error(t, err)
}

func TestFramesPerEncode(t *testing.T) {
	// each buffered drain becomes one self contained frame
	data := testutil.RandBytes(t, 300)
	comp := &bytes.Buffer{}
	w := encio.NewWriter(comp, New(), encio.WithBufferSize(128), encio.WithFlushOnWrite())
	for i := 0; i < 3; i++ {
		_, err := w.Write(data[i*100 : (i+1)*100])
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())

	dec := New()
	r := bytes.NewReader(comp.Bytes())
	buf := make([]byte, 1024)
	for i := 0; i < 3; i++ {
		n, err := dec.Decode(r, buf)
		require.NoError(t, err)
		require.Equal(t, data[i*100:(i+1)*100], buf[:n])
	}
}
