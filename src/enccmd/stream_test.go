package enccmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gotvc/encio/src/codecs/snap"
	"github.com/gotvc/encio/src/encio"
	"github.com/gotvc/encio/src/internal/testutil"
)

func TestRoundTripLargeBuffer(t *testing.T) {
	// an accumulation buffer above the default decode buffer drains frames
	// which only a matching decode buffer can hold.
	const bufSize = 1 << 17
	data := testutil.RandBytes(t, 1<<17)
	comp := &bytes.Buffer{}
	_, err := encodeStream(snap.New(), bytes.NewReader(data), comp, encio.WithBufferSize(bufSize))
	require.NoError(t, err)

	_, err = decodeStream(snap.New(), bytes.NewReader(comp.Bytes()), io.Discard, decodeBufSize)
	require.Error(t, err)

	out := &bytes.Buffer{}
	_, err = decodeStream(snap.New(), bytes.NewReader(comp.Bytes()), out, bufSize)
	require.NoError(t, err)
	require.Equal(t, data, out.Bytes())
}

func TestRoundTripDefaults(t *testing.T) {
	data := testutil.RandBytes(t, 100_000)
	comp := &bytes.Buffer{}
	_, err := encodeStream(snap.New(), bytes.NewReader(data), comp)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	_, err = decodeStream(snap.New(), bytes.NewReader(comp.Bytes()), out, decodeBufSize)
	require.NoError(t, err)
	require.Equal(t, data, out.Bytes())
}

func TestOutputNames(t *testing.T) {
	outs, err := outputNames([]string{"a.enc", "dir/b.bin.enc"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "dir/b.bin"}, outs)

	// a bad name anywhere in the list fails before any work starts
	_, err = outputNames([]string{"a.enc", "b.bin"})
	require.Error(t, err)
}
