package chacha

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gotvc/encio/src/encio"
	"github.com/gotvc/encio/src/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	data := testutil.RandBytes(t, 1<<16)
	key := DeriveKey([]byte("test secret"))

	ctext := &bytes.Buffer{}
	w := encio.NewWriter(ctext, NewStream(&key))
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	require.Equal(t, len(data), ctext.Len())
	require.NotEqual(t, data, ctext.Bytes())

	r := encio.NewReader(bytes.NewReader(ctext.Bytes()), NewStream(&key))
	testutil.StreamsEqual(t, bytes.NewReader(data), r)
}

func TestKeystreamContinuity(t *testing.T) {
	// the same plaintext must produce the same ciphertext no matter how
	// the writes were split.
	data := testutil.RandBytes(t, 4096)
	key := DeriveKey([]byte("test secret"))

	var ctexts [][]byte
	for _, splits := range []int{1, 7, 512} {
		buf := &bytes.Buffer{}
		w := encio.NewWriter(buf, NewStream(&key), encio.WithBufferSize(64))
		for i := 0; i < len(data); i += splits {
			end := i + splits
			if end > len(data) {
				end = len(data)
			}
			_, err := w.Write(data[i:end])
			require.NoError(t, err)
		}
		require.NoError(t, w.Flush())
		ctexts = append(ctexts, buf.Bytes())
	}
	require.Equal(t, ctexts[0], ctexts[1])
	require.Equal(t, ctexts[0], ctexts[2])
}

func TestDeriveKey(t *testing.T) {
	k1 := DeriveKey([]byte("a"))
	k2 := DeriveKey([]byte("a"))
	k3 := DeriveKey([]byte("b"))
	require.Equal(t, k1, k2)
	require.NotEqual(t, k1, k3)
}

func TestNilKeyPanics(t *testing.T) {
	require.Panics(t, func() {
		NewStream(nil)
	})
}
