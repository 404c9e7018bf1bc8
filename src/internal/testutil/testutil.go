package testutil

import (
	"bufio"
	"context"
	"io"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// RandBytes returns n pseudorandom bytes from a seed derived from n.
func RandBytes(t testing.TB, n int) []byte {
	rng := mrand.New(mrand.NewSource(int64(n)))
	buf := make([]byte, n)
	_, err := rng.Read(buf)
	require.NoError(t, err)
	return buf
}

// StreamsEqual fails the test if the two readers do not produce identical
// byte streams.
func StreamsEqual(t testing.TB, expected, actual io.Reader) {
	t.Helper()
	br1 := bufio.NewReaderSize(expected, 1<<20)
	br2 := bufio.NewReaderSize(actual, 1<<20)
	for i := 0; ; i++ {
		b1, err1 := br1.ReadByte()
		if err1 != nil && err1 != io.EOF {
			require.NoError(t, err1)
		}
		b2, err2 := br2.ReadByte()
		if err2 != nil && err2 != io.EOF {
			require.NoError(t, err2)
		}
		if err1 != err2 {
			if err1 == io.EOF {
				t.Fatalf("stream is longer than expected. len=%d", i)
			} else if err2 == io.EOF {
				t.Fatalf("stream is shorter than expected. len=%d", i)
			}
		}
		// require.Equal uses reflection, so only call it on a mismatch.
		if b1 != b2 {
			require.Equal(t, b1, b2, "bytes unequal at %d: %x vs %x", i, b1, b2)
		}
		if err1 == io.EOF {
			break
		}
	}
}
