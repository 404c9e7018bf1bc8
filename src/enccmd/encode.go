package enccmd

import (
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"github.com/gotvc/encio/src/encio"
	"github.com/gotvc/encio/src/internal/units"
)

// encSuffix is appended to encoded file names, and stripped by decode.
const encSuffix = ".enc"

var encodeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "encodes files, or stdin when no paths are given",
	},
	Flags: map[string]star.Flag{
		"codec":      codecParam,
		"key":        keyParam,
		"buf":        bufSizeParam,
		"flush-each": flushEachParam,
	},
	Pos: []star.Positional{inPathsParam},
	F: func(c star.Context) error {
		ctx := c.Context
		codecName, _ := codecParam.LoadOpt(c)
		key, _ := keyParam.LoadOpt(c)
		opts := writerOpts(c)
		paths := inPathsParam.Load(c)
		if len(paths) == 0 {
			enc, err := newCodec(codecName, key)
			if err != nil {
				return err
			}
			_, err = encodeStream(enc, os.Stdin, c.StdOut, opts...)
			return err
		}
		start := time.Now()
		var total atomic.Int64
		eg := errgroup.Group{}
		for _, p := range paths {
			eg.Go(func() error {
				enc, err := newCodec(codecName, key)
				if err != nil {
					return err
				}
				n, err := encodeFile(enc, p, p+encSuffix, opts)
				if err != nil {
					return err
				}
				total.Add(n)
				logctx.Infof(ctx, "encoded %s -> %s", p, p+encSuffix)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		printSummary(c, total.Load(), time.Since(start))
		return nil
	},
}

func encodeFile(enc encio.Encoder, in, out string, opts []encio.WriterOption) (int64, error) {
	f, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	outf, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	// encio.Writer closes outf on the success path.
	n, err := encodeStream(enc, f, outf, opts...)
	if err != nil {
		outf.Close()
		return n, err
	}
	return n, nil
}

// encodeStream copies r through an encoding writer onto w,
// returning the number of plaintext bytes consumed.
func encodeStream(enc encio.Encoder, r io.Reader, w io.Writer, opts ...encio.WriterOption) (int64, error) {
	ew := encio.NewWriter(w, enc, opts...)
	n, err := io.Copy(ew, r)
	if err != nil {
		return n, err
	}
	return n, ew.Close()
}

func writerOpts(c star.Context) (opts []encio.WriterOption) {
	if n, ok := bufSizeParam.LoadOpt(c); ok {
		opts = append(opts, encio.WithBufferSize(n))
	}
	if yes, _ := flushEachParam.LoadOpt(c); yes {
		opts = append(opts, encio.WithFlushOnWrite())
	}
	return opts
}

func printSummary(c star.Context, n int64, d time.Duration) {
	c.Printf("%s in %v (%s/s)\n",
		units.FmtFloat64(float64(n), units.Bytes),
		d.Round(time.Millisecond),
		units.FmtFloat64(float64(n)/d.Seconds(), units.Bytes),
	)
}

var inPathsParam = star.Repeated[string]{
	ID:       "paths",
	ShortDoc: "paths to the files to process",
	Parse:    star.ParseString,
}

var codecParam = star.Optional[string]{
	ID:       "codec",
	ShortDoc: "the codec to use (see `encio codecs`), raw is the default",
	Parse:    star.ParseString,
}

var keyParam = star.Optional[string]{
	ID:       "key",
	ShortDoc: "secret used to derive the cipher key",
	Parse:    star.ParseString,
}

var bufSizeParam = star.Optional[int]{
	ID:       "buf",
	ShortDoc: "the accumulation buffer size in bytes",
	Parse:    strconv.Atoi,
}

var flushEachParam = star.Optional[bool]{
	ID:       "flush-each",
	ShortDoc: "hand every write to the codec without buffering",
	Parse:    strconv.ParseBool,
}
