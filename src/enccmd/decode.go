package enccmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"github.com/gotvc/encio/src/encio"
)

// decodeBufSize is the default decode buffer size.  It must cover the
// largest range the encode side handed to its codec in one call; a stream
// encoded with --buf above this needs the same --buf on decode.
const decodeBufSize = 1 << 16

var decodeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "decodes files, or stdin when no paths are given",
	},
	Flags: map[string]star.Flag{
		"codec": codecParam,
		"key":   keyParam,
		"buf":   bufSizeParam,
	},
	Pos: []star.Positional{inPathsParam},
	F: func(c star.Context) error {
		ctx := c.Context
		codecName, _ := codecParam.LoadOpt(c)
		key, _ := keyParam.LoadOpt(c)
		bufSize, ok := bufSizeParam.LoadOpt(c)
		if !ok {
			bufSize = decodeBufSize
		}
		paths := inPathsParam.Load(c)
		if len(paths) == 0 {
			dec, err := newCodec(codecName, key)
			if err != nil {
				return err
			}
			_, err = decodeStream(dec, os.Stdin, c.StdOut, bufSize)
			return err
		}
		outs, err := outputNames(paths)
		if err != nil {
			return err
		}
		start := time.Now()
		var total atomic.Int64
		eg := errgroup.Group{}
		for i, p := range paths {
			out := outs[i]
			eg.Go(func() error {
				dec, err := newCodec(codecName, key)
				if err != nil {
					return err
				}
				n, err := decodeFile(dec, p, out, bufSize)
				if err != nil {
					return err
				}
				total.Add(n)
				logctx.Infof(ctx, "decoded %s -> %s", p, out)
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

// outputNames strips encSuffix from every path.
// All paths are checked up front, so a bad name is reported before any
// decoding starts.
func outputNames(paths []string) ([]string, error) {
	outs := make([]string, len(paths))
	for i, p := range paths {
		out, ok := strings.CutSuffix(p, encSuffix)
		if !ok {
			return nil, errNotEncoded(p)
		}
		outs[i] = out
	}
	return outs, nil
}

func decodeFile(dec encio.Decoder, in, out string, bufSize int) (int64, error) {
	f, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	outf, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	defer outf.Close()
	return decodeStream(dec, f, outf, bufSize)
}

// decodeStream copies r through a decoding reader onto w,
// returning the number of plaintext bytes produced.
func decodeStream(dec encio.Decoder, r io.Reader, w io.Writer, bufSize int) (int64, error) {
	dr := encio.NewReader(r, dec, encio.WithReadBufferSize(bufSize))
	return io.Copy(w, dr)
}

func errNotEncoded(p string) error {
	return fmt.Errorf("%s does not end in %s, cannot pick an output name", p, encSuffix)
}
