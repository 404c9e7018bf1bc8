package enccmd

import (
	"fmt"

	"go.brendoncarroll.net/star"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gotvc/encio/src/codecs/chacha"
	"github.com/gotvc/encio/src/codecs/packbits"
	"github.com/gotvc/encio/src/codecs/raw"
	"github.com/gotvc/encio/src/codecs/snap"
	"github.com/gotvc/encio/src/encio"
)

// codec is both directions of one transformation.
type codec interface {
	encio.Encoder
	encio.Decoder
}

var codecDocs = map[string]string{
	"raw":      "identity, bytes pass through unchanged",
	"snap":     "snappy compression, length prefixed frames",
	"packbits": "PackBits run-length encoding",
	"chacha":   "ChaCha20 stream cipher, requires --key",
}

// newCodec returns a fresh codec for name.
// Codecs can be stateful, so every stream needs its own.
func newCodec(name string, key string) (codec, error) {
	switch name {
	case "", "raw":
		return raw.New(), nil
	case "snap":
		return snap.New(), nil
	case "packbits":
		return packbits.New(), nil
	case "chacha":
		if key == "" {
			return nil, fmt.Errorf("the chacha codec requires --key")
		}
		k := chacha.DeriveKey([]byte(key))
		return chacha.NewStream(&k), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

var codecsCmd = star.Command{
	Metadata: star.Metadata{Short: "lists the available codecs"},
	F: func(c star.Context) error {
		names := maps.Keys(codecDocs)
		slices.Sort(names)
		for _, name := range names {
			c.Printf("%-10s %s\n", name, codecDocs[name])
		}
		return nil
	},
}
