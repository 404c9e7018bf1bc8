package enccmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// Main is the main function for the encio CLI.
func Main() {
	logger := func() *zap.Logger {
		log, _ := zap.NewProduction()
		return log
	}()
	ctx := context.Background()
	ctx = logctx.NewContext(ctx, logger)
	star.Main(rootCmd, star.MainBackground(ctx))
}

// Root returns the root command for the encio CLI.
func Root() star.Command {
	return rootCmd
}

var rootCmd = star.NewDir(
	star.Metadata{
		Short: "encio encodes and decodes byte streams",
	}, map[string]star.Command{
		"encode":  encodeCmd,
		"decode":  decodeCmd,
		"codecs":  codecsCmd,
		"version": versionCmd,
	},
)

var versionCmd = star.Command{
	Metadata: star.Metadata{Short: "prints version information"},
	F: func(c star.Context) error {
		binfo, ok := debug.ReadBuildInfo()
		if !ok {
			return fmt.Errorf("no build info")
		}
		c.Printf("GO VERSION:    %s\n", binfo.GoVersion)
		c.Printf("ENCIO VERSION: %s\n", binfo.Main.Version)
		for _, bs := range binfo.Settings {
			switch bs.Key {
			case "vcs.revision", "vcs.time", "vcs.modified":
				c.Printf("%s: %s\n", bs.Key, bs.Value)
			}
		}
		return nil
	},
}
