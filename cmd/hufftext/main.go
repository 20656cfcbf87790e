// hufftext compresses and restores lowercase text with a static Huffman code.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/hufftext/internal/config"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (panic|fatal|error|warn|info|debug|trace), overrides the config file",
	}

	inputFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "File to process",
		Required: true,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file (default: compressed.txt or decompressed.txt)",
	}
	framedFlag = &cli.BoolFlag{
		Name:  "framed",
		Usage: "Use the self-describing frame format instead of the raw stream",
	}
	parallelFlag = &cli.BoolFlag{
		Name:  "parallel",
		Usage: "Use parallel compression (not implemented)",
	}
	compressionFlag = &cli.StringFlag{
		Name:  "compression",
		Usage: "Frame payload compression (none|zstd|s2|lz4), implies --framed",
	}
	s2LevelFlag = &cli.StringFlag{
		Name:  "s2-level",
		Usage: "S2 encoder level (default|better|best), used with --compression s2",
	}
	sizeFlag = &cli.Int64Flag{
		Name:  "size",
		Usage: "Number of raw stream bytes to decode (default: input file size)",
	}
)

// env is the state shared by all commands of one run.
type env struct {
	cfg    *config.Config
	log    *logrus.Logger
	report io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	e := &env{report: stderr}

	return &cli.App{
		Name:      "hufftext",
		Usage:     "static Huffman coder for lowercase text",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{configFlag, logLevelFlag},
		Before: func(ctx *cli.Context) error {
			return e.setup(ctx, stderr)
		},
		Action: interactiveAction(e),
		Commands: []*cli.Command{
			{
				Name:   "compress",
				Usage:  "Compress a text file",
				Flags:  []cli.Flag{inputFlag, outputFlag, framedFlag, parallelFlag, compressionFlag, s2LevelFlag},
				Action: compressAction(e),
			},
			{
				Name:   "decompress",
				Usage:  "Decompress a raw stream or a frame",
				Flags:  []cli.Flag{inputFlag, outputFlag, framedFlag, sizeFlag},
				Action: decompressAction(e),
			},
			{
				Name:  "dumpconfig",
				Usage: "Print the effective configuration as TOML",
				Action: func(ctx *cli.Context) error {
					return e.cfg.Dump(ctx.App.Writer)
				},
			},
		},
	}
}

// setup loads the configuration and configures the logger.
func (e *env) setup(ctx *cli.Context, stderr io.Writer) error {
	cfg, err := config.Load(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}

	if ctx.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logLevelFlag.Name)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: color.NoColor,
		FullTimestamp: true,
	})

	e.cfg = cfg
	e.log = log

	return nil
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgHiRed).Sprint("error: "), err)
		os.Exit(1)
	}
}
