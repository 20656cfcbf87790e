package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/hufftext"
	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/frame"
)

// compressJob describes one compress run after flags and config are merged.
type compressJob struct {
	input       string
	output      string
	framed      bool
	compression format.CompressionType
	s2Level     compress.S2Level
	strategy    format.Strategy
}

// decompressJob describes one decompress run. A negative size means the input file size.
type decompressJob struct {
	input  string
	output string
	framed bool
	size   int64
}

func compressAction(e *env) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		job := compressJob{
			input:    ctx.String(inputFlag.Name),
			output:   e.cfg.Compress.Output,
			framed:   e.cfg.Compress.Framed,
			s2Level:  e.cfg.S2Level(),
			strategy: format.StrategySerial,
		}

		if e.cfg.Compress.Parallel || ctx.Bool(parallelFlag.Name) {
			job.strategy = format.StrategyParallel
		}
		if ctx.IsSet(outputFlag.Name) {
			job.output = ctx.String(outputFlag.Name)
		}
		if ctx.IsSet(framedFlag.Name) {
			job.framed = ctx.Bool(framedFlag.Name)
		}

		name := e.cfg.Compress.Compression
		if ctx.IsSet(compressionFlag.Name) {
			name = ctx.String(compressionFlag.Name)
		}
		compression, ok := format.ParseCompressionType(name)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
		}
		job.compression = compression
		if compression != format.CompressionNone {
			job.framed = true
		}

		if ctx.IsSet(s2LevelFlag.Name) {
			level, ok := compress.ParseS2Level(ctx.String(s2LevelFlag.Name))
			if !ok {
				return fmt.Errorf("%w: s2 level %q", errs.ErrInvalidCompression, ctx.String(s2LevelFlag.Name))
			}
			job.s2Level = level
		}

		return e.compress(job)
	}
}

func decompressAction(e *env) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		job := decompressJob{
			input:  ctx.String(inputFlag.Name),
			output: e.cfg.Decompress.Output,
			framed: e.cfg.Decompress.Framed,
			size:   -1,
		}

		if ctx.IsSet(outputFlag.Name) {
			job.output = ctx.String(outputFlag.Name)
		}
		if ctx.IsSet(framedFlag.Name) {
			job.framed = ctx.Bool(framedFlag.Name)
		}
		if ctx.IsSet(sizeFlag.Name) {
			job.size = ctx.Int64(sizeFlag.Name)
			if job.size < 0 {
				return fmt.Errorf("%w: --size %d", errs.ErrMissingSizeMetadata, job.size)
			}
		}

		return e.decompress(job)
	}
}

// interactiveAction asks for the file and the mode when no command is given.
func interactiveAction(e *env) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		in := bufio.NewReader(ctx.App.Reader)
		out := ctx.App.Writer

		input, err := prompt(in, out, "Name of the file to process >")
		if err != nil {
			return err
		}

		answer, err := prompt(in, out, "Type 0 to decompress or 1 to compress >")
		if err != nil {
			return err
		}
		mode, ok := format.ParseMode(answer)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrInvalidMode, answer)
		}

		if mode == format.ModeDecompress {
			return e.decompress(decompressJob{
				input:  input,
				output: e.cfg.Decompress.Output,
				framed: e.cfg.Decompress.Framed,
				size:   -1,
			})
		}

		answer, err = prompt(in, out, "Type 0 for serial compression or 1 for parallel compression >")
		if err != nil {
			return err
		}

		var strategy format.Strategy
		switch answer {
		case "0":
			strategy = format.StrategySerial
		case "1":
			strategy = format.StrategyParallel
		default:
			return fmt.Errorf("%w: strategy %q", errs.ErrInvalidMode, answer)
		}

		return e.compress(compressJob{
			input:       input,
			output:      e.cfg.Compress.Output,
			framed:      e.cfg.Compress.Framed || e.cfg.CompressionType() != format.CompressionNone,
			compression: e.cfg.CompressionType(),
			s2Level:     e.cfg.S2Level(),
			strategy:    strategy,
		})
	}
}

func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)

	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (e *env) buildTree() {
	start := time.Now()
	t := hufftext.DefaultTree()
	e.log.WithFields(logrus.Fields{
		"symbols": alphabet.Size,
		"nodes":   t.Len(),
		"maxLen":  hufftext.DefaultTable().MaxLen(),
		"elapsed": time.Since(start),
	}).Debug("Built the Huffman tree")
}

func (e *env) compress(job compressJob) error {
	if !hufftext.Supports(job.strategy) {
		return fmt.Errorf("%w: %s compression", errs.ErrUnimplementedMode, job.strategy)
	}

	e.buildTree()

	log := e.log.WithFields(logrus.Fields{
		"input":  job.input,
		"output": job.output,
		"framed": job.framed,
	})
	if job.framed {
		log = log.WithField("compression", job.compression)
		if job.compression == format.CompressionS2 {
			log = log.WithField("s2Level", job.s2Level)
		}
	}
	log.Info("Compressing file")

	start := time.Now()

	var (
		stats codec.Stats
		err   error
	)
	if job.framed {
		stats, err = compressFramed(job)
	} else {
		stats, err = compressRaw(job)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"symbols": stats.Symbols,
		"bytes":   stats.Bytes,
		"elapsed": time.Since(start),
	}).Info("Compressed file")

	return writeReport(e.report, stats)
}

func compressRaw(job compressJob) (codec.Stats, error) {
	in, err := os.Open(job.input)
	if err != nil {
		return codec.Stats{}, err
	}
	defer in.Close()

	var stats codec.Stats
	err = writeFile(job.output, func(w io.Writer) error {
		var encodeErr error
		stats, encodeErr = hufftext.CompressTo(w, in)

		return encodeErr
	})

	return stats, err
}

func compressFramed(job compressJob) (codec.Stats, error) {
	text, err := os.ReadFile(job.input)
	if err != nil {
		return codec.Stats{}, err
	}

	data, stats, err := hufftext.CompressFrame(text,
		frame.WithCompression(job.compression),
		frame.WithS2Level(job.s2Level),
	)
	if err != nil {
		return codec.Stats{}, err
	}

	err = writeFile(job.output, func(w io.Writer) error {
		_, writeErr := w.Write(data)
		return writeErr
	})

	return stats, err
}

func (e *env) decompress(job decompressJob) error {
	e.buildTree()

	log := e.log.WithFields(logrus.Fields{
		"input":  job.input,
		"output": job.output,
		"framed": job.framed,
	})
	log.Info("Decompressing file")

	start := time.Now()

	var (
		symbols int64
		err     error
	)
	if job.framed {
		symbols, err = decompressFramed(job)
	} else {
		symbols, err = decompressRaw(job)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"symbols": symbols,
		"elapsed": time.Since(start),
	}).Info("Decompressed file")

	return nil
}

func decompressRaw(job decompressJob) (int64, error) {
	in, err := os.Open(job.input)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	size := job.size
	if size < 0 {
		info, err := in.Stat()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", errs.ErrMissingSizeMetadata, err)
		}
		size = info.Size()
	}

	var symbols int64
	err = writeFile(job.output, func(w io.Writer) error {
		var decodeErr error
		symbols, decodeErr = hufftext.DecompressFrom(w, in, size)

		return decodeErr
	})

	return symbols, err
}

func decompressFramed(job decompressJob) (int64, error) {
	data, err := os.ReadFile(job.input)
	if err != nil {
		return 0, err
	}

	text, err := hufftext.DecompressFrame(data)
	if err != nil {
		return 0, err
	}

	err = writeFile(job.output, func(w io.Writer) error {
		_, writeErr := w.Write(text)
		return writeErr
	})

	return int64(len(text)), err
}

// writeFile creates path, runs fn on a buffered writer and removes the file
// again if anything fails, so a failed run leaves no partial output.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}

	return w.Flush()
}
