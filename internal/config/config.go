// Package config loads the hufftext command-line configuration.
//
// Values start from Default, are overlaid by an optional TOML file and are
// finally overridden by command-line flags. A key the file sets but Config
// does not know is an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/format"
)

const (
	DefaultCompressedFile   = "compressed.txt"
	DefaultDecompressedFile = "decompressed.txt"
	DefaultLogLevel         = "info"
)

// Config is the complete CLI configuration.
type Config struct {
	// LogLevel is a logrus level name: panic, fatal, error, warn, info, debug or trace.
	LogLevel string `toml:"log_level"`

	Compress   CompressConfig   `toml:"compress"`
	Decompress DecompressConfig `toml:"decompress"`
}

// CompressConfig holds the settings of the compress command.
type CompressConfig struct {
	Output string `toml:"output"`
	// Framed wraps the packed stream in a self-describing frame.
	Framed bool `toml:"framed"`
	// Compression is the frame payload compression: none, zstd, s2 or lz4.
	Compression string `toml:"compression"`
	// S2Level is the S2 encoder level: default, better or best.
	S2Level string `toml:"s2_level"`
	// Parallel requests the parallel strategy, which is not implemented.
	Parallel bool `toml:"parallel"`
}

// DecompressConfig holds the settings of the decompress command.
type DecompressConfig struct {
	Output string `toml:"output"`
	Framed bool   `toml:"framed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Compress: CompressConfig{
			Output:      DefaultCompressedFile,
			Compression: format.CompressionNone.String(),
			S2Level:     compress.S2LevelDefault.String(),
		},
		Decompress: DecompressConfig{
			Output: DefaultDecompressedFile,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
//
// Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := checkUndecoded(path, md); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}

	if err := checkUndecoded("config", md); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkUndecoded(source string, md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)

	return fmt.Errorf("%s: unknown keys %s", source, strings.Join(keys, ", "))
}

// Validate checks the log level and the compression settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if _, ok := format.ParseCompressionType(c.Compress.Compression); !ok {
		return fmt.Errorf("unknown compression %q", c.Compress.Compression)
	}

	if _, ok := compress.ParseS2Level(c.Compress.S2Level); !ok {
		return fmt.Errorf("unknown s2 level %q", c.Compress.S2Level)
	}

	if c.Compress.Output == "" || c.Decompress.Output == "" {
		return errors.New("output path must not be empty")
	}

	return nil
}

// Level returns the parsed log level, or logrus.InfoLevel if it is invalid.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// CompressionType returns the parsed payload compression.
func (c *Config) CompressionType() format.CompressionType {
	compression, ok := format.ParseCompressionType(c.Compress.Compression)
	if !ok {
		return format.CompressionNone
	}

	return compression
}

// S2Level returns the parsed S2 encoder level.
func (c *Config) S2Level() compress.S2Level {
	level, _ := compress.ParseS2Level(c.Compress.S2Level)
	return level
}

// Dump writes the configuration as TOML.
func (c *Config) Dump(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
