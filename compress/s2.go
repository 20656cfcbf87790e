package compress

import (
	"strings"

	"github.com/klauspost/compress/s2"
)

// S2Level selects which S2 block encoder compresses a payload.
//
// All levels produce the same block format, so Decompress does not need to
// know the level a payload was written with.
type S2Level uint8

const (
	S2LevelDefault S2Level = iota // S2LevelDefault uses s2.Encode.
	S2LevelBetter                 // S2LevelBetter uses s2.EncodeBetter.
	S2LevelBest                   // S2LevelBest uses s2.EncodeBest.
)

func (l S2Level) String() string {
	switch l {
	case S2LevelDefault:
		return "default"
	case S2LevelBetter:
		return "better"
	case S2LevelBest:
		return "best"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the declared levels.
func (l S2Level) Valid() bool {
	return l <= S2LevelBest
}

// ParseS2Level parses a case-insensitive level name.
// The empty string maps to S2LevelDefault.
func ParseS2Level(s string) (S2Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return S2LevelDefault, true
	case "better":
		return S2LevelBetter, true
	case "best":
		return S2LevelBest, true
	default:
		return S2LevelDefault, false
	}
}

// S2Compressor provides S2 (Snappy-compatible) compression for framed payloads.
type S2Compressor struct {
	level S2Level
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 compressor that encodes at level.
// An unknown level falls back to S2LevelDefault.
func NewS2Compressor(level S2Level) S2Compressor {
	if !level.Valid() {
		level = S2LevelDefault
	}

	return S2Compressor{level: level}
}

// Level returns the encoder level.
func (c S2Compressor) Level() S2Level {
	return c.level
}

// Compress compresses the input data with the configured S2 encoder.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch c.level {
	case S2LevelBetter:
		return s2.EncodeBetter(nil, data), nil
	case S2LevelBest:
		return s2.EncodeBest(nil, data), nil
	default:
		return s2.Encode(nil, data), nil
	}
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
