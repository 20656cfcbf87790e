package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/code"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/internal/options"
	"github.com/arloliu/hufftext/internal/pool"
)

// EncoderConfig holds the settings shared by every call of an Encoder.
type EncoderConfig struct {
	table    *code.Table
	strategy format.Strategy
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithStrategy selects the execution strategy.
// StrategyParallel is refused with ErrUnimplementedMode; there is no silent
// fallback to serial encoding.
func WithStrategy(strategy format.Strategy) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if err := CheckStrategy(strategy); err != nil {
			return err
		}
		cfg.strategy = strategy

		return nil
	})
}

// Encoder packs text into a raw Huffman bitstream.
//
// An Encoder keeps no state between calls and is safe for concurrent use.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates an Encoder that uses table for every symbol lookup.
//
// Returns:
//   - *Encoder: encoder ready for use
//   - error: nil table, or an option error such as ErrUnimplementedMode
func NewEncoder(table *code.Table, opts ...EncoderOption) (*Encoder, error) {
	if table == nil {
		return nil, errors.New("codec: nil code table")
	}

	cfg := &EncoderConfig{table: table, strategy: format.StrategySerial}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: cfg}, nil
}

// Table returns the code table used by the encoder.
func (e *Encoder) Table() *code.Table {
	return e.table
}

// Strategy returns the configured execution strategy.
func (e *Encoder) Strategy() format.Strategy {
	return e.strategy
}

// Encode packs text into a raw bitstream.
//
// Encoding stops at the first newline, which marks the end of input and is
// not encoded. Every other byte must be a lowercase letter or a space; the
// first byte outside the alphabet aborts the call with ErrInvalidSymbol and no
// output is returned.
//
// Returns:
//   - []byte: packed stream owned by the caller, nil when no symbol was encoded
//   - Stats: per-call bit counters
//   - error: ErrInvalidSymbol wrapped with the offending offset and byte
func (e *Encoder) Encode(text []byte) ([]byte, Stats, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	stats, err := e.pack(buf, bytes.NewReader(text))
	if err != nil {
		return nil, Stats{}, err
	}
	if buf.Len() == 0 {
		return nil, stats, nil
	}

	return buf.Clone(), stats, nil
}

// EncodeSymbols packs already validated symbols. The output follows the same
// contract as Encode.
//
// Panics if a symbol is outside the alphabet.
func (e *Encoder) EncodeSymbols(symbols []alphabet.Symbol) ([]byte, Stats) {
	for _, sym := range symbols {
		if !sym.Valid() {
			panic(fmt.Sprintf("codec: invalid symbol %d", sym))
		}
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	p := newPacker(buf)
	for _, sym := range symbols {
		p.put(e.table.Lookup(sym))
	}
	// Writes into a pool buffer cannot fail.
	stats, _ := p.finish()

	if buf.Len() == 0 {
		return nil, stats
	}

	return buf.Clone(), stats
}

// pack encodes src into dst until a newline or EOF.
func (e *Encoder) pack(dst io.Writer, src io.ByteReader) (Stats, error) {
	p := newPacker(dst)

	for offset := 0; ; offset++ {
		b, err := src.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Stats{}, fmt.Errorf("read input: %w", err)
		}
		if b == alphabet.Newline {
			break
		}

		sym, ok := alphabet.FromByte(b)
		if !ok {
			return Stats{}, alphabet.InvalidByteError(offset, b)
		}

		p.put(e.table.Lookup(sym))
	}

	return p.finish()
}

// packer writes codes most significant bit first and counts them.
type packer struct {
	w     *bitio.Writer
	stats Stats
}

func newPacker(dst io.Writer) *packer {
	return &packer{w: bitio.NewWriter(dst)}
}

func (p *packer) put(c code.Code) {
	p.w.TryWriteBits(uint64(c.Bits), c.Len)
	p.stats.Symbols++
	p.stats.CompressedBits += int64(c.Len)
}

// finish pads the final byte with zero bits and flushes the writer.
func (p *packer) finish() (Stats, error) {
	skipped := p.w.TryAlign()
	if p.w.TryError != nil {
		return Stats{}, fmt.Errorf("write output: %w", p.w.TryError)
	}

	stats := p.stats
	stats.OriginalBits = stats.Symbols * 8
	stats.PaddingBits = int(skipped)
	stats.Bytes = (stats.CompressedBits + int64(skipped)) / 8

	return stats, nil
}
