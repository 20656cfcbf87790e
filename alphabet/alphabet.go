// Package alphabet defines the fixed 27-symbol alphabet and its weight table.
//
// The alphabet is the 26 lowercase ASCII letters (indices 0-25) followed by the
// space character (index 26). No other byte can be encoded.
package alphabet

import (
	"fmt"

	"github.com/arloliu/hufftext/errs"
)

// Size is the number of symbols in the alphabet.
const Size = 27

// Newline terminates encoder input. It is never encoded.
const Newline = '\n'

// Symbol is an index into the alphabet.
type Symbol uint8

// Space is the symbol for the ' ' character.
const Space Symbol = 26

// Weights maps each symbol to its relative frequency.
type Weights [Size]uint64

// DefaultWeights is the fixed frequency table used to shape the tree.
//
// Changing any weight changes the tree and therefore the meaning of every
// previously compressed stream.
var DefaultWeights = Weights{
	8, 2, 3, 4, 12, 2, 2, 6, 7, 2, 0, 4, 2, // a-m
	6, 7, 2, 1, 5, 5, 7, 3, 1, 2, 0, 2, 0, // n-z
	5, // space
}

// FromByte maps an input byte to its symbol.
func FromByte(b byte) (Symbol, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return Symbol(b - 'a'), true
	case b == ' ':
		return Space, true
	default:
		return 0, false
	}
}

// Byte returns the output byte for the symbol.
func (s Symbol) Byte() byte {
	if s == Space {
		return ' '
	}

	return 'a' + byte(s)
}

// Valid reports whether s is a member of the alphabet.
func (s Symbol) Valid() bool {
	return s < Size
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	if s == Space {
		return "' '"
	}

	return string(s.Byte())
}

// Parse converts text into symbols.
//
// Parsing stops at the first newline, which is treated as the end-of-input
// sentinel and is not part of the result. Any other byte outside the alphabet
// yields ErrInvalidSymbol with its offset.
func Parse(text []byte) ([]Symbol, error) {
	out := make([]Symbol, 0, len(text))
	for i, b := range text {
		if b == Newline {
			break
		}

		sym, ok := FromByte(b)
		if !ok {
			return nil, InvalidByteError(i, b)
		}
		out = append(out, sym)
	}

	return out, nil
}

// InvalidByteError builds an ErrInvalidSymbol error for byte b at offset.
func InvalidByteError(offset int, b byte) error {
	return fmt.Errorf("%w: byte 0x%02x at offset %d", errs.ErrInvalidSymbol, b, offset)
}

// Total returns the sum of all weights.
func (w Weights) Total() uint64 {
	var total uint64
	for _, v := range w {
		total += v
	}

	return total
}
