// Package code derives the prefix code table from a Huffman tree.
//
// A Code is the root-to-leaf path of a symbol: one bit per edge, 0 for left
// and 1 for right, stored right-aligned with the root-side bit as the most
// significant. The number of bits equals the leaf depth.
package code

import (
	"strconv"
	"strings"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/tree"
)

// MaxLen is the longest code a Table can hold.
const MaxLen = 32

// Code is the bit pattern of one symbol.
type Code struct {
	Bits uint32 // Path bits, right-aligned, root-side bit first.
	Len  uint8  // Number of valid bits in Bits.
}

// Bit returns the i-th bit of the code counted from the root.
func (c Code) Bit(i int) uint64 {
	return uint64(c.Bits>>(int(c.Len)-1-i)) & 1
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}

	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := 0; i < int(c.Len); i++ {
		sb.WriteByte('0' + byte(c.Bit(i)))
	}

	return sb.String()
}

// Digits renders the code in the legacy decimal path notation, where digit 1
// means left and digit 2 means right, most significant digit first.
func (c Code) Digits() string {
	if c.Len == 0 {
		return "0"
	}

	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := 0; i < int(c.Len); i++ {
		sb.WriteString(strconv.Itoa(int(c.Bit(i)) + 1))
	}

	return sb.String()
}

// Table maps every symbol to its code.
//
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	codes [alphabet.Size]Code
}

// NewTable walks t depth first and records the path of every leaf.
//
// Panics if a leaf is deeper than MaxLen, which cannot happen for the
// 27-symbol alphabet.
func NewTable(t *tree.Tree) *Table {
	table := &Table{}
	table.fill(t, t.Root(), Code{})

	return table
}

func (tb *Table) fill(t *tree.Tree, id tree.NodeID, path Code) {
	n := t.Node(id)
	if sym, ok := n.Symbol(); ok {
		tb.codes[sym] = path

		return
	}

	if path.Len == MaxLen {
		panic("code: tree is deeper than the maximum code length")
	}

	left, right, _ := n.Children()
	tb.fill(t, left, Code{Bits: path.Bits << 1, Len: path.Len + 1})
	tb.fill(t, right, Code{Bits: path.Bits<<1 | 1, Len: path.Len + 1})
}

// Lookup returns the code for sym.
func (tb *Table) Lookup(sym alphabet.Symbol) Code {
	return tb.codes[sym]
}

// MaxLen returns the length of the longest code in the table.
func (tb *Table) MaxLen() int {
	maxLen := 0
	for _, c := range tb.codes {
		maxLen = max(maxLen, int(c.Len))
	}

	return maxLen
}

// BitLength returns the number of bits needed to encode symbols, excluding
// padding.
func (tb *Table) BitLength(symbols []alphabet.Symbol) int64 {
	var n int64
	for _, sym := range symbols {
		n += int64(tb.codes[sym].Len)
	}

	return n
}

// Codes returns a copy of all codes in symbol order.
func (tb *Table) Codes() [alphabet.Size]Code {
	return tb.codes
}
