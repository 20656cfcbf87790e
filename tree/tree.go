package tree

import (
	"fmt"

	"github.com/arloliu/hufftext/alphabet"
)

// NodeID addresses a node in a Tree's arena.
type NodeID int32

// NoNode is the zero value for absent children.
const NoNode NodeID = -1

// Kind discriminates leaf and internal nodes.
type Kind uint8

const (
	KindLeaf     Kind = 0x1 // KindLeaf nodes carry a symbol and no children.
	KindInternal Kind = 0x2 // KindInternal nodes carry two children and no symbol.
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Node is a tagged tree node.
type Node struct {
	weight uint64
	left   NodeID
	right  NodeID
	kind   Kind
	symbol alphabet.Symbol
}

func newLeaf(sym alphabet.Symbol, weight uint64) Node {
	return Node{weight: weight, left: NoNode, right: NoNode, kind: KindLeaf, symbol: sym}
}

func newInternal(left, right NodeID, weight uint64) Node {
	return Node{weight: weight, left: left, right: right, kind: KindInternal}
}

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.kind }

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool { return n.kind == KindLeaf }

// Weight returns the total weight of the subtree rooted at n.
func (n Node) Weight() uint64 { return n.weight }

// Symbol returns the leaf symbol. ok is false for internal nodes.
func (n Node) Symbol() (sym alphabet.Symbol, ok bool) {
	if n.kind != KindLeaf {
		return 0, false
	}

	return n.symbol, true
}

// Children returns the left and right child. ok is false for leaves.
func (n Node) Children() (left, right NodeID, ok bool) {
	if n.kind != KindInternal {
		return NoNode, NoNode, false
	}

	return n.left, n.right, true
}

// Tree is an immutable Huffman tree over the alphabet.
type Tree struct {
	nodes  []Node
	root   NodeID
	leaves [alphabet.Size]NodeID
	depths [alphabet.Size]uint8
}

// Root returns the root node id.
func (t *Tree) Root() NodeID { return t.root }

// Node returns the node stored at id.
// Panics if id is out of range.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaf returns the leaf node id holding sym.
func (t *Tree) Leaf(sym alphabet.Symbol) NodeID {
	return t.leaves[sym]
}

// Depth returns the number of edges between the root and sym's leaf, which
// is also the length of sym's code.
func (t *Tree) Depth(sym alphabet.Symbol) int {
	return int(t.depths[sym])
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Step moves from internal node id along bit: 0 selects the left child, any
// other value the right child.
//
// Panics if id is a leaf.
func (t *Tree) Step(id NodeID, bit uint64) NodeID {
	n := &t.nodes[id]
	if n.kind != KindInternal {
		panic(fmt.Sprintf("tree: step from leaf node %d", id))
	}
	if bit == 0 {
		return n.left
	}

	return n.right
}

// index fills the leaf and depth lookup tables. Called once by the builder.
func (t *Tree) index() {
	type frame struct {
		id    NodeID
		depth uint8
	}

	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.id]
		if n.kind == KindLeaf {
			t.leaves[n.symbol] = f.id
			t.depths[n.symbol] = f.depth

			continue
		}
		stack = append(stack, frame{n.right, f.depth + 1}, frame{n.left, f.depth + 1})
	}
}
