// Package tree builds the fixed Huffman tree over the 27-symbol alphabet.
//
// Nodes are stored in an arena and addressed by NodeID. A node is either a
// leaf carrying a symbol or an internal node carrying two children; there is
// no magic symbol value for internal nodes and no sentinel weight for merged
// subtrees.
//
// The tree is built once and is immutable afterwards, so a single *Tree can
// be shared by any number of goroutines.
//
// # Construction
//
// Build keeps an ordered list of live subtrees, initially one leaf per symbol
// in alphabet order. It repeatedly picks the lightest live subtree, then the
// lightest of the rest, ties going to the earlier entry. The two are replaced
// by a parent stored at the first pick's position, with the second pick as the
// left child and the first pick as the right child. The process ends when one
// subtree is left.
//
// The resulting shape is part of the wire format: every raw stream produced
// by this module depends on it.
package tree
