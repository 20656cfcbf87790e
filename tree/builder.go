package tree

import "github.com/arloliu/hufftext/alphabet"

// slot is a live subtree during construction.
type slot struct {
	weight uint64
	node   NodeID
}

// Build constructs the tree for the given weights.
//
// The result is deterministic: the same weights always produce the same
// shape, and so the same code table.
func Build(weights alphabet.Weights) *Tree {
	t := build(weights[:])
	t.index()

	return t
}

func build(weights []uint64) *Tree {
	if len(weights) < 2 {
		panic("tree: at least two symbols are required")
	}

	t := &Tree{
		nodes: make([]Node, 0, 2*len(weights)-1),
	}

	active := make([]slot, len(weights))
	for i, w := range weights {
		t.nodes = append(t.nodes, newLeaf(alphabet.Symbol(i), w))
		active[i] = slot{weight: w, node: NodeID(i)}
	}

	for len(active) > 1 {
		first := smallest(active, -1)
		second := smallest(active, first)
		if first < 0 || second < 0 {
			panic("tree: merge attempted with fewer than two live subtrees")
		}

		weight := active[first].weight + active[second].weight
		parent := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, newInternal(active[second].node, active[first].node, weight))

		active[first] = slot{weight: weight, node: parent}
		active = append(active[:second], active[second+1:]...)
	}

	t.root = active[0].node

	return t
}

// smallest returns the position of the lightest slot other than exclude, or
// -1 if there is none. Ties resolve to the lowest position.
func smallest(active []slot, exclude int) int {
	best := -1
	for i := range active {
		if i == exclude {
			continue
		}
		if best < 0 || active[i].weight < active[best].weight {
			best = i
		}
	}

	return best
}
