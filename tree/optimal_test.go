package tree

import (
	"math/rand"
	"testing"

	"github.com/icza/huffman"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/alphabet"
)

// referenceCost returns the weighted code length of an independently built
// Huffman code for weights.
func referenceCost(weights alphabet.Weights) uint64 {
	leaves := make([]*huffman.Node, alphabet.Size)
	for i, w := range weights {
		leaves[i] = &huffman.Node{Value: huffman.ValueType(i), Count: int(w)}
	}
	huffman.Build(leaves)

	var cost uint64
	for i, leaf := range leaves {
		_, bits := leaf.Code()
		cost += weights[i] * uint64(bits)
	}

	return cost
}

func treeCost(tr *Tree, weights alphabet.Weights) uint64 {
	var cost uint64
	for i, w := range weights {
		cost += w * uint64(tr.Depth(alphabet.Symbol(i)))
	}

	return cost
}

func TestBuild_OptimalCost(t *testing.T) {
	t.Run("DefaultWeights", func(t *testing.T) {
		cost := treeCost(Build(alphabet.DefaultWeights), alphabet.DefaultWeights)
		require.Equal(t, referenceCost(alphabet.DefaultWeights), cost)
		require.Equal(t, uint64(435), cost)
	})

	t.Run("RandomWeights", func(t *testing.T) {
		rng := rand.New(rand.NewSource(27))
		for range 200 {
			var weights alphabet.Weights
			for i := range weights {
				weights[i] = uint64(rng.Intn(50))
			}

			require.Equal(t, referenceCost(weights), treeCost(Build(weights), weights), "weights %v", weights)
		}
	})
}
