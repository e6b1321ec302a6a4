// Package merkle computes the keccak256 merkle root the on-chain filesystem
// uses to check a task binary.
package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// WordSize is the leaf size in bytes.
const WordSize = common.HashLength

// Leaves splits data into 32 byte words, zero padding the last one, and pads
// the word count with zero words up to the next power of two.
func Leaves(data []byte) []common.Hash {
	if len(data) == 0 {
		return nil
	}
	n := (len(data) + WordSize - 1) / WordSize
	size := 1
	for size < n {
		size <<= 1
	}

	leaves := make([]common.Hash, size)
	for i := 0; i < n; i++ {
		end := (i + 1) * WordSize
		if end > len(data) {
			end = len(data)
		}
		copy(leaves[i][:], data[i*WordSize:end])
	}
	return leaves
}

// Root returns the merkle root of data. Empty input hashes to the zero hash.
func Root(data []byte) common.Hash {
	level := Leaves(data)
	if len(level) == 0 {
		return common.Hash{}
	}
	for len(level) > 1 {
		next := make([]common.Hash, len(level)/2)
		for i := range next {
			next[i] = hashPair(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

func hashPair(a, b common.Hash) common.Hash {
	return crypto.Keccak256Hash(a[:], b[:])
}
