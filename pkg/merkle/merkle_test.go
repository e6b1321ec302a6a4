//go:build unit || !integration

package merkle

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootIsDeterministic(t *testing.T) {
	code := bytes.Repeat([]byte("\x00asm\x01\x00\x00\x00"), 100)
	first := Root(code)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Root(code))
	}
	assert.Equal(t, first, Root(append([]byte(nil), code...)))
}

func TestRootEmpty(t *testing.T) {
	assert.Equal(t, common.Hash{}, Root(nil))
	assert.Equal(t, common.Hash{}, Root([]byte{}))
}

func TestRootSingleWord(t *testing.T) {
	data := []byte("abc")
	var want common.Hash
	copy(want[:], data)
	assert.Equal(t, want, Root(data))
}

func TestRootTwoWords(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 40)
	leaves := Leaves(data)
	require.Len(t, leaves, 2)
	assert.Equal(t, crypto.Keccak256Hash(leaves[0][:], leaves[1][:]), Root(data))
}

func TestLeavesPadToPowerOfTwo(t *testing.T) {
	data := bytes.Repeat([]byte{1}, 3*WordSize+1)
	leaves := Leaves(data)
	require.Len(t, leaves, 4)
	assert.Equal(t, byte(1), leaves[3][0])
	assert.Equal(t, byte(0), leaves[3][1])

	data = bytes.Repeat([]byte{1}, 5*WordSize)
	leaves = Leaves(data)
	require.Len(t, leaves, 8)
	assert.Equal(t, common.Hash{}, leaves[7])
}

func TestRootChangesWithContent(t *testing.T) {
	a := bytes.Repeat([]byte{1}, 100)
	b := append([]byte(nil), a...)
	b[99] = 2
	assert.NotEqual(t, Root(a), Root(b))
}
