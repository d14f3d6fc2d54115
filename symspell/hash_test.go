package symspell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_HashersAreDeterministic(t *testing.T) {
	for _, h := range []Hasher{NewFNVHasher(5), XXHasher{}} {
		a := h.Hash("steam")
		b := h.Hash("steam")
		require.Equal(t, a, b)
	}
}

func Test_FNVHasherClampsCompactLevel(t *testing.T) {
	h := NewFNVHasher(200)
	require.Equal(t, uint32(math32Max>>(3+16))<<2, h.compactMask)
}

const math32Max = ^uint32(0)
