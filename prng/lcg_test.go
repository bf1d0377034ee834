package prng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrx/numbers/prng"
)

// TestSourceMatchesJavaRandomSeedZero pins the generator against
// java.util.Random(0)'s first four nextInt() outputs, reduced to their
// unsigned 32-bit representation.
func TestSourceMatchesJavaRandomSeedZero(t *testing.T) {
	want := []uint32{3139482720, 3571011896, 1033096058, 2604232894}

	s := prng.New(0)
	for i, w := range want {
		require.Equal(t, w, s.Uint32(), "draw %d", i)
	}
}

func TestSeedResetsState(t *testing.T) {
	s := prng.New(42)
	first := s.Uint32()
	_ = s.Uint32()
	_ = s.Uint32()

	s.Seed(42)
	require.Equal(t, first, s.Uint32())
}

func TestShuffleIsPermutation(t *testing.T) {
	tiles := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	original := append([]uint32(nil), tiles...)

	prng.Shuffle(tiles, prng.New(7))

	require.ElementsMatch(t, original, tiles)
}

func TestShuffleIsDeterministicForFixedSeed(t *testing.T) {
	a := []uint32{1, 2, 3, 4, 5, 6}
	b := append([]uint32(nil), a...)

	prng.Shuffle(a, prng.New(1234))
	prng.Shuffle(b, prng.New(1234))

	require.Equal(t, a, b)
}

func TestShuffleSingleElementIsNoop(t *testing.T) {
	tiles := []uint32{9}
	prng.Shuffle(tiles, prng.New(1))
	require.Equal(t, []uint32{9}, tiles)
}
