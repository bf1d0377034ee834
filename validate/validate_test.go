package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrx/numbers/validate"
)

func encodeOp(left, right, op byte) byte {
	return (left & 7) | ((right & 7) << 3) | (op << 6)
}

func TestValidateAcceptsExactChain(t *testing.T) {
	// (1 + 1) x 4 = 8, then 8 + 5 = 13.
	ops := []byte{
		encodeOp(0, 1, 0), // tile0 + tile1 -> stored at slot 0
		encodeOp(0, 2, 2), // slot0 x tile2 -> stored at slot 0
		encodeOp(0, 3, 0), // slot0 + tile3 -> stored at slot 0
	}
	best, err := validate.Validate(13, []uint32{1, 1, 4, 5}, ops, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(13), best)
}

func TestValidateReportsClosestLoneTile(t *testing.T) {
	// Only tile itself is ever reached; target is unreachable, so the
	// closest single tile wins.
	best, err := validate.Validate(1000, []uint32{7}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(7), best)
}

func TestValidateRejectsOutOfRangeTileID(t *testing.T) {
	ops := []byte{encodeOp(5, 0, 0)} // tile id 5 with only 2 tiles present
	_, err := validate.Validate(10, []uint32{3, 3}, ops, nil)
	require.ErrorIs(t, err, validate.ErrIncorrectTileID)
}

func TestValidateRejectsTileUsedTwice(t *testing.T) {
	ops := []byte{
		encodeOp(0, 1, 0), // 3 + 4 -> slot0, slot1 consumed
		encodeOp(1, 0, 0), // slot1 is now used; referencing it again is illegal
	}
	_, err := validate.Validate(10, []uint32{3, 4}, ops, nil)
	require.ErrorIs(t, err, validate.ErrTileUsedTwice)
}

func TestValidateRejectsDivisionByZero(t *testing.T) {
	ops := []byte{encodeOp(0, 1, 3)} // tile0 / tile1, tile1 == 0
	_, err := validate.Validate(10, []uint32{5, 0}, ops, nil)
	require.ErrorIs(t, err, validate.ErrDivisionByZero)
}

func TestValidateRejectsNonIntegerDivision(t *testing.T) {
	ops := []byte{encodeOp(0, 1, 3)} // 5 / 3 has a remainder
	_, err := validate.Validate(10, []uint32{5, 3}, ops, nil)
	require.ErrorIs(t, err, validate.ErrRemainderNotNull)
}

func TestValidateStopsAtSentinelByte(t *testing.T) {
	ops := []byte{0, encodeOp(0, 1, 0)} // terminator first: second byte never runs
	best, err := validate.Validate(10, []uint32{3, 4}, ops, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(4), best) // closest of the two raw tiles to 10
}

func TestValidateHookObservesEachStep(t *testing.T) {
	ops := []byte{encodeOp(0, 1, 2)} // 3 x 4
	var seen []validate.Operation
	_, err := validate.Validate(12, []uint32{3, 4}, ops, func(op validate.Operation) {
		seen = append(seen, op)
	})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	require.Equal(t, validate.Operation{Left: 3, Right: 4, Result: 12, OpChar: 'x'}, seen[0])
}
