package validate

import (
	"errors"
	"math"
)

// Sentinel errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrIncorrectTileID is returned when an operation byte names a tile index
	// outside [0, len(tiles)), or names the same tile index for both operands.
	ErrIncorrectTileID = errors.New("validate: incorrect tile id")

	// ErrTileUsedTwice is returned when an operation byte reuses a tile slot
	// that a prior step already consumed.
	ErrTileUsedTwice = errors.New("validate: tile used twice")

	// ErrNegativeResult is returned when a subtraction's right operand exceeds
	// its left operand.
	ErrNegativeResult = errors.New("validate: negative result")

	// ErrDivisionByZero is returned when a division's right operand is zero.
	ErrDivisionByZero = errors.New("validate: division by zero")

	// ErrRemainderNotNull is returned when a division does not divide evenly.
	ErrRemainderNotNull = errors.New("validate: remainder not null")
)

// usedSentinel marks a tile slot that has already been consumed by a prior
// operation. Tile values equal to math.MaxUint32 are not representable in
// the canonical game (tiles top out at 100), so this sentinel never
// collides with a legitimate value.
const usedSentinel = math.MaxUint32

// Operation describes one step of a solution stream, passed to a Hook as it
// is replayed.
type Operation struct {
	Left, Right uint32 // operand values, in application order
	Result      uint32
	OpChar      byte // '+', '-', 'x', or '/'
}

// Hook, if non-nil, is invoked once per operation as Validate replays a
// solution stream, for display or tracing purposes.
type Hook func(op Operation)

var opChars = [4]byte{'+', '-', 'x', '/'}

// Validate replays ops against tiles and reports the value closest to
// target that was reached — by any single tile or any intermediate
// result — or the first violation encountered.
//
// ops is read until a 0x00 byte or the end of the slice, whichever comes
// first; a well-formed solver-produced stream carries an explicit
// terminator, but a bare slice of operation bytes (no terminator) is
// accepted too.
func Validate(target uint32, tiles []uint32, ops []byte, hook Hook) (bestResult uint32, err error) {
	working := make([]uint32, len(tiles))
	bestDiff := uint32(math.MaxUint32)

	checkResult := func(result uint32) {
		diff := absDiff(result, target)
		if diff < bestDiff {
			bestDiff = diff
			bestResult = result
		}
	}

	for i, t := range tiles {
		working[i] = t
		checkResult(t)
	}

	for _, b := range ops {
		if b == 0 {
			break
		}

		leftID := uint32(b & 7)
		rightID := uint32((b >> 3) & 7)
		opCode := b >> 6

		n := uint32(len(tiles))
		if leftID >= n || rightID >= n || leftID == rightID {
			return bestResult, ErrIncorrectTileID
		}

		vl, vr := working[leftID], working[rightID]
		if vl == usedSentinel || vr == usedSentinel {
			return bestResult, ErrTileUsedTwice
		}

		var result uint32
		switch opCode {
		case 0: // ADD
			result = vl + vr
		case 2: // MUL
			result = vl * vr
		case 1: // SUB
			if vl < vr {
				return bestResult, ErrNegativeResult
			}
			result = vl - vr
		default: // DIV
			if vr == 0 {
				return bestResult, ErrDivisionByZero
			}
			result = vl / vr
			if result*vr != vl {
				return bestResult, ErrRemainderNotNull
			}
		}

		if hook != nil {
			hook(Operation{Left: vl, Right: vr, Result: result, OpChar: opChars[opCode]})
		}

		working[leftID] = result
		working[rightID] = usedSentinel
		checkResult(result)
	}

	return bestResult, nil
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}

	return b - a
}
