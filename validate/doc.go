// Package validate independently re-executes a numbers-round solution
// stream against its original tiles, reporting either the value the
// solution reaches or a structural/arithmetic violation.
//
// # What & Why
//
// A solution produced by numbers.Solver (or typed in by a human, or
// proposed by any other means) is a sequence of bytes, each encoding one
// binary operation over two tile slots (see the byte layout below), ended
// by a 0x00 sentinel. Validate replays that sequence against a working
// copy of the tiles, so it never trusts the solver that produced the
// stream — this package has no dependency on the numbers package and
// defines the wire contract on its own terms, which is the point: it is
// the independent authority on whether a stream is valid.
//
// # Byte encoding
//
//	bit 0-2: left tile index (original position in tiles)
//	bit 3-5: right tile index
//	bit 6-7: operator — 0=ADD, 1=SUB, 2=MUL, 3=DIV
//	a 0x00 byte, or the end of the slice, terminates the stream
//
// # Errors
//
//	ErrIncorrectTileID — a tile index is out of range, or left == right.
//	ErrTileUsedTwice   — a tile slot was already consumed by a prior step.
//	ErrNegativeResult  — a subtraction would go negative.
//	ErrDivisionByZero  — a division's divisor is zero.
//	ErrRemainderNotNull — a division does not divide evenly.
package validate
