package numbers

// computeResultWeight scores how "round" result looks to a human solver —
// smaller is rounder. The branching below mirrors the source solver's
// ComputeResultWeight exactly, including the fact that 25 and 75 are
// special-cased among the two-digit numbers while no other non-multiple-of-10
// two-digit number is: that asymmetry is intentional, not an oversight, and
// is part of the human-difficulty heuristic (a Countdown player reaches for
// 25 and 75 about as readily as for a round multiple of ten).
func computeResultWeight(result uint32) uint8 {
	weight := uint8(1)
	switch {
	case result > 100:
		switch {
		case result > 1000:
			weight = 7
		case result%10 != 0:
			weight = 5
		case result%100 != 0:
			weight = 3
		}
	case result > 10:
		switch {
		case result%10 != 0:
			if result != 25 && result != 75 {
				weight = 3
			}
		case result == 100:
			weight = 0
		}
	case result == 1 || result == 10:
		weight = 0
	}

	return weight
}
