package numbers

// nextSameBitCount returns the next integer greater than v with the same
// number of set bits, using Gosper's hack. Used to walk every subset of a
// given popcount in O(1) amortized per step.
func nextSameBitCount(v uint32) uint32 {
	c := v & -v
	r := v + c

	return (((r ^ v) / c) >> 2) | r
}

// Solve searches for a chain of operations over a subset of tiles that
// reaches target exactly, or otherwise the closest attainable value,
// preferring lower complexity and then fewer tiles among equally close
// candidates. tiles is identified by its ordering: tile i in the returned
// Ops stream always refers to tiles[i].
//
// maxComplexity bounds the complexity of any candidate considered; pass
// math.MaxUint16 for "no bound" (the solver's own default when the caller
// does not care about human-difficulty at all).
//
// Solve returns ErrTooManyTiles if more than 8 tiles are supplied.
// It returns ErrAborted, alongside a still-populated Solution, if the arena
// filled before every tile combination could be explored; the Solution in
// that case is the best candidate found before exhaustion, not a failure.
func (s *Solver) Solve(target uint32, tiles []uint32, maxComplexity uint16) (Solution, error) {
	if len(tiles) > maxTiles {
		return Solution{}, ErrTooManyTiles
	}
	n := uint16(len(tiles))

	s.target = target
	s.finalTileCount = n
	s.complexityMax = maxComplexity
	s.bestOpID = uint16(len(s.operations))
	s.bestDiff = sentinelBestDiff
	s.bestTileCount = 0
	s.aborted = false
	s.curLast = 0

	groups := make([]group, uint32(1)<<n)

	// Record every tile as a leaf; each one alone defines a size-1 group.
	s.currentTileCount = 1
	for tileID := uint16(0); tileID < n; tileID++ {
		s.curFirst = s.curLast
		s.recordOperation(opNop, tiles[tileID], 0)
		groups[uint32(1)<<tileID] = group{first: s.curFirst, last: s.curLast}
	}

	// Grow the combination size one tile at a time, until every tile is used,
	// an exact hit is found, or the arena aborts.
	groupSpace := uint32(1) << n
	for s.currentTileCount < n && s.bestDiff != 0 && !s.aborted {
		s.currentTileCount++

		mask := (uint32(1) << s.currentTileCount) - 1
		for mask < groupSpace && !s.aborted {
			s.curFirst = s.curLast
			s.combineAllPartitions(mask, groups)
			groups[mask] = group{first: s.curFirst, last: s.curLast}

			mask = nextSameBitCount(mask)
		}
	}

	return s.finalize(groups)
}

// combineAllPartitions splits mask into every unordered pair of non-empty
// disjoint sub-masks (visiting each pair exactly once) and combines the
// corresponding already-built groups.
//
// low is the lowest set bit of mask; every partition pairs low with a
// submask of the remaining bits (rest). Because low always falls on the
// same side of the split, each unordered {sub, mask^sub} pair is produced
// exactly once, in exactly 2^(popcount(mask)-1) - 1 steps — matching the
// source solver's tileSubGroupCount exactly, by a different (simpler, but
// equivalent) construction. Any enumerator with that property is valid per
// spec.md §4.5.
func (s *Solver) combineAllPartitions(mask uint32, groups []group) {
	low := mask & -mask
	rest := mask ^ low

	for sub := rest; ; {
		sub = (sub - 1) & rest
		if s.aborted {
			return
		}

		a := low | sub
		b := mask ^ a
		s.combine(groups[a], groups[b])

		if sub == 0 {
			return
		}
	}
}

// finalize builds the returned Solution (or signals ErrAborted) from the
// best candidate recorded during the search.
func (s *Solver) finalize(groups []group) (Solution, error) {
	if s.noBest() {
		// No tiles were ever recorded (len(tiles) == 0): nothing to report.
		return Solution{}, nil
	}

	best := &s.operations[s.bestOpID]
	ops, _ := s.generateSolution(s.bestOpID, make([]byte, 0, s.finalTileCount))
	ops = append(ops, 0)

	sol := Solution{
		Ops:        ops,
		Complexity: best.complexity,
		Value:      best.result,
	}

	if s.aborted {
		return sol, ErrAborted
	}

	return sol, nil
}
