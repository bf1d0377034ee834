package numbers

import "math"

// operation is one arena record: either a leaf (a tile, op == opNop) or the
// result of combining two earlier records named by left and right. Records
// are append-only; once written, only later entries may reference them, and
// their identity is their arena index.
type operation struct {
	left, right uint16
	result      uint32
	op          operator
	weight      uint8
	complexity  uint16
}

// group is a half-open arena range [first, last) holding every distinct
// result reachable from one particular tile-subset bitmask.
type group struct {
	first, last uint16
}

// Solver owns the arena and the result-deduplication index used to search
// for a solution. Both are allocated once by New and reused, without
// reallocation, across repeated calls to Solve — the next call simply
// overwrites the arena from index 0. A Solver is NOT safe for concurrent
// use: Solve mutates all of this state and must not be called from more
// than one goroutine at a time, nor reentrantly. Run one Solver per worker
// when solving many boards in parallel.
type Solver struct {
	operations  []operation
	resultIndex []uint16

	// final holds the parameters of the call in progress.
	target         uint32
	finalTileCount uint16
	complexityMax  uint16

	// solution tracks the best candidate found so far in the call in progress.
	// bestOpID == uint16(len(operations)) means "no candidate yet".
	bestOpID     uint16
	bestDiff     uint32
	bestTileCount uint16
	aborted      bool

	// current describes the group presently being built.
	currentTileCount uint16
	curFirst, curLast uint16
	curLeft, curRight uint16
}

// New allocates a Solver with room for operationCapacity arena records and a
// result-deduplication index sized resultIndexCapacity. Both must be
// non-zero. The most appropriate parameters when playing with 6 tiles are
// operationCapacity = 25000 and resultIndexCapacity = 15000.
func New(operationCapacity, resultIndexCapacity uint16) (*Solver, error) {
	if operationCapacity == 0 || resultIndexCapacity == 0 {
		return nil, ErrZeroCapacity
	}

	return &Solver{
		operations:  make([]operation, operationCapacity),
		resultIndex: make([]uint16, resultIndexCapacity),
	}, nil
}

// noBest reports whether no candidate solution has been recorded yet in the
// call in progress.
func (s *Solver) noBest() bool {
	return s.bestOpID >= uint16(len(s.operations))
}

// searchInCurrentGroup looks up an existing arena record with result == r
// that belongs to the group presently being built ([curFirst, curLast)).
// The result index is never cleared between groups — a stale entry from an
// earlier group is detected (and ignored) by range-checking its id against
// the current group's bounds and comparing its stored result, rather than
// by eagerly invalidating the whole index on every group change, which
// would dominate runtime for no benefit.
func (s *Solver) searchInCurrentGroup(r uint32) (uint16, bool) {
	if r >= uint32(len(s.resultIndex)) {
		// A linear scan of the current group would be slower than simply
		// accepting the duplicate, so out-of-range results are never deduped.
		return 0, false
	}
	id := s.resultIndex[r]
	if id >= s.curFirst && id < s.curLast && s.operations[id].result == r {
		return id, true
	}

	return 0, false
}

// absDiff returns the absolute difference between a result and the target.
func absDiff(result, target uint32) uint32 {
	if result > target {
		return result - target
	}

	return target - result
}

// recordOperation conditionally appends a new arena record for (op, result,
// complexity), or updates an existing same-result record in the current
// group, applying complexity pruning, target-distance pruning, and per-group
// deduplication, and keeping the running best-candidate pointer up to date.
//
// The classification below intentionally keeps two different comparisons
// apart rather than unifying them: the currentTileCount == finalTileCount
// branch rejects ties using `complexity >= existing.complexity` against the
// *already recorded* best candidate, while the otherwise branch (still
// growing toward finalTileCount) decides whether a freshly appended record
// becomes the new best using `complexity < existing.complexity`. These read
// as though they should be the same comparison, but they govern different
// questions — one rejects a record outright, the other decides whether an
// already-accepted record also updates the best pointer — and collapsing
// them changes which of several equally-close solutions the solver settles
// on. See DESIGN.md's Open Question entry.
func (s *Solver) recordOperation(op operator, result uint32, complexity uint16) {
	if complexity > s.complexityMax {
		return
	}

	diff := absDiff(result, s.target)

	var id uint16
	becomesBest := true

	switch {
	case s.noBest() || diff < s.bestDiff:
		id = s.curLast

	case s.currentTileCount == s.finalTileCount:
		best := &s.operations[s.bestOpID]
		if diff > s.bestDiff || complexity >= best.complexity || s.currentTileCount > s.bestTileCount {
			// This result will never be used: either it is farther from the
			// target, no simpler, or uses more tiles than the incumbent.
			return
		}
		if fid, found := s.searchInCurrentGroup(result); found {
			id = fid
		} else {
			id = s.curLast
		}

	default:
		if fid, found := s.searchInCurrentGroup(result); found {
			if complexity >= s.operations[fid].complexity {
				// An operation with the same result but lower complexity is
				// already recorded in this group.
				return
			}
			id = fid
		} else {
			id = s.curLast
			best := &s.operations[s.bestOpID]
			becomesBest = diff == s.bestDiff && complexity < best.complexity && s.currentTileCount == s.bestTileCount
		}
	}

	if id == s.curLast {
		// Appending a brand new record.
		if id >= uint16(len(s.operations)) {
			// The arena is full — return the best solution found so far.
			s.aborted = true
			return
		}
		if result < uint32(len(s.resultIndex)) {
			s.resultIndex[result] = id
		}
		rec := &s.operations[id]
		rec.result = result
		rec.weight = computeResultWeight(result)
		s.curLast++

		if becomesBest {
			s.bestOpID = id
			s.bestDiff = diff
			s.bestTileCount = s.currentTileCount
		}
	}

	rec := &s.operations[id]
	rec.left = s.curLeft
	rec.right = s.curRight
	rec.op = op
	rec.complexity = complexity
}

// sentinelBestDiff is the initial "no candidate" distance: larger than any
// real |result - target| can be, since both operands fit in uint32.
const sentinelBestDiff = math.MaxUint32
