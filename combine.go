package numbers

// combine enumerates every valid (+, −, ×, ÷) combination of a result from
// group a with a result from group b — two disjoint tile-subset groups —
// and records each survivor into the arena via recordOperation.
//
// For every pair, the larger result is canonicalized to the left operand
// and the smaller to the right (left >= right). This is what makes
// subtraction and division always well-formed candidates without ever
// producing a negative intermediate or a fraction: there is no case to
// reject for operand order, only for triviality (e.g. "x - x" or "x / 1").
func (s *Solver) combine(a, b group) {
	for ia := a.first; ia < a.last; ia++ {
		opA := &s.operations[ia]
		resultA := opA.result
		weightA := opA.weight
		complexityA := opA.complexity

		for ib := b.first; ib < b.last; ib++ {
			opB := &s.operations[ib]

			complexityAB := complexityA + opB.complexity
			if complexityAB > s.complexityMax {
				continue
			}

			resultB := opB.result
			weightB := opB.weight

			var hi, lo uint32
			var leftID, rightID uint16
			if resultA >= resultB {
				hi, lo = resultA, resultB
				leftID, rightID = ia, ib
			} else {
				hi, lo = resultB, resultA
				leftID, rightID = ib, ia
			}
			s.curLeft, s.curRight = leftID, rightID

			// Addition.
			addComplexity := complexityAB + uint16(min(weightA, weightB))
			s.recordOperation(opAdd, hi+lo, addComplexity)

			// Subtraction. Reject the symmetric duplicate where hi-lo == lo,
			// since that recomputes a value already present in one operand.
			if hi != lo {
				r := hi - lo
				if r != lo {
					subComplexity := complexityAB + uint16((uint32(weightA)+uint32(weightB))/2)
					s.recordOperation(opSub, r, subComplexity)
				}
			}

			// Multiplication and division by 1 are useless; skip them.
			if lo > 1 {
				w := uint16(weightA) * uint16(weightB)
				mulComplexity := complexityAB + w*w
				s.recordOperation(opMul, hi*lo, mulComplexity)

				if hi == lo {
					s.recordOperation(opDiv, 1, complexityAB+1)
				} else if hi%lo == 0 {
					if q := hi / lo; q != lo {
						// An exact division is roughly as easy to spot as the
						// matching multiplication, hence the shared complexity.
						s.recordOperation(opDiv, q, mulComplexity)
					}
				}
			}
		}
	}
}
