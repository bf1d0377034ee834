package numbers

// generateSolution walks the arena record at id back to its leaf tiles,
// appending one encoded byte per operation to out, and returns the tile
// index that now holds this record's result.
//
// The encoding stores the result of each operation in place of its left
// operand: subsequent references to this sub-tree use leftTileID, which is
// why the function returns it rather than id.
func (s *Solver) generateSolution(id uint16, out []byte) ([]byte, uint16) {
	op := &s.operations[id]
	if op.op == opNop {
		return out, id
	}

	var leftTileID, rightTileID uint16
	out, leftTileID = s.generateSolution(op.left, out)
	out, rightTileID = s.generateSolution(op.right, out)

	out = append(out, byte(leftTileID&7)|byte(rightTileID&7)<<3|byte(op.op)<<6)

	return out, leftTileID
}
