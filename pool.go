package numbers

// StandardPool is the canonical "Des chiffres et des lettres" tile pool:
// the integers 1 through 10, each available twice, plus the four "plaques"
// 25, 50, 75 and 100. A game board draws some number of tiles from this
// pool (usually six) without replacement.
var StandardPool = []uint32{
	1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10,
	25, 50, 75, 100,
}
