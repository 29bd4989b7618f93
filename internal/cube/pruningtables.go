package cube

// PruningTables holds the four BFS-filled pruning tables used as
// admissible lower-bound heuristics during IDA*. Each is indexed by
// a pair of coordinates flattened as major*minorSize+minor, and
// holds the minimum number of moves to reach (0,0) from that pair,
// or -1 if not yet reached during construction (never true once
// built, since both coordinate spaces are move-table reachable from
// the identity).
type PruningTables struct {
	UDSliceTwist []int // [NUDSlice*NTwist]
	UDSliceFlip  []int // [NUDSlice*NFlip]
	Edge4Edge8   []int // [NEdge4*NEdge8]
	Edge4Corner  []int // [NEdge4*NCorner]
}

// fillPrune runs the breadth-first fixed-point fill shared by all
// four pruning tables: starting from state 0 at depth 0, repeatedly
// scan for states at the current frontier depth and relax their
// move-table neighbors to depth+1, until every reachable state has a
// depth.
//
// moveA and moveB skip a move entirely when either table reports -1
// for it (a move phase 2 cannot make). The Python reference this is
// ported from instead feeds -1 straight into the index arithmetic,
// which Python silently accepts as a negative list index; this Go
// port rejects that unsound shortcut and never visits a
// phase-2-disallowed move during construction.
func fillPrune(sizeA, sizeB int, moveA, moveB [][NMoves]int) []int {
	total := sizeA * sizeB
	prune := make([]int, total)
	for i := range prune {
		prune[i] = -1
	}
	prune[0] = 0
	count, depth := 1, 0
	for count < total {
		for i := 0; i < total; i++ {
			if prune[i] != depth {
				continue
			}
			a, b := i/sizeB, i%sizeB
			for mv := 0; mv < NMoves; mv++ {
				na, nb := moveA[a][mv], moveB[b][mv]
				if na == -1 || nb == -1 {
					continue
				}
				x := na*sizeB + nb
				if prune[x] == -1 {
					prune[x] = depth + 1
					count++
				}
			}
		}
		depth++
	}
	return prune
}

// BuildPruningTables fills all four pruning tables from a completed
// set of move tables.
func BuildPruningTables(mt *MoveTables) *PruningTables {
	return &PruningTables{
		UDSliceTwist: fillPrune(NUDSlice, NTwist, mt.UDSlice, mt.Twist),
		UDSliceFlip:  fillPrune(NUDSlice, NFlip, mt.UDSlice, mt.Flip),
		Edge4Edge8:   fillPrune(NEdge4, NEdge8, mt.Edge4, mt.Edge8),
		Edge4Corner:  fillPrune(NEdge4, NCorner, mt.Edge4, mt.Corner),
	}
}
