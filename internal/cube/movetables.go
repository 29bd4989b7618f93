package cube

// MoveTables holds the six move tables: for each of a coordinate's
// values and each of the 18 moves, the coordinate's value after that
// move is applied. Phase-2-only tables (Edge4/Edge8/Corner) record -1
// for moves not in the phase-2 move set (any turn of U or D, plus R2,
// F2, L2, B2), since those moves are never explored past
// phase 1's G1 boundary.
type MoveTables struct {
	Twist   [][NMoves]int // [NTwist][18]
	Flip    [][NMoves]int // [NFlip][18]
	UDSlice [][NMoves]int // [NUDSlice][18]
	Edge4   [][NMoves]int // [NEdge4][18], -1 for non-phase-2 moves
	Edge8   [][NMoves]int // [NEdge8][18], -1 for non-phase-2 moves
	Corner  [][NMoves]int // [NCorner][18], -1 for non-phase-2 moves
}

// isPhase2Move reports whether the move (face, power), power in 1..3,
// is allowed in phase 2: any turn of U or D, or a half turn of R, F,
// L, B. In the move index 3*face + (power-1), slot 1 (power 2) is the
// half turn and slots 0 and 2 (power 1 and 3) are quarter turns; a
// quarter turn of a face other than U or D is disallowed.
func isPhase2Move(face, power int) bool {
	return !(power != 2 && face != int(U) && face != int(D))
}

// BuildMoveTables constructs all six move tables by direct
// application of the six generators to every coordinate value.
func BuildMoveTables() *MoveTables {
	mt := &MoveTables{
		Twist:   make([][NMoves]int, NTwist),
		Flip:    make([][NMoves]int, NFlip),
		UDSlice: make([][NMoves]int, NUDSlice),
		Edge4:   make([][NMoves]int, NEdge4),
		Edge8:   make([][NMoves]int, NEdge8),
		Corner:  make([][NMoves]int, NCorner),
	}

	var a CubieCube
	for i := 0; i < NTwist; i++ {
		a = Solved()
		a.SetTwist(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mt.Twist[i][3*face+(power-1)] = a.Twist()
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	for i := 0; i < NFlip; i++ {
		a = Solved()
		a.SetFlip(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mt.Flip[i][3*face+(power-1)] = a.Flip()
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	for i := 0; i < NUDSlice; i++ {
		a = Solved()
		a.SetUDSlice(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mt.UDSlice[i][3*face+(power-1)] = a.UDSlice()
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	for i := 0; i < NEdge4; i++ {
		a = Solved()
		a.SetEdge4(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mv := 3*face + (power - 1)
				if !isPhase2Move(face, power) {
					mt.Edge4[i][mv] = -1
				} else {
					mt.Edge4[i][mv] = a.Edge4()
				}
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	for i := 0; i < NEdge8; i++ {
		a = Solved()
		a.SetEdge8(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mv := 3*face + (power - 1)
				if !isPhase2Move(face, power) {
					mt.Edge8[i][mv] = -1
				} else {
					mt.Edge8[i][mv] = a.Edge8()
				}
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	for i := 0; i < NCorner; i++ {
		a = Solved()
		a.SetCorner(i)
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				a.ApplyMoveGenerator(Color(face), 1)
				mv := 3*face + (power - 1)
				if !isPhase2Move(face, power) {
					mt.Corner[i][mv] = -1
				} else {
					mt.Corner[i][mv] = a.CornerCoord()
				}
			}
			a.ApplyMoveGenerator(Color(face), 1)
		}
	}

	return mt
}
