package cube

// CoordCube is a cube state reduced to the six coordinates the
// two-phase search operates on. It carries no cubie-level detail;
// Solver keeps a parallel CubieCube alongside it during phase 1 so
// phase 2 can be launched without replaying moves from scratch.
type CoordCube struct {
	Twist   int
	Flip    int
	UDSlice int
	Edge4   int
	Edge8   int
	Corner  int
}

// FromCubieCube reduces a full cube state to its coordinates.
func FromCubieCube(cc *CubieCube) CoordCube {
	return CoordCube{
		Twist:   cc.Twist(),
		Flip:    cc.Flip(),
		UDSlice: cc.UDSlice(),
		Edge4:   cc.Edge4(),
		Edge8:   cc.Edge8(),
		Corner:  cc.CornerCoord(),
	}
}

// Move returns the coordinate set after applying move mv via the
// given move tables. Edge4/Edge8/Corner become -1 if mv is not a
// legal phase-2 move from this state; callers in phase 1 never read
// them, and callers in phase 2 never apply a disallowed move.
func (c CoordCube) Move(mt *MoveTables, mv int) CoordCube {
	return CoordCube{
		Twist:   mt.Twist[c.Twist][mv],
		Flip:    mt.Flip[c.Flip][mv],
		UDSlice: mt.UDSlice[c.UDSlice][mv],
		Edge4:   mt.Edge4[c.Edge4][mv],
		Edge8:   mt.Edge8[c.Edge8][mv],
		Corner:  mt.Corner[c.Corner][mv],
	}
}

// InG1 reports whether this coordinate set lies in the phase-1
// target subgroup: twist, flip, and udslice all solved.
func (c CoordCube) InG1() bool {
	return c.Twist == 0 && c.Flip == 0 && c.UDSlice == 0
}
