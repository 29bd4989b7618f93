package cube

// CubieCube is the full permutation+orientation state of a 3x3x3
// cube: which cubie sits at each of the 8 corner and 12 edge
// positions, and how it is twisted/flipped there.
type CubieCube struct {
	CP [8]Corner  // cp[i] = which corner cubie occupies position i
	CO [8]int     // corner orientation at position i, in {0,1,2}
	EP [12]Edge   // ep[i] = which edge cubie occupies position i
	EO [12]int    // edge orientation at position i, in {0,1}
}

// Solved returns the identity CubieCube.
func Solved() CubieCube {
	var c CubieCube
	for i := range c.CP {
		c.CP[i] = Corner(i)
	}
	for i := range c.EP {
		c.EP[i] = Edge(i)
	}
	return c
}

// The six canonical clockwise quarter-turn generators, cp/co/ep/eo as
// the cube looks after a single clockwise turn of that face applied
// to a solved cube.
var generators = [6]CubieCube{
	// U
	{
		CP: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// R
	{
		CP: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// F
	{
		CP: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		CP: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// L
	{
		CP: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// B
	{
		CP: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// cornerMultiply updates cp/co in place to a.corner_multiply(b): the
// result of applying a then b (b's effect happens second).
func (a *CubieCube) cornerMultiply(b *CubieCube) {
	var cp [8]Corner
	var co [8]int
	for i := 0; i < 8; i++ {
		cp[i] = a.CP[b.CP[i]]
		co[i] = (a.CO[b.CP[i]] + b.CO[i]) % 3
	}
	a.CP = cp
	a.CO = co
}

// edgeMultiply updates ep/eo in place the same way as cornerMultiply.
func (a *CubieCube) edgeMultiply(b *CubieCube) {
	var ep [12]Edge
	var eo [12]int
	for i := 0; i < 12; i++ {
		ep[i] = a.EP[b.EP[i]]
		eo[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	a.EP = ep
	a.EO = eo
}

// Multiply composes b onto a in place: a := a * b.
func (a *CubieCube) Multiply(b *CubieCube) {
	a.cornerMultiply(b)
	a.edgeMultiply(b)
}

// Inverse returns the cube c such that a.Multiply(&c) is the
// identity.
func (a *CubieCube) Inverse() CubieCube {
	var inv CubieCube
	for e := 0; e < 12; e++ {
		inv.EP[a.EP[e]] = Edge(e)
	}
	for e := 0; e < 12; e++ {
		inv.EO[e] = a.EO[inv.EP[e]]
	}
	for c := 0; c < 8; c++ {
		inv.CP[a.CP[c]] = Corner(c)
	}
	for c := 0; c < 8; c++ {
		ori := a.CO[inv.CP[c]]
		inv.CO[c] = (3 - ori) % 3
	}
	return inv
}

// CornerParity is the parity of the corner permutation.
func (a *CubieCube) CornerParity() int {
	s := 0
	for i := 7; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if a.CP[j] > a.CP[i] {
				s++
			}
		}
	}
	return s % 2
}

// EdgeParity is the parity of the edge permutation. A CubieCube
// assembled from a physical cube always has CornerParity ==
// EdgeParity.
func (a *CubieCube) EdgeParity() int {
	s := 0
	for i := 11; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if a.EP[j] > a.EP[i] {
				s++
			}
		}
	}
	return s % 2
}

// ApplyMoveGenerator multiplies a by the face generator `power` times
// (power in 1..3), mutating a in place. This is the cubie-level
// equivalent of turning a face `power` quarter turns clockwise.
func (a *CubieCube) ApplyMoveGenerator(face Color, power int) {
	g := generators[face]
	for i := 0; i < power; i++ {
		a.Multiply(&g)
	}
}
