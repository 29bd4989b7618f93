package cube

// Coordinate range sizes, per spec.md §3.
const (
	NTwist   = 2187  // 3^7
	NFlip    = 2048  // 2^11
	NUDSlice = 495   // C(12,4)
	NEdge4   = 24    // 4!
	NEdge8   = 40320 // 8!
	NCorner  = 40320 // 8!
	NEdge    = 479001600
	NMoves   = 18
)

// binomial is the combinatorial number system coefficient C(n, k),
// computed directly (n, k are always small here).
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	num, den := 1, 1
	if k > n-k {
		k = n - k
	}
	for i := 1; i <= k; i++ {
		num *= n - k + i
		den *= i
	}
	return num / den
}

// Twist is the corner-orientation coordinate: the first 7 corner
// orientations read as base-3 digits, most significant first. The
// 8th is forced by sum(co) % 3 == 0.
func (cc *CubieCube) Twist() int {
	ret := 0
	for i := 0; i < 7; i++ {
		ret = 3*ret + cc.CO[i]
	}
	return ret
}

// SetTwist writes corner orientations consistent with twist. Leaves
// cp/ep/eo untouched.
func (cc *CubieCube) SetTwist(twist int) {
	sum := 0
	for i := 0; i < 7; i++ {
		x := twist % 3
		cc.CO[6-i] = x
		sum += x
		twist /= 3
	}
	cc.CO[7] = (3 - sum%3) % 3
}

// Flip is the edge-orientation coordinate: the first 11 edge
// orientations read as base-2 digits, most significant first. The
// 12th is forced by sum(eo) % 2 == 0.
func (cc *CubieCube) Flip() int {
	ret := 0
	for i := 0; i < 11; i++ {
		ret = 2*ret + cc.EO[i]
	}
	return ret
}

// SetFlip writes edge orientations consistent with flip. Leaves
// cp/ep/co untouched.
func (cc *CubieCube) SetFlip(flip int) {
	sum := 0
	for i := 0; i < 11; i++ {
		x := flip % 2
		cc.EO[10-i] = x
		sum += x
		flip /= 2
	}
	cc.EO[11] = (2 - sum%2) % 2
}

// sliceEdges are the four UD-slice edges, FR FL BL BR.
var sliceEdges = [4]Edge{FR, FL, BL, BR}

// nonSliceEdges are the eight U/D-layer edges, in canonical order.
var nonSliceEdges = [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}

// UDSlice describes the (unordered) positions of the four slice
// edges FR, FL, BL, BR among the 12 edge slots, via the
// combinatorial number system. Range [0, C(12,4)).
func (cc *CubieCube) UDSlice() int {
	ret, s := 0, 0
	for j := 0; j < 12; j++ {
		if cc.EP[j] >= FR && cc.EP[j] <= BR {
			s++
		} else if s >= 1 {
			ret += binomial(j, s-1)
		}
	}
	return ret
}

// SetUDSlice places the four slice edges (in canonical relative
// order FR FL BL BR) into their decoded positions, and fills every
// remaining slot with the eight non-slice edges in canonical order.
// Does not set orientations — only valid for reconstructing the
// udslice coordinate, to be followed by SetEdge4/SetEdge8 for full
// permutation detail.
func (cc *CubieCube) SetUDSlice(udslice int) {
	var isSlice [12]bool
	s := 3
	for j := 11; j >= 0; j-- {
		if udslice-binomial(j, s) < 0 {
			cc.EP[j] = sliceEdges[s]
			isSlice[j] = true
			s--
		} else {
			udslice -= binomial(j, s)
		}
	}
	x := 0
	for j := 0; j < 12; j++ {
		if !isSlice[j] {
			cc.EP[j] = nonSliceEdges[x]
			x++
		}
	}
}

// lehmerEncode returns the Lehmer-code rank of vals (n distinct
// values; only their relative order matters) among all n!
// permutations: the factoradic number system.
func lehmerEncode(vals []int) int {
	n := len(vals)
	ret := 0
	for j := n - 1; j > 0; j-- {
		s := 0
		for i := 0; i < j; i++ {
			if vals[i] > vals[j] {
				s++
			}
		}
		ret = j*(ret+s)
	}
	return ret
}

// lehmerDecode reconstructs a permutation of 0..n-1 from its
// factoradic rank idx, writing it into out (len(out) == n).
func lehmerDecode(idx, n int, out []int) {
	coeffs := make([]int, n-1)
	for i := 1; i < n; i++ {
		coeffs[i-1] = idx % (i + 1)
		idx /= (i + 1)
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := n - 2; i >= 0; i-- {
		pick := i + 1 - coeffs[i]
		out[i+1] = pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	out[0] = pool[0]
}

// Edge4 describes the order of the four UD-slice edges FR, FL, BL,
// BR. Only meaningful in G1 (where the slice edges are known to
// occupy positions 8..11). Range [0, 24).
func (cc *CubieCube) Edge4() int {
	vals := make([]int, 4)
	for i := 0; i < 4; i++ {
		vals[i] = int(cc.EP[8+i])
	}
	return lehmerEncode(vals)
}

// SetEdge4 writes ep[8:12] from the edge4 coordinate. Assumes the
// slice edges already occupy positions 8..11 (true in G1, where
// udslice == 0).
func (cc *CubieCube) SetEdge4(edge4 int) {
	out := make([]int, 4)
	lehmerDecode(edge4, 4, out)
	for i := 0; i < 4; i++ {
		cc.EP[8+i] = sliceEdges[out[i]]
	}
}

// Edge8 describes the permutation of the 8 U/D-layer edges, UR UF UL
// UB DR DF DL DB. Only meaningful in G1. Range [0, 8!).
func (cc *CubieCube) Edge8() int {
	vals := make([]int, 8)
	for i := 0; i < 8; i++ {
		vals[i] = int(cc.EP[i])
	}
	return lehmerEncode(vals)
}

// SetEdge8 writes ep[0:8] from the edge8 coordinate.
func (cc *CubieCube) SetEdge8(edge8 int) {
	out := make([]int, 8)
	lehmerDecode(edge8, 8, out)
	for i := 0; i < 8; i++ {
		cc.EP[i] = Edge(out[i])
	}
}

// CornerCoord is the corner-permutation coordinate. Range [0, 8!).
func (cc *CubieCube) CornerCoord() int {
	vals := make([]int, 8)
	for i := 0; i < 8; i++ {
		vals[i] = int(cc.CP[i])
	}
	return lehmerEncode(vals)
}

// SetCorner writes cp from the corner coordinate.
func (cc *CubieCube) SetCorner(idx int) {
	out := make([]int, 8)
	lehmerDecode(idx, 8, out)
	for i := 0; i < 8; i++ {
		cc.CP[i] = Corner(out[i])
	}
}

// EdgeCoord is the full 12-edge permutation coordinate. Not used
// during solving; needed only to generate random cubes (spec.md §4.2,
// "Misc. Coordinates"). Range [0, 12!).
func (cc *CubieCube) EdgeCoord() int {
	vals := make([]int, 12)
	for i := 0; i < 12; i++ {
		vals[i] = int(cc.EP[i])
	}
	return lehmerEncode(vals)
}

// SetEdgeCoord writes ep from the full edge-permutation coordinate.
func (cc *CubieCube) SetEdgeCoord(idx int) {
	out := make([]int, 12)
	lehmerDecode(idx, 12, out)
	for i := 0; i < 12; i++ {
		cc.EP[i] = Edge(out[i])
	}
}
