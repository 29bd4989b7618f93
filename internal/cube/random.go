package cube

import "math/rand/v2"

// RandomCube generates a uniformly random, solvable cube and returns
// its facelet string. It follows the reference generator's approach
// (twophase/random.py, tools.py random_cube): draw twist and flip
// coordinates directly, then draw corner and edge permutation
// coordinates, retrying the draw until their parities agree, since
// only matched-parity combinations correspond to a physically
// assemblable cube. This is direct coordinate sampling, not a random
// walk of scramble moves, so every generated cube is reachable in the
// output distribution with equal probability regardless of its
// distance from solved.
func RandomCube() string {
	var cc CubieCube
	cc.SetTwist(rand.IntN(NTwist))
	cc.SetFlip(rand.IntN(NFlip))

	for {
		cc.SetCorner(rand.IntN(NCorner))
		cc.SetEdgeCoord(rand.IntN(NEdge))
		if cc.CornerParity() == cc.EdgeParity() {
			break
		}
	}

	fc := cc.ToFaceCube()
	return fc.String()
}
