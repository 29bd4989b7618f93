package cube

import (
	"fmt"
	"strings"
)

// FaceCube is the 54-sticker colour array read straight off a
// physical cube, in U R F D L B face order with each face numbered
// row-major from its top-left sticker.
type FaceCube struct {
	F [54]Color
}

// SolvedFaceCube returns the facelet array of a solved cube.
func SolvedFaceCube() FaceCube {
	var fc FaceCube
	for i := range fc.F {
		fc.F[i] = Color(i / 9)
	}
	return fc
}

// ParseFaceletString parses a 54-character facelet string (the
// format described in spec.md §6: exactly 54 uppercase letters from
// {U,R,F,D,L,B}, each appearing exactly nine times, in U R F D L B
// face order, row-major from the top-left of each face).
func ParseFaceletString(s string) (FaceCube, error) {
	var fc FaceCube
	if len(s) != 54 {
		return fc, &SolverError{Code: ErrMalformed, msg: fmt.Sprintf("facelet string must be 54 characters, got %d", len(s))}
	}
	var counts [6]int
	for i := 0; i < 54; i++ {
		c, ok := ColorFromByte(s[i])
		if !ok {
			return fc, &SolverError{Code: ErrMalformed, msg: fmt.Sprintf("invalid facelet character %q at position %d", s[i], i)}
		}
		fc.F[i] = c
		counts[c]++
	}
	for _, n := range counts {
		if n != 9 {
			return fc, &SolverError{Code: ErrMalformed, msg: "each color must appear exactly 9 times"}
		}
	}
	return fc, nil
}

// String renders the FaceCube back to its 54-character facelet
// string.
func (fc FaceCube) String() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, c := range fc.F {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ToCubieCube converts a FaceCube to a CubieCube by matching each
// corner/edge position's observed sticker colors against the
// canonical corner/edge color tables. The result is not validated;
// callers should call CubieCube.Verify before using it for a solve.
func (fc *FaceCube) ToCubieCube() CubieCube {
	var cc CubieCube

	for i := 0; i < 8; i++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			col := fc.F[cornerFacelet[i][ori]]
			if col == U || col == D {
				break
			}
		}
		color1 := fc.F[cornerFacelet[i][(ori+1)%3]]
		color2 := fc.F[cornerFacelet[i][(ori+2)%3]]
		for j := 0; j < 8; j++ {
			if color1 == cornerColor[j][1] && color2 == cornerColor[j][2] {
				cc.CP[i] = Corner(j)
				cc.CO[i] = ori
				break
			}
		}
	}

	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if fc.F[edgeFacelet[i][0]] == edgeColor[j][0] && fc.F[edgeFacelet[i][1]] == edgeColor[j][1] {
				cc.EP[i] = Edge(j)
				cc.EO[i] = 0
				break
			}
			if fc.F[edgeFacelet[i][0]] == edgeColor[j][1] && fc.F[edgeFacelet[i][1]] == edgeColor[j][0] {
				cc.EP[i] = Edge(j)
				cc.EO[i] = 1
				break
			}
		}
	}

	return cc
}

// ToFaceCube converts a CubieCube back to its facelet representation
// using the same corner/edge facelet and color tables.
func (cc *CubieCube) ToFaceCube() FaceCube {
	fc := SolvedFaceCube() // centre facelets never move
	for i := 0; i < 8; i++ {
		j := cc.CP[i]
		ori := cc.CO[i]
		for k := 0; k < 3; k++ {
			fc.F[cornerFacelet[i][(k+ori)%3]] = cornerColor[j][k]
		}
	}
	for i := 0; i < 12; i++ {
		j := cc.EP[i]
		ori := cc.EO[i]
		for k := 0; k < 2; k++ {
			fc.F[edgeFacelet[i][(k+ori)%2]] = edgeColor[j][k]
		}
	}
	return fc
}
