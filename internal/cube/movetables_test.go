package cube

import "testing"

func TestIsPhase2Move(t *testing.T) {
	cases := []struct {
		face, power int
		want        bool
	}{
		{int(U), 1, true},
		{int(U), 2, true},
		{int(U), 3, true},
		{int(D), 1, true},
		{int(D), 2, true},
		{int(D), 3, true},
		{int(R), 1, false},
		{int(R), 2, true},
		{int(R), 3, false},
		{int(F), 1, false},
		{int(F), 2, true},
		{int(F), 3, false},
		{int(L), 1, false},
		{int(L), 2, true},
		{int(L), 3, false},
		{int(B), 1, false},
		{int(B), 2, true},
		{int(B), 3, false},
	}
	for _, c := range cases {
		if got := isPhase2Move(c.face, c.power); got != c.want {
			t.Errorf("isPhase2Move(%d,%d) = %v, want %v", c.face, c.power, got, c.want)
		}
	}
}

func TestMoveTablesDimensions(t *testing.T) {
	mt := BuildMoveTables()
	if len(mt.Twist) != NTwist {
		t.Errorf("len(Twist) = %d, want %d", len(mt.Twist), NTwist)
	}
	if len(mt.Flip) != NFlip {
		t.Errorf("len(Flip) = %d, want %d", len(mt.Flip), NFlip)
	}
	if len(mt.UDSlice) != NUDSlice {
		t.Errorf("len(UDSlice) = %d, want %d", len(mt.UDSlice), NUDSlice)
	}
	if len(mt.Edge4) != NEdge4 {
		t.Errorf("len(Edge4) = %d, want %d", len(mt.Edge4), NEdge4)
	}
}

func TestMoveTablesFourQuarterTurnsReturnHome(t *testing.T) {
	mt := BuildMoveTables()
	for face := 0; face < 6; face++ {
		mv := 3 * face // quarter turn, power 1
		v := 0
		for i := 0; i < 4; i++ {
			v = mt.Twist[v][mv]
		}
		if v != 0 {
			t.Errorf("face %d: four quarter turns on twist table did not return to 0, got %d", face, v)
		}
	}
}

func TestMoveTablesHalfTurnTwiceIsIdentity(t *testing.T) {
	mt := BuildMoveTables()
	for face := 0; face < 6; face++ {
		mv := 3*face + 1 // half turn, power 2
		v := mt.Flip[0][mv]
		v = mt.Flip[v][mv]
		if v != 0 {
			t.Errorf("face %d: two half turns on flip table did not return to 0, got %d", face, v)
		}
	}
}

func TestMoveTablesAgreeWithDirectApplication(t *testing.T) {
	mt := BuildMoveTables()

	start := 1093 // arbitrary non-zero twist coordinate
	var cc CubieCube
	cc.SetTwist(start)

	for face := 0; face < 6; face++ {
		for power := 1; power <= 3; power++ {
			a := cc
			a.ApplyMoveGenerator(Color(face), power)
			want := a.Twist()

			mv := 3*face + (power - 1)
			if got := mt.Twist[start][mv]; got != want {
				t.Errorf("face %d power %d: move table gives %d, direct application gives %d", face, power, got, want)
			}
		}
	}
}

func TestEdge4MoveTableHasSentinelsOnNonPhase2Moves(t *testing.T) {
	mt := BuildMoveTables()
	for i := 0; i < NEdge4; i++ {
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				mv := 3*face + (power - 1)
				got := mt.Edge4[i][mv]
				if isPhase2Move(face, power) {
					if got == -1 {
						t.Errorf("Edge4[%d][%d]: legal phase-2 move marked -1", i, mv)
					}
				} else if got != -1 {
					t.Errorf("Edge4[%d][%d] = %d, want -1 for a disallowed phase-2 move", i, mv, got)
				}
			}
		}
	}
}
