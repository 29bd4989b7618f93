package cube

import (
	"reflect"
	"testing"
)

func TestMoveString(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{Move{R, 1}, "R"},
		{Move{R, 2}, "R2"},
		{Move{R, 3}, "R'"},
		{Move{U, 1}, "U"},
		{Move{B, 2}, "B2"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.m, got, c.want)
		}
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'", "D", "L", "B'"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("ParseMove(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseMoveRejectsUnknownFace(t *testing.T) {
	if _, err := ParseMove("X"); err == nil {
		t.Fatal("expected error for unknown face")
	}
}

func TestParseMoveRejectsUnknownModifier(t *testing.T) {
	if _, err := ParseMove("R3"); err == nil {
		t.Fatal("expected error for unknown modifier")
	}
}

func TestParseMoveRejectsEmpty(t *testing.T) {
	if _, err := ParseMove(""); err == nil {
		t.Fatal("expected error for empty notation")
	}
}

func TestParseMovesAndFormatMoves(t *testing.T) {
	seq := "R U R' U'"
	moves, err := ParseMoves(seq)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", seq, err)
	}
	want := []Move{{R, 1}, {U, 1}, {R, 3}, {U, 3}}
	if !reflect.DeepEqual(moves, want) {
		t.Fatalf("ParseMoves(%q) = %+v, want %+v", seq, moves, want)
	}
	if got := FormatMoves(moves); got != seq {
		t.Fatalf("FormatMoves = %q, want %q", got, seq)
	}
}

func TestOptimizeMovesMergesSameFace(t *testing.T) {
	in := []Move{{R, 1}, {R, 1}}
	want := []Move{{R, 2}}
	got := OptimizeMoves(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OptimizeMoves(R R) = %+v, want %+v", got, want)
	}
}

func TestOptimizeMovesCancelsToIdentity(t *testing.T) {
	in := []Move{{R, 2}, {R, 2}}
	got := OptimizeMoves(in)
	if len(got) != 0 {
		t.Fatalf("OptimizeMoves(R2 R2) = %+v, want empty", got)
	}
}

func TestOptimizeMovesThreeQuarterTurnsBecomeReverse(t *testing.T) {
	in := []Move{{R, 1}, {R, 1}, {R, 1}}
	want := []Move{{R, 3}}
	got := OptimizeMoves(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OptimizeMoves(R R R) = %+v, want %+v", got, want)
	}
}

func TestOptimizeMovesDoesNotMergeAcrossOtherFace(t *testing.T) {
	in := []Move{{R, 1}, {U, 1}, {R, 1}}
	got := OptimizeMoves(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("OptimizeMoves(R U R) = %+v, want unchanged %+v", got, in)
	}
}

func TestOptimizeMovesEmpty(t *testing.T) {
	got := OptimizeMoves(nil)
	if len(got) != 0 {
		t.Fatalf("OptimizeMoves(nil) = %+v, want empty", got)
	}
}
