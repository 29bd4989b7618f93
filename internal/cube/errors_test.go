package cube

import "testing"

func TestVerifyCodeStrings(t *testing.T) {
	cases := []struct {
		code VerifyCode
		want string
	}{
		{OK, "solvable"},
		{ErrMalformed, "facelet string malformed"},
		{ErrEdgeMultiset, "edge multiset invalid"},
		{ErrEdgeFlip, "odd edge-orientation sum"},
		{ErrCornerMultiset, "corner multiset invalid"},
		{ErrCornerTwist, "corner-orientation sum not divisible by 3"},
		{ErrParity, "corner/edge parity mismatch"},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestVerifySolvedIsOK(t *testing.T) {
	if code := Verify(solvedFacelets); code != OK {
		t.Fatalf("Verify(solved) = %v, want OK", code)
	}
}

func TestVerifyMalformedLength(t *testing.T) {
	if code := Verify("UUU"); code != ErrMalformed {
		t.Fatalf("Verify(short string) = %v, want ErrMalformed", code)
	}
}

func TestVerifyEdgeMultiset(t *testing.T) {
	cc := Solved()
	cc.EP[0], cc.EP[1] = cc.EP[1], cc.EP[1] // duplicate UF in both slots
	if code := cc.Verify(); code != ErrEdgeMultiset {
		t.Fatalf("Verify() with duplicated edge = %v, want ErrEdgeMultiset", code)
	}
}

func TestVerifyEdgeFlip(t *testing.T) {
	cc := Solved()
	cc.EO[0] = 1 // odd total, no other change
	if code := cc.Verify(); code != ErrEdgeFlip {
		t.Fatalf("Verify() with odd flip sum = %v, want ErrEdgeFlip", code)
	}
}

func TestVerifyCornerMultiset(t *testing.T) {
	cc := Solved()
	cc.CP[0] = cc.CP[1] // duplicate corner, one position now unreachable
	if code := cc.Verify(); code != ErrCornerMultiset {
		t.Fatalf("Verify() with duplicated corner = %v, want ErrCornerMultiset", code)
	}
}

func TestVerifyCornerTwist(t *testing.T) {
	cc := Solved()
	cc.CO[0] = 1 // sum no longer divisible by 3
	if code := cc.Verify(); code != ErrCornerTwist {
		t.Fatalf("Verify() with bad twist sum = %v, want ErrCornerTwist", code)
	}
}

func TestVerifyParity(t *testing.T) {
	cc := Solved()
	// Swap two corners only: corner permutation becomes odd while edge
	// permutation stays even, violating the parity invariant.
	cc.CP[0], cc.CP[1] = cc.CP[1], cc.CP[0]
	if code := cc.Verify(); code != ErrParity {
		t.Fatalf("Verify() with mismatched parity = %v, want ErrParity", code)
	}
}
