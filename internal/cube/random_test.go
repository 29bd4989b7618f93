package cube

import "testing"

func TestRandomCubeIsSolvable(t *testing.T) {
	for i := 0; i < 20; i++ {
		s := RandomCube()
		if len(s) != 54 {
			t.Fatalf("RandomCube() length = %d, want 54", len(s))
		}
		if code := Verify(s); code != OK {
			t.Fatalf("RandomCube() produced unsolvable cube %q: %v", s, code)
		}
	}
}

func TestRandomCubeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[RandomCube()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("RandomCube() produced the same facelet string %d times in a row", 10)
	}
}
