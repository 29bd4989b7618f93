package cube

import (
	"context"
	"fmt"
)

// Tables bundles the move and pruning tables a Solver needs. Building
// them is expensive (internal/tablecache exists so callers only pay
// that cost once per process), but a built set is read-only and safe
// to share across concurrently running Solver instances.
type Tables struct {
	Move  *MoveTables
	Prune *PruningTables
}

// BuildTables constructs a fresh Tables from scratch.
func BuildTables() *Tables {
	mt := BuildMoveTables()
	return &Tables{Move: mt, Prune: BuildPruningTables(mt)}
}

// maxSolverDepth bounds the move stacks used during the recursive
// search. 31 plies comfortably covers any two-phase solution; God's
// Number for the full group is 20.
const maxSolverDepth = 31

// Move is one ply of a solution: a quarter, half, or reverse-quarter
// turn of a face.
type Move struct {
	Face  Color
	Power int // 1 = clockwise quarter, 2 = half turn, 3 = counterclockwise quarter
}

// Index returns the move's position in the 18-move alphabet, 3*face+(power-1).
func (m Move) Index() int { return 3*int(m.Face) + (m.Power - 1) }

// solver holds the mutable search state for one Solve/SolveAll call.
// Not safe for concurrent use; callers needing concurrent solves
// create one solver per goroutine, sharing only the read-only Tables.
type solver struct {
	tables *Tables

	face  [maxSolverDepth]Color
	power [maxSolverDepth]int

	twist, flip, udslice [maxSolverDepth]int
	corner, edge4, edge8 [maxSolverDepth]int
	minDist1, minDist2   [maxSolverDepth]int

	// running holds the exact cubie-level state through phase 1,
	// advanced by each node's move (power generator multiplies). This replaces the
	// reference implementation's approach of replaying every phase-1
	// move from scratch via CubieCube.Multiply when phase 2 begins:
	// edge4/edge8/corner are read directly off running at the G1
	// node with no replay loop and no need for a second, unmasked
	// copy of the edge4/edge8/corner move tables.
	running [maxSolverDepth]CubieCube

	maxLength int
}

// newSolver seeds search state from a starting CubieCube.
func newSolver(tables *Tables, start CubieCube) *solver {
	s := &solver{tables: tables}
	s.running[0] = start
	c := FromCubieCube(&start)
	s.twist[0], s.flip[0], s.udslice[0] = c.Twist, c.Flip, c.UDSlice
	s.corner[0], s.edge4[0], s.edge8[0] = c.Corner, c.Edge4, c.Edge8
	s.minDist1[0] = s.phase1Cost(0)
	return s
}

func (s *solver) phase1Cost(n int) int {
	p := s.tables.Prune
	a := p.UDSliceTwist[s.udslice[n]*NTwist+s.twist[n]]
	b := p.UDSliceFlip[s.udslice[n]*NFlip+s.flip[n]]
	if a > b {
		return a
	}
	return b
}

func (s *solver) phase2Cost(n int) int {
	p := s.tables.Prune
	a := p.Edge4Corner[s.edge4[n]*NCorner+s.corner[n]]
	b := p.Edge4Edge8[s.edge4[n]*NEdge8+s.edge8[n]]
	if a > b {
		return a
	}
	return b
}

func (s *solver) solution(n int) []Move {
	out := make([]Move, n)
	for i := 0; i < n; i++ {
		out[i] = Move{Face: s.face[i], Power: s.power[i]}
	}
	return out
}

// sameOrRedundantAxis is the move-pruning rule: never turn the same
// face twice in a row, and never turn face i after its opposite face
// i+3 has already been turned (since the two commute, the lower
// index is canonically ordered first).
func sameOrRedundantAxis(prevFace, i int) bool {
	return prevFace == i || prevFace == i+3
}

// phase1Search searches for a sequence of n..depth further moves
// reaching G1 (twist=flip=udslice=0), returning the total solution
// length found, or -1 if none exists at this depth, or -2 on
// cancellation.
func (s *solver) phase1Search(ctx context.Context, n, depth int) int {
	select {
	case <-ctx.Done():
		return -2
	default:
	}

	if s.minDist1[n] == 0 {
		return s.phase2Start(ctx, n)
	}
	if s.minDist1[n] > depth {
		return -1
	}

	for i := 0; i < 6; i++ {
		if n > 0 && sameOrRedundantAxis(int(s.face[n-1]), i) {
			continue
		}
		for j := 1; j <= 3; j++ {
			s.face[n] = Color(i)
			s.power[n] = j
			mv := 3*i + j - 1

			s.twist[n+1] = s.tables.Move.Twist[s.twist[n]][mv]
			s.flip[n+1] = s.tables.Move.Flip[s.flip[n]][mv]
			s.udslice[n+1] = s.tables.Move.UDSlice[s.udslice[n]][mv]
			s.minDist1[n+1] = s.phase1Cost(n + 1)

			s.running[n+1] = s.running[n]
			s.running[n+1].ApplyMoveGenerator(Color(i), j)

			m := s.phase1Search(ctx, n+1, depth-1)
			if m >= 0 || m == -2 {
				return m
			}
		}
	}
	return -1
}

// phase2Start reads edge4/edge8/corner directly from the exact
// cubie-level state accumulated in s.running (see the field comment)
// and runs phase 2's own IDA* from there.
func (s *solver) phase2Start(ctx context.Context, n int) int {
	select {
	case <-ctx.Done():
		return -2
	default:
	}

	s.edge4[n] = s.running[n].Edge4()
	s.edge8[n] = s.running[n].Edge8()
	s.corner[n] = s.running[n].CornerCoord()
	s.minDist2[n] = s.phase2Cost(n)

	for depth := 0; depth <= s.maxLength-n; depth++ {
		m := s.phase2Search(ctx, n, depth)
		if m >= 0 || m == -2 {
			return m
		}
	}
	return -1
}

func (s *solver) phase2Search(ctx context.Context, n, depth int) int {
	select {
	case <-ctx.Done():
		return -2
	default:
	}

	if s.minDist2[n] == 0 {
		return n
	}
	if s.minDist2[n] > depth {
		return -1
	}

	for i := 0; i < 6; i++ {
		if n > 0 && sameOrRedundantAxis(int(s.face[n-1]), i) {
			continue
		}
		for j := 1; j <= 3; j++ {
			if !isPhase2Move(i, j) {
				continue
			}
			s.face[n] = Color(i)
			s.power[n] = j
			mv := 3*i + j - 1

			s.edge4[n+1] = s.tables.Move.Edge4[s.edge4[n]][mv]
			s.edge8[n+1] = s.tables.Move.Edge8[s.edge8[n]][mv]
			s.corner[n+1] = s.tables.Move.Corner[s.corner[n]][mv]
			s.minDist2[n+1] = s.phase2Cost(n + 1)

			m := s.phase2Search(ctx, n+1, depth-1)
			if m >= 0 || m == -2 {
				return m
			}
		}
	}
	return -1
}

// Solve finds a shortest-effort solution to the cube described by
// facelets, no longer than maxLength moves, stopping early if ctx is
// cancelled or its deadline passes. It does not guarantee an optimal
// solution: two-phase search trades optimality for speed, same as
// Kociemba's algorithm always has.
func Solve(ctx context.Context, tables *Tables, facelets string, maxLength int) ([]Move, error) {
	fc, err := ParseFaceletString(facelets)
	if err != nil {
		return nil, err
	}
	cc := fc.ToCubieCube()
	if code := cc.Verify(); code != OK {
		return nil, &SolverError{Code: code}
	}

	s := newSolver(tables, cc)
	s.maxLength = maxLength

	for depth := 0; depth < maxLength; depth++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		n := s.phase1Search(ctx, 0, depth)
		if n == -2 {
			return nil, ctx.Err()
		}
		if n >= 0 {
			return s.solution(n), nil
		}
	}
	return nil, fmt.Errorf("no solution found within %d moves", maxLength)
}

// SolveAll returns a channel yielding progressively shorter
// solutions to facelets as phase1Search's iterative-deepening finds
// them, closing the channel once no shorter solution exists or ctx
// is done. This mirrors the reference solver's behavior of
// tightening max_length after each find, exposed here as a lazy
// sequence instead of a print loop.
func SolveAll(ctx context.Context, tables *Tables, facelets string, maxLength int) (<-chan []Move, error) {
	fc, err := ParseFaceletString(facelets)
	if err != nil {
		return nil, err
	}
	cc := fc.ToCubieCube()
	if code := cc.Verify(); code != OK {
		return nil, &SolverError{Code: code}
	}

	out := make(chan []Move)
	go func() {
		defer close(out)
		bound := maxLength
		for bound > 0 {
			s := newSolver(tables, cc)
			s.maxLength = bound

			found := -1
			for depth := 0; depth < bound; depth++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				n := s.phase1Search(ctx, 0, depth)
				if n == -2 {
					return
				}
				if n >= 0 {
					found = n
					break
				}
			}
			if found < 0 {
				return
			}
			sol := s.solution(found)
			select {
			case out <- sol:
			case <-ctx.Done():
				return
			}
			bound = found - 1
		}
	}()
	return out, nil
}
