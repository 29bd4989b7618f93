package cube

import (
	"fmt"
	"strings"
)

// String renders a Move in standard cube notation: face letter, then
// "2" for a half turn or "'" for a counterclockwise quarter turn.
func (m Move) String() string {
	switch m.Power {
	case 1:
		return m.Face.String()
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	default:
		return fmt.Sprintf("%s(%d)", m.Face, m.Power)
	}
}

// FormatMoves renders a move sequence as space-separated notation,
// e.g. "R U R' U'".
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseMove parses a single move in standard notation: a face letter
// optionally followed by "2" or "'".
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return Move{}, fmt.Errorf("empty move notation")
	}

	var face Color
	switch notation[0] {
	case 'U':
		face = U
	case 'R':
		face = R
	case 'F':
		face = F
	case 'D':
		face = D
	case 'L':
		face = L
	case 'B':
		face = B
	default:
		return Move{}, fmt.Errorf("unknown face in move notation: %s", notation)
	}

	suffix := notation[1:]
	power := 1
	switch suffix {
	case "":
		power = 1
	case "2":
		power = 2
	case "'":
		power = 3
	default:
		return Move{}, fmt.Errorf("unknown move modifier in notation: %s", notation)
	}

	return Move{Face: face, Power: power}, nil
}

// ParseMoves parses a whitespace-separated move sequence.
func ParseMoves(sequence string) ([]Move, error) {
	fields := strings.Fields(sequence)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// OptimizeMoves combines consecutive turns of the same face into a
// single move (R R -> R2, R R R -> R', R2 R2 -> cancel) and drops
// moves that cancel to the identity. It does not reorder moves, so
// it will not merge turns of the same face separated by a turn of any
// other face, even the commuting opposite face (R L R stays as is).
func OptimizeMoves(moves []Move) []Move {
	if len(moves) == 0 {
		return moves
	}

	optimized := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(optimized) > 0 && optimized[len(optimized)-1].Face == m.Face {
			last := &optimized[len(optimized)-1]
			total := (last.Power + m.Power) % 4
			if total == 0 {
				optimized = optimized[:len(optimized)-1]
			} else {
				last.Power = total
			}
			continue
		}
		optimized = append(optimized, m)
	}
	return optimized
}
