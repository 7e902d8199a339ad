package bot

import (
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
)

const (
	// Positional bands, strictly decreasing away from the border
	SCORE_CORNER      = 15000
	SCORE_NEAR_CORNER = 10000
	SCORE_EDGE        = 2000
	SCORE_SECOND_RING = 1100

	// Pattern terms
	SCORE_LOSE          = -1000000 // the placement completes a forbidden run
	SCORE_DEAD_END      = 800      // boxed into a short run that can never reach four
	SCORE_GAPPED_TRIPLE = -10000   // three of ours and one hole inside a four-cell window

	lookahead = domain.ForbiddenRun - 1
)

// Score rates placing mover on the empty cell m. The piece is probed and
// removed again, so the board is unchanged on return.
func Score(b *domain.Board, m domain.Move, mover domain.PlayerID) int {
	undo := b.Probe(m, mover)
	score := positionalWeight(m) + patternScore(b, m, mover)
	undo()

	// the same cell seen from the opponent's side, without its positional weight
	opponent := mover.Opponent()
	undo = b.Probe(m, opponent)
	score += patternScore(b, m, opponent)
	undo()

	return score
}

// positionalWeight favors the border, where fewer directions can ever line up four.
func positionalWeight(m domain.Move) int {
	last := domain.BoardSize - 1
	onX := m.X == 0 || m.X == last
	onY := m.Y == 0 || m.Y == last

	score := 0
	if onX && onY {
		score += SCORE_CORNER
	}
	if (onX && (m.Y == 1 || m.Y == last-1)) || (onY && (m.X == 1 || m.X == last-1)) {
		score += SCORE_NEAR_CORNER
	}

	switch {
	case onX || onY:
		score += SCORE_EDGE
	case m.X == 1 || m.X == last-1 || m.Y == 1 || m.Y == last-1:
		score += SCORE_SECOND_RING
	}
	return score
}

// patternScore evaluates the alignment patterns around m, which must
// already hold p's piece.
func patternScore(b *domain.Board, m domain.Move, p domain.PlayerID) int {
	score := 0
	for _, d := range domain.Directions {
		score += runScore(b, m, d, p)
		score += gappedTripleScore(b, m, d, p)
	}
	return score
}

// runScore looks up to three cells both ways along d.
func runScore(b *domain.Board, m domain.Move, d domain.Direction, p domain.PlayerID) int {
	count, run, spaces := 1, 1, 0

	for _, sign := range [2]int{1, -1} {
		contiguous := true
		for i := 1; i <= lookahead; i++ {
			x, y := m.X+sign*d.DX*i, m.Y+sign*d.DY*i
			if !domain.InBounds(x, y) {
				continue
			}
			cell := b.At(x, y)
			if cell == p {
				count++
				if contiguous {
					run++
				}
			} else if cell == domain.Empty {
				spaces++
				contiguous = false
			} else {
				break
			}
		}
	}

	score := 0
	if run >= domain.ForbiddenRun {
		score += SCORE_LOSE
	}
	if count+spaces <= lookahead {
		score += SCORE_DEAD_END
	}
	return score
}

// gappedTripleScore penalizes every on-board four-cell window through m whose
// other three cells are two of p's pieces and one empty cell. Whoever fills
// that hole is forced into a forbidden four.
func gappedTripleScore(b *domain.Board, m domain.Move, d domain.Direction, p domain.PlayerID) int {
	score := 0
	for start := -lookahead; start <= 0; start++ {
		end := start + lookahead
		if !domain.InBounds(m.X+d.DX*start, m.Y+d.DY*start) || !domain.InBounds(m.X+d.DX*end, m.Y+d.DY*end) {
			continue
		}

		own, empty := 0, 0
		for i := start; i <= end; i++ {
			if i == 0 {
				continue
			}
			switch b.At(m.X+d.DX*i, m.Y+d.DY*i) {
			case p:
				own++
			case domain.Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			score += SCORE_GAPPED_TRIPLE
		}
	}
	return score
}
