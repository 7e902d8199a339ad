package bot

import (
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
)

// GenerateMoves returns every empty cell where mover may legally play, in
// row-major order. An empty result means mover is forced to forfeit.
func GenerateMoves(b *domain.Board, mover domain.PlayerID) []domain.Move {
	moves := make([]domain.Move, 0, domain.Cells)
	for idx := 0; idx < domain.Cells; idx++ {
		m := domain.MoveFromIndex(idx)
		if !b.IsEmpty(m) {
			continue
		}
		if !domain.WouldBeForbidden(b, m, mover) {
			moves = append(moves, m)
		}
	}
	return moves
}
