package bot

import (
	"testing"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMovesEmptyBoard(t *testing.T) {
	moves := GenerateMoves(domain.NewBoard(), domain.Player1)
	assert.Len(t, moves, domain.Cells)
	assert.Equal(t, mv(0, 0), moves[0])
}

func TestGenerateMovesNeverForbidden(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		b := scatteredBoard(seed, 70)
		before := *b
		for _, mover := range []domain.PlayerID{domain.Player1, domain.Player2} {
			for _, m := range GenerateMoves(b, mover) {
				require.True(t, b.IsEmpty(m))
				assert.False(t, domain.WouldBeForbidden(b, m, mover), "seed %d move %+v", seed, m)
			}
		}
		assert.Equal(t, before, *b)
	}
}

func TestGenerateMovesExcludesGapFill(t *testing.T) {
	b := domain.NewBoard()
	b.Place(mv(3, 0), domain.Player1)
	b.Place(mv(3, 1), domain.Player1)
	b.Place(mv(3, 3), domain.Player1)

	assert.NotContains(t, GenerateMoves(b, domain.Player1), mv(3, 2))
	assert.Contains(t, GenerateMoves(b, domain.Player2), mv(3, 2))
}

func TestGenerateMovesFullBoard(t *testing.T) {
	b := stripedBoard()
	assert.Empty(t, GenerateMoves(b, domain.Player1))
	assert.Empty(t, GenerateMoves(b, domain.Player2))
}

// forfeitBoard leaves (3,0) as the only empty cell; Player1 filling it joins
// the runs at x=0..2 and x=4..5 on the y=0 row.
func forfeitBoard(t *testing.T) *domain.Board {
	b := stripedBoard()
	b.Place(mv(2, 0), domain.Player1)
	b.Clear(mv(3, 0))

	for idx := 0; idx < domain.Cells; idx++ {
		m := domain.MoveFromIndex(idx)
		require.False(t, domain.IsForbidden(b, m), "fixture already has a forbidden run at %+v", m)
	}
	require.Equal(t, 1, b.CountEmpty())
	return b
}

func TestGenerateMovesAllForbidden(t *testing.T) {
	b := forfeitBoard(t)
	assert.Empty(t, GenerateMoves(b, domain.Player1))
	assert.Equal(t, []domain.Move{mv(3, 0)}, GenerateMoves(b, domain.Player2))
}
