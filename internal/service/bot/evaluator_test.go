package bot

import (
	"testing"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionalWeightBands(t *testing.T) {
	corner := positionalWeight(mv(0, 0))
	nearCorner := positionalWeight(mv(0, 1))
	edge := positionalWeight(mv(0, 5))
	secondRing := positionalWeight(mv(1, 5))
	interior := positionalWeight(mv(5, 5))

	assert.Equal(t, SCORE_CORNER+SCORE_EDGE, corner)
	assert.Equal(t, SCORE_NEAR_CORNER+SCORE_EDGE, nearCorner)
	assert.Equal(t, SCORE_EDGE, edge)
	assert.Equal(t, SCORE_SECOND_RING, secondRing)
	assert.Equal(t, 0, interior)

	assert.Greater(t, corner, nearCorner)
	assert.Greater(t, nearCorner, edge)
	assert.Greater(t, edge, secondRing)
	assert.Greater(t, secondRing, interior)

	// the diagonal neighbour of a corner is only second ring
	assert.Equal(t, SCORE_SECOND_RING, positionalWeight(mv(1, 1)))
}

func TestScoreLeavesBoardUnchanged(t *testing.T) {
	b := scatteredBoard(7, 40)
	before := *b
	for _, m := range GenerateMoves(b, domain.Player1) {
		Score(b, m, domain.Player1)
		Score(b, m, domain.Player2)
	}
	assert.Equal(t, before, *b)
}

func TestScoreInvariantUnderSymmetry(t *testing.T) {
	b := scatteredBoard(11, 45)

	for name, tr := range symmetries {
		t.Run(name, func(t *testing.T) {
			mirrored := applyTransform(b, tr)
			for idx := 0; idx < domain.Cells; idx++ {
				m := domain.MoveFromIndex(idx)
				if !b.IsEmpty(m) {
					continue
				}
				for _, mover := range []domain.PlayerID{domain.Player1, domain.Player2} {
					require.Equal(t, Score(b, m, mover), Score(mirrored, tr(m), mover),
						"cell %+v mover %d", m, mover)
				}
			}
		})
	}
}

func TestScorePenalizesGapCell(t *testing.T) {
	b := domain.NewBoard()
	// X.XX on the x=5 row
	b.Place(mv(5, 2), domain.Player1)
	b.Place(mv(5, 4), domain.Player1)
	b.Place(mv(5, 5), domain.Player1)

	gap := Score(b, mv(5, 3), domain.Player1)
	unrelated := Score(b, mv(2, 8), domain.Player1)

	require.Equal(t, positionalWeight(mv(5, 3)), positionalWeight(mv(2, 8)))
	assert.Less(t, gap, unrelated+SCORE_LOSE/2)
}

func TestScorePenalizesGappedTriple(t *testing.T) {
	b := domain.NewBoard()
	b.Place(mv(5, 2), domain.Player1)
	b.Place(mv(5, 3), domain.Player1)

	// (5,5) completes XX.X with the hole at (5,4)
	triple := Score(b, mv(5, 5), domain.Player1)
	unrelated := Score(b, mv(2, 8), domain.Player1)

	assert.Equal(t, SCORE_GAPPED_TRIPLE, triple-unrelated)
}

func TestScoreDeadEndBonusInCorner(t *testing.T) {
	b := domain.NewBoard()
	// in the corner the anti-diagonal has no room at all, for both movers
	assert.Equal(t, SCORE_CORNER+SCORE_EDGE+2*SCORE_DEAD_END, Score(b, mv(0, 0), domain.Player1))
}

func TestScoreOpponentOverlay(t *testing.T) {
	b := domain.NewBoard()
	b.Place(mv(8, 2), domain.Player2)
	b.Place(mv(8, 3), domain.Player2)

	// Player2's gapped triple at (8,5) carries over into Player1's score
	contested := Score(b, mv(8, 5), domain.Player1)
	quiet := Score(b, mv(2, 8), domain.Player1)
	assert.Equal(t, SCORE_GAPPED_TRIPLE, contested-quiet)

	// (7,5) boxes Player2 in against the edge along the x axis
	b.Place(mv(7, 5), domain.Player1)
	assert.Equal(t, contested+SCORE_DEAD_END, Score(b, mv(8, 5), domain.Player1))
}
