package bot

import (
	"testing"
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeamWidthForTurn(t *testing.T) {
	assert.Equal(t, 10, BeamWidthForTurn(0))
	assert.Equal(t, 10, BeamWidthForTurn(34))
	assert.Equal(t, 12, BeamWidthForTurn(35))
	assert.Equal(t, 12, BeamWidthForTurn(44))
	assert.Equal(t, 15, BeamWidthForTurn(45))
	assert.Equal(t, 15, BeamWidthForTurn(60))
}

func TestChooseBestMoveEmptyBoardPicksCorner(t *testing.T) {
	e := NewEngine(WithClock(frozenClock()))
	b := domain.NewBoard()

	d := e.ChooseBestMove(b, domain.Player1, Params{Depth: 0, BeamWidth: DefaultBeamWidth})
	require.False(t, d.Forfeit)
	assert.GreaterOrEqual(t, positionalWeight(d.Move), SCORE_NEAR_CORNER)
	assert.Equal(t, mv(0, 0), d.Move)
	assert.Equal(t, RootBeamWidth, d.Visited)
}

func TestChooseBestMoveDepthZeroIsStaticArgmax(t *testing.T) {
	e := NewEngine(WithClock(frozenClock()))

	for seed := int64(20); seed < 25; seed++ {
		b := scatteredBoard(seed, 50)

		best, bestScore := domain.NoMove, 0
		for i, m := range GenerateMoves(b, domain.Player1) {
			if s := Score(b, m, domain.Player1); i == 0 || s > bestScore {
				best, bestScore = m, s
			}
		}

		d := e.ChooseBestMove(b, domain.Player1, Params{Depth: 0, BeamWidth: DefaultBeamWidth})
		assert.Equal(t, best, d.Move, "seed %d", seed)
		assert.Equal(t, bestScore, d.Score, "seed %d", seed)
	}
}

func TestChooseBestMoveDeterministic(t *testing.T) {
	b := scatteredBoard(3, 30)
	params := Params{Depth: 2, BeamWidth: 4}

	first := NewEngine(WithClock(frozenClock())).ChooseBestMove(b, domain.Player1, params)
	second := NewEngine(WithClock(frozenClock())).ChooseBestMove(b, domain.Player1, params)

	assert.Equal(t, first, second)
	assert.False(t, domain.WouldBeForbidden(b, first.Move, domain.Player1))
}

func TestChooseBestMoveRestoresBoard(t *testing.T) {
	b := scatteredBoard(5, 36)
	before := *b

	NewEngine(WithClock(frozenClock())).ChooseBestMove(b, domain.Player1, Params{Depth: 2, BeamWidth: 5})
	assert.Equal(t, before, *b)
}

func TestChooseBestMoveForfeit(t *testing.T) {
	b := forfeitBoard(t)
	before := *b

	d := NewEngine().ChooseBestMove(b, domain.Player1, Params{Depth: DefaultDepth, BeamWidth: DefaultBeamWidth})
	assert.True(t, d.Forfeit)
	assert.Equal(t, domain.NoMove, d.Move)
	assert.Equal(t, 0, d.Visited)
	assert.Equal(t, before, *b)
}

func TestChooseBestMoveDegradesOnTimeout(t *testing.T) {
	b := scatteredBoard(9, 20)
	before := *b
	clock := &stepClock{t: time.Unix(0, 0), step: 50 * time.Millisecond}

	d := NewEngine(WithClock(clock.Now)).ChooseBestMove(b, domain.Player1, Params{Depth: 2, BeamWidth: DefaultBeamWidth})

	require.False(t, d.Forfeit)
	assert.Contains(t, GenerateMoves(b, domain.Player1), d.Move)
	assert.GreaterOrEqual(t, d.Visited, 1)
	assert.Less(t, d.Visited, RootBeamWidth)
	assert.Greater(t, d.Score, SentinelScore)
	assert.Greater(t, d.Elapsed, TimeBudget)
	assert.Equal(t, before, *b, "board must be restored after a timed out search")
}

func TestChooseBestMoveImmediateTimeoutStillAnswers(t *testing.T) {
	b := scatteredBoard(4, 20)
	clock := &stepClock{t: time.Unix(0, 0), step: 2 * TimeBudget}

	d := NewEngine(WithClock(clock.Now)).ChooseBestMove(b, domain.Player1, Params{Depth: 3, BeamWidth: DefaultBeamWidth})

	require.False(t, d.Forfeit)
	assert.Equal(t, 0, d.Visited)
	assert.Equal(t, SentinelScore, d.Score)

	// every root candidate was sentineled, so the static ordering decides
	ranked := rank(b, GenerateMoves(b, domain.Player1), domain.Player1)
	assert.Equal(t, ranked[0].move, d.Move)
}

func TestSimulateExpiredAtEntry(t *testing.T) {
	b := domain.NewBoard()
	s := &searcher{
		board:    b,
		now:      frozenClock(),
		deadline: time.Unix(0, 0).Add(-time.Millisecond),
		beam:     DefaultBeamWidth,
	}

	r := s.simulate(2, domain.Player1, GenerateMoves(b, domain.Player1))
	assert.True(t, r.Expired())
	_, ok := r.Value()
	assert.False(t, ok)

	// depth exhaustion wins over the deadline
	r = s.simulate(0, domain.Player1, GenerateMoves(b, domain.Player1))
	score, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestSimulateNegamaxSign(t *testing.T) {
	b := scatteredBoard(13, 24)
	before := *b
	s := &searcher{board: b, now: frozenClock(), deadline: time.Unix(0, 0), beam: 3}

	moves := GenerateMoves(b, domain.Player1)
	ranked := rank(b, moves, domain.Player1)
	beam := topN(ranked, 3)

	got, ok := s.simulate(2, domain.Player1, moves).Value()
	require.True(t, ok)

	// rebuild the same answer one ply at a time
	want := SentinelScore
	for _, c := range beam {
		undo := b.Probe(c.move, domain.Player1)
		reply, ok := s.simulate(1, domain.Player2, without(ranked, c.move)).Value()
		undo()
		require.True(t, ok)
		if c.score-reply > want {
			want = c.score - reply
		}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, before, *b)
}
