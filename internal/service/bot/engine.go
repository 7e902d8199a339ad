package bot

import (
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
)

const (
	TimeBudget       = 980 * time.Millisecond
	DefaultDepth     = 4
	DefaultBeamWidth = 10
	RootBeamWidth    = 50
)

// BeamWidthForTurn widens the inner beam late in the match, when fewer
// cells remain and each level is cheaper.
func BeamWidthForTurn(turnID int) int {
	switch {
	case turnID >= 45:
		return 15
	case turnID >= 35:
		return 12
	default:
		return DefaultBeamWidth
	}
}

// Params are the tunables of a single decision.
type Params struct {
	Depth     int
	BeamWidth int
}

// Decision is the selector's answer. Everything except Move and Forfeit is
// diagnostic.
type Decision struct {
	Move    domain.Move
	Forfeit bool
	Score   int
	Depth   int
	Elapsed time.Duration
	Visited int // root candidates searched before the first timeout
}

type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock replaces the wall clock used for the time budget.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChooseBestMove picks the move for mover on b. The board is mutated during
// the search and is back to its original contents when this returns.
func (e *Engine) ChooseBestMove(b *domain.Board, mover domain.PlayerID, p Params) Decision {
	if p.BeamWidth <= 0 {
		p.BeamWidth = DefaultBeamWidth
	}
	if p.Depth < 0 {
		p.Depth = DefaultDepth
	}

	moves := GenerateMoves(b, mover)
	start := e.now()
	if len(moves) == 0 {
		return Decision{Move: domain.NoMove, Forfeit: true, Depth: p.Depth}
	}

	s := &searcher{
		board:    b,
		now:      e.now,
		deadline: start.Add(TimeBudget),
		beam:     p.BeamWidth,
	}

	ranked := rank(b, moves, mover)
	beam := topN(ranked, RootBeamWidth)
	visited, _ := s.expand(beam, ranked, p.Depth, mover)

	return Decision{
		Move:    beam[0].move,
		Score:   beam[0].score,
		Depth:   p.Depth,
		Elapsed: e.now().Sub(start),
		Visited: visited,
	}
}
