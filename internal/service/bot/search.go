package bot

import (
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"golang.org/x/exp/slices"
)

// SentinelScore marks a candidate whose subtree ran out of time. It sorts
// below every real score so such a move is never preferred.
const SentinelScore = -1000000000

// Result is what a search call hands back to its parent. A result is either
// trusted, or expired because the deadline passed somewhere in the subtree.
type Result struct {
	score   int
	expired bool
}

func trusted(score int) Result {
	return Result{score: score}
}

func expired(best int) Result {
	return Result{score: best, expired: true}
}

// Value returns the score and true for a trusted result. An expired result
// yields false and its score must not be used for ranking.
func (r Result) Value() (int, bool) {
	if r.expired {
		return 0, false
	}
	return r.score, true
}

func (r Result) Expired() bool {
	return r.expired
}

type candidate struct {
	move  domain.Move
	score int
}

// rank scores every move for mover and sorts best first. Ties keep the
// input order.
func rank(b *domain.Board, moves []domain.Move, mover domain.PlayerID) []candidate {
	ranked := make([]candidate, len(moves))
	for i, m := range moves {
		ranked[i] = candidate{move: m, score: Score(b, m, mover)}
	}
	sortCandidates(ranked)
	return ranked
}

func sortCandidates(c []candidate) {
	slices.SortStableFunc(c, func(a, b candidate) bool {
		return a.score > b.score
	})
}

// topN copies the best n candidates so rescoring them leaves ranked intact.
func topN(ranked []candidate, n int) []candidate {
	if n > len(ranked) {
		n = len(ranked)
	}
	beam := make([]candidate, n)
	copy(beam, ranked[:n])
	return beam
}

// without lists the ranked moves in order, minus m.
func without(ranked []candidate, m domain.Move) []domain.Move {
	rest := make([]domain.Move, 0, len(ranked)-1)
	for _, c := range ranked {
		if c.move != m {
			rest = append(rest, c.move)
		}
	}
	return rest
}

// searcher holds the per-decision state shared by every recursion level.
type searcher struct {
	board    *domain.Board
	now      func() time.Time
	deadline time.Time
	beam     int
}

func (s *searcher) timeUp() bool {
	return s.now().After(s.deadline)
}

// simulate refines a position for mover by looking depth plies ahead over
// the candidate moves inherited from the parent.
func (s *searcher) simulate(depth int, mover domain.PlayerID, moves []domain.Move) Result {
	if len(moves) == 0 || depth == 0 {
		return trusted(0)
	}
	if s.timeUp() {
		return expired(0)
	}

	ranked := rank(s.board, moves, mover)
	beam := topN(ranked, s.beam)
	_, timedOut := s.expand(beam, ranked, depth-1, mover)

	if timedOut {
		return expired(beam[0].score)
	}
	return trusted(beam[0].score)
}

// expand plays each beam candidate for mover, searches the reply childDepth
// plies deep and subtracts the reply's score. After the first expired child
// the remaining candidates are sentineled without being searched. The beam
// is re-sorted on return; visited counts the candidates searched in time.
func (s *searcher) expand(beam, ranked []candidate, childDepth int, mover domain.PlayerID) (visited int, timedOut bool) {
	for i := range beam {
		if timedOut {
			beam[i].score = SentinelScore
			continue
		}

		child := s.descend(beam[i].move, mover, childDepth, without(ranked, beam[i].move))
		reply, ok := child.Value()
		if !ok {
			timedOut = true
			beam[i].score = SentinelScore
			continue
		}
		beam[i].score -= reply
		visited++
	}
	sortCandidates(beam)
	return visited, timedOut
}

func (s *searcher) descend(m domain.Move, mover domain.PlayerID, depth int, remaining []domain.Move) Result {
	undo := s.board.Probe(m, mover)
	defer undo()
	return s.simulate(depth, mover.Opponent(), remaining)
}
