package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
)

func mv(x, y int) domain.Move {
	return domain.Move{X: x, Y: y}
}

// stepClock advances by step on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func frozenClock() func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time { return t }
}

// scatteredBoard drops n pieces of alternating owners on distinct cells.
func scatteredBoard(seed int64, n int) *domain.Board {
	r := rand.New(rand.NewSource(seed))
	b := domain.NewBoard()
	owner := domain.Player1
	for placed := 0; placed < n; {
		m := domain.MoveFromIndex(r.Intn(domain.Cells))
		if !b.IsEmpty(m) {
			continue
		}
		b.Place(m, owner)
		owner = owner.Opponent()
		placed++
	}
	return b
}

// stripedBoard fills every cell with no run longer than two for either side.
func stripedBoard() *domain.Board {
	b := domain.NewBoard()
	for x := 0; x < domain.BoardSize; x++ {
		for y := 0; y < domain.BoardSize; y++ {
			p := domain.Player2
			if (x+2*y)%4 < 2 {
				p = domain.Player1
			}
			b.Place(mv(x, y), p)
		}
	}
	return b
}

type transform func(m domain.Move) domain.Move

var symmetries = map[string]transform{
	"identity":   func(m domain.Move) domain.Move { return m },
	"transpose":  func(m domain.Move) domain.Move { return mv(m.Y, m.X) },
	"flip-x":     func(m domain.Move) domain.Move { return mv(domain.BoardSize-1-m.X, m.Y) },
	"flip-y":     func(m domain.Move) domain.Move { return mv(m.X, domain.BoardSize-1-m.Y) },
	"rotate-180": func(m domain.Move) domain.Move { return mv(domain.BoardSize-1-m.X, domain.BoardSize-1-m.Y) },
	"rotate-90":  func(m domain.Move) domain.Move { return mv(m.Y, domain.BoardSize-1-m.X) },
	"rotate-270": func(m domain.Move) domain.Move { return mv(domain.BoardSize-1-m.Y, m.X) },
	"anti-diag":  func(m domain.Move) domain.Move { return mv(domain.BoardSize-1-m.Y, domain.BoardSize-1-m.X) },
}

func applyTransform(b *domain.Board, t transform) *domain.Board {
	out := domain.NewBoard()
	for idx := 0; idx < domain.Cells; idx++ {
		m := domain.MoveFromIndex(idx)
		if p := b.Get(m); p != domain.Empty {
			out.Place(t(m), p)
		}
	}
	return out
}
