package domain

import "strings"

// Board is the 11x11 grid. It is a value type: copying a Board snapshots it,
// and two boards compare equal with == when every cell matches.
type Board struct {
	cells [Cells]PlayerID
}

func NewBoard() *Board {
	return &Board{}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Get returns the occupant of m. m must be on the board.
func (b *Board) Get(m Move) PlayerID {
	return b.cells[m.Index()]
}

// At is Get for a raw coordinate pair.
func (b *Board) At(x, y int) PlayerID {
	return b.cells[x*BoardSize+y]
}

// Place puts p on m. The cell must be empty.
func (b *Board) Place(m Move, p PlayerID) {
	b.cells[m.Index()] = p
}

func (b *Board) Clear(m Move) {
	b.cells[m.Index()] = Empty
}

// Probe places p on m and returns the undo. Callers defer the undo so the
// cell is restored on every return path.
func (b *Board) Probe(m Move, p PlayerID) (undo func()) {
	idx := m.Index()
	prev := b.cells[idx]
	b.cells[idx] = p
	return func() {
		b.cells[idx] = prev
	}
}

func (b *Board) IsEmpty(m Move) bool {
	return b.cells[m.Index()] == Empty
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, c := range b.cells {
		if c == Empty {
			count++
		}
	}
	return count
}

// Rows returns the board as a nested slice indexed [x][y], for storage and debugging.
func (b *Board) Rows() [][]int {
	rows := make([][]int, BoardSize)
	for x := range rows {
		rows[x] = make([]int, BoardSize)
		for y := range rows[x] {
			rows[x][y] = int(b.At(x, y))
		}
	}
	return rows
}

func (b *Board) String() string {
	var sb strings.Builder
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b.At(x, y) {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CountDiskInDirection counts contiguous p pieces starting one step from
// (x, y) along (dx, dy). It stops at the edge, an empty cell, or the other mover.
func (b *Board) CountDiskInDirection(x, y, dx, dy int, p PlayerID) int {
	count := 0
	cx, cy := x+dx, y+dy
	for InBounds(cx, cy) && b.At(cx, cy) == p {
		count++
		cx += dx
		cy += dy
	}
	return count
}
