package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1 // the engine's own side
	Player2 PlayerID = 2
)

// Opponent returns the other mover. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

const (
	BoardSize = 11
	Cells     = BoardSize * BoardSize
	// a run of this length or longer is forbidden for the mover who completes it
	ForbiddenRun = 4
)

// Move is a cell coordinate. X and Y are 0-indexed and lie in [0, BoardSize).
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoMove marks a turn without a placement and the forfeit result.
var NoMove = Move{X: -1, Y: -1}

func (m Move) IsNone() bool {
	return m.X < 0 || m.Y < 0
}

// Index maps the move to its position in the flat board array.
func (m Move) Index() int {
	return m.X*BoardSize + m.Y
}

func MoveFromIndex(idx int) Move {
	return Move{X: idx / BoardSize, Y: idx % BoardSize}
}

// Direction is one of the four alignment axes.
type Direction struct {
	DX, DY int
}

var Directions = [4]Direction{
	{DX: 1, DY: 0},  // x axis
	{DX: 0, DY: 1},  // y axis
	{DX: 1, DY: 1},  // diagonal \
	{DX: 1, DY: -1}, // diagonal /
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds   Error = "coordinate out of bounds"
	ErrCellOccupied  Error = "cell is already occupied"
	ErrMalformedTurn Error = "malformed turn history"
	ErrMatchMismatch Error = "token does not belong to this match"
)
