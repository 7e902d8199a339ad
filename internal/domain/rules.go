package domain

// IsForbidden reports whether the piece already sitting on m completes a run
// of ForbiddenRun or more for its owner along any axis.
func IsForbidden(b *Board, m Move) bool {
	p := b.Get(m)
	if p == Empty {
		return false
	}
	for _, d := range Directions {
		run := 1 + b.CountDiskInDirection(m.X, m.Y, d.DX, d.DY, p) +
			b.CountDiskInDirection(m.X, m.Y, -d.DX, -d.DY, p)
		if run >= ForbiddenRun {
			return true
		}
	}
	return false
}

// WouldBeForbidden probes p on the empty cell m and reports whether the
// placement is illegal for p. The board is left as it was.
func WouldBeForbidden(b *Board, m Move, p PlayerID) bool {
	undo := b.Probe(m, p)
	defer undo()
	return IsForbidden(b, m)
}
