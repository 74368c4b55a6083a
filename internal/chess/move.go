package chess

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "E2-E4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// UCI returns the move in lower-case UCI form, e.g. "e2e4".
func (m Move) UCI() string {
	b := []byte{m.From.File, m.From.Rank, m.To.File, m.To.Rank}
	b[0] += 'a' - 'A'
	b[2] += 'a' - 'A'
	return string(b)
}
