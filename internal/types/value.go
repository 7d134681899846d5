package types

// Value is a centipawn score, always from the perspective of the side to
// move at the point it is returned (negamax convention).
type Value int16

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 32000
	ValueNA       Value = 32001
	// ValueMate is the score assigned to an immediate checkmate. Mate scores
	// nearer the root are returned as ValueMate - ply so that shorter mates
	// sort ahead of longer ones.
	ValueMate    Value = 31000
	ValueMateMin Value = ValueMate - 1000
)

// IsMateScore reports whether v denotes a forced mate (in either direction).
func (v Value) IsMateScore() bool {
	return v >= ValueMateMin || v <= -ValueMateMin
}

// MateIn returns the number of plies to mate at this value's magnitude
// (undefined if !v.IsMateScore()).
func (v Value) MateIn() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return -int(ValueMate + v)
}
