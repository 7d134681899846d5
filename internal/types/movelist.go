package types

// MoveListCapacity is the preallocated capacity for per-ply move lists.
// Enough for typical positions; the true maximum is 218, and Add grows the
// list beyond this capacity when needed.
const MoveListCapacity = 128

// MoveList is a thin, preallocated slice of Move plus the per-move
// ordering score used by the search's move-ordering step.
type MoveList struct {
	moves  []Move
	scores []int32
}

// NewMoveList returns an empty list with MoveListCapacity preallocated.
func NewMoveList() *MoveList {
	return &MoveList{
		moves:  make([]Move, 0, MoveListCapacity),
		scores: make([]int32, 0, MoveListCapacity),
	}
}

func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
	ml.scores = append(ml.scores, 0)
}

func (ml *MoveList) Len() int { return len(ml.moves) }

func (ml *MoveList) At(i int) Move { return ml.moves[i] }

func (ml *MoveList) SetScore(i int, score int32) { ml.scores[i] = score }

func (ml *MoveList) Score(i int) int32 { return ml.scores[i] }

func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
	ml.scores = ml.scores[:0]
}

// Swap exchanges the moves (and their scores) at indices i and j --
// used by the insertion sort in the search's move orderer.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
	ml.scores[i], ml.scores[j] = ml.scores[j], ml.scores[i]
}

// Contains reports whether m is present in the list -- used to
// re-validate TT/book moves against the actual legal move list (a
// paranoia guard against Zobrist collisions, per the transposition
// table's contract).
func (ml *MoveList) Contains(m Move) bool {
	for _, mv := range ml.moves {
		if mv == m {
			return true
		}
	}
	return false
}

// MoveToFront moves the element at index i to the front of the list,
// shifting the rest back by one. The search's move ordering does not use
// it; it sorts by score instead.
func (ml *MoveList) MoveToFront(i int) {
	if i <= 0 {
		return
	}
	m := ml.moves[i]
	s := ml.scores[i]
	copy(ml.moves[1:i+1], ml.moves[0:i])
	copy(ml.scores[1:i+1], ml.scores[0:i])
	ml.moves[0] = m
	ml.scores[0] = s
}
