package uci

import "fmt"

// MoveError is a structured parse error for a malformed UCI move string
// (§7): wrong length, an out-of-range square, or an illegal promotion
// letter. The core never panics on user input.
type MoveError struct {
	Move    string
	Message string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("uci move %q: %s", e.Move, e.Message)
}
