package domain

import "github.com/google/uuid"

// RenderResult is the outcome of rendering one chat message. Text holds the
// final markup string ready for the host's display layer; Viewers the set
// that should still receive it. Notice carries feedback for the sender when
// the message was cancelled.
type RenderResult struct {
	Text    string
	Viewers []uuid.UUID
	Notice  string
}
