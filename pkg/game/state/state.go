package state

import (
	"time"

	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/pathfind"
)

// Board size limits. The size display has room for two digits.
const (
	MinSize     = 1
	MaxSize     = 99
	DefaultSize = 7
)

// Message is a timestamped line in the board's message log
type Message struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// Board is the state of one arrow board and its checker
type Board struct {
	Grid *world.Grid

	// Size the next rebuild will use; changed by the size arrows
	PendingSize int

	// Checker position. Zero when no checker is on the board.
	Cursor world.CellRef

	// Path of the cell the checker was dropped on
	Path *pathfind.Path

	// Classification of the active starting cell's path
	Mode world.Label

	Running bool

	// Advances made since the checker was dropped
	Steps int

	Messages []Message
}

// NewBoard creates an empty board that will be built at the given size
func NewBoard(size int) *Board {
	return &Board{
		PendingSize: ClampSize(size),
		Mode:        world.Undetermined,
		Messages:    make([]Message, 0),
	}
}

// ClampSize limits a requested size to [MinSize, MaxSize]
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Size returns the size of the current grid, or 0 before the first build
func (b *Board) Size() int {
	if b.Grid == nil {
		return 0
	}
	return b.Grid.Size()
}

// GrowSize increases the pending size by one, up to MaxSize
func (b *Board) GrowSize() int {
	b.PendingSize = ClampSize(b.PendingSize + 1)
	return b.PendingSize
}

// ShrinkSize decreases the pending size by one, down to MinSize
func (b *Board) ShrinkSize() int {
	b.PendingSize = ClampSize(b.PendingSize - 1)
	return b.PendingSize
}

// HasCursor returns true if a checker is on the board
func (b *Board) HasCursor() bool {
	return !b.Cursor.IsZero()
}

// CursorCell returns the cell under the checker, or nil
func (b *Board) CursorCell() *world.Cell {
	if b.Grid == nil || !b.HasCursor() {
		return nil
	}
	c, err := b.Grid.Resolve(b.Cursor)
	if err != nil {
		return nil
	}
	return c
}

// ClearCursor lifts the checker off the board and forgets its path
func (b *Board) ClearCursor() {
	b.Cursor = world.CellRef{}
	b.Path = nil
	b.Mode = world.Undetermined
	b.Steps = 0
}

// AddMessage adds a message to the board's message log
func (b *Board) AddMessage(msg string) {
	const maxMessages = 5
	b.Messages = append(b.Messages, Message{Text: msg, Timestamp: time.Now().UnixMilli()})

	// Keep only the last maxMessages
	if len(b.Messages) > maxMessages {
		b.Messages = b.Messages[len(b.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (b *Board) ClearMessages() {
	b.Messages = make([]Message, 0)
}
