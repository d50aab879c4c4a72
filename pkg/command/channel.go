package command

import (
	"errors"

	"go.uber.org/atomic"
)

var (
	// ErrChannelFull is returned when the outbound channel has no free slot
	ErrChannelFull = errors.New("command channel is full")
	// ErrChannelClosed is returned when the outbound channel has been closed
	ErrChannelClosed = errors.New("command channel is closed")
)

// Sender is the outbound side of the command channel. TrySend must not
// block; callers rely on it failing fast when the Raft layer is backed up.
type Sender interface {
	TrySend(msg Msg) error
}

// Channel is a bounded, non-blocking command channel between the placement
// worker and the Raft layer. The channel serializes sends from any number
// of goroutines.
type Channel struct {
	ch     chan Msg
	closed *atomic.Bool
}

// NewChannel creates a channel with the given capacity
func NewChannel(capacity int) *Channel {
	return &Channel{
		ch:     make(chan Msg, capacity),
		closed: atomic.NewBool(false),
	}
}

// TrySend enqueues msg without blocking
func (c *Channel) TrySend(msg Msg) error {
	if c.closed.Load() {
		return ErrChannelClosed
	}
	select {
	case c.ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}

// Receive returns the consumer side of the channel
func (c *Channel) Receive() <-chan Msg {
	return c.ch
}

// Close rejects further sends. Messages already enqueued remain receivable.
func (c *Channel) Close() {
	c.closed.Store(true)
}
