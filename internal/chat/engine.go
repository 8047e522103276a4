// Package chat implements the message synchronization for a two-party room:
// one historical load followed by a live, append-only feed, plus the send
// path that keeps both participants on the same total order.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/petfolk/vetLink-gRPC/internal/data"
	"github.com/petfolk/vetLink-gRPC/internal/normalize"
)

// History loads the stored messages of a room, oldest first.
type History interface {
	RoomMessages(ctx context.Context, roomID string) ([]*data.Message, error)
}

// Feed delivers committed messages for a room. The returned stop function
// releases the subscription and is safe to call more than once.
type Feed interface {
	Subscribe(roomID string, fn func(*data.Message)) (stop func())
}

// Saver persists one message and returns the saved copy with its
// server-assigned id and timestamp.
type Saver interface {
	SaveMessage(ctx context.Context, roomID, senderID, text string, isOwnerSender bool) (*data.Message, error)
}

// Publisher pushes a committed message to every live subscriber of a room.
type Publisher interface {
	Publish(roomID string, msg *data.Message)
}

// Send validation errors, reported before any store call is made.
var (
	ErrEmptyText   = errors.New("chat: empty message text")
	ErrNoSender    = errors.New("chat: sender identity not resolved")
	ErrNoRoom      = errors.New("chat: room id not resolved")
	ErrEngineState = errors.New("chat: engine already opened")
)

// State is the engine lifecycle: Idle -> Loading -> Live -> Closed. A failed
// historical load drops back to Idle so the same engine can be reopened.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLive
	StateClosed
)

// Engine presents a room's message history as a single live-updating ordered
// sequence. Every message, historical or live, goes out through the emit
// callback in created_at order; live messages are appended strictly at the
// tail and deduplicated against the last-seen id.
type Engine struct {
	history History
	feed    Feed
	roomID  string
	emit    func(*data.Message) error

	mu     sync.Mutex
	state  State
	seq    []*data.Message
	lastID string
	stop   func()
}

// NewEngine returns an idle engine for the given room. emit is invoked for
// every message in order; engine calls to it are serialized.
func NewEngine(history History, feed Feed, roomID string, emit func(*data.Message) error) *Engine {
	return &Engine{history: history, feed: feed, roomID: roomID, emit: emit}
}

// Open performs the historical fetch and, only after the history has been
// emitted, attaches the live subscription. The strict fetch-then-subscribe
// order guarantees a live message can never be rendered before older history
// and then reordered.
func (e *Engine) Open(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return ErrEngineState
	}
	e.state = StateLoading
	e.mu.Unlock()

	msgs, err := e.history.RoomMessages(ctx, e.roomID)
	if err != nil {
		// Retriable: the caller reports the error and a fresh entry to the
		// room restarts the machine.
		e.mu.Lock()
		e.state = StateIdle
		e.mu.Unlock()
		return fmt.Errorf("load history for room %s: %w", e.roomID, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateLoading {
		// Closed while the fetch was in flight; abandon interest in the
		// result rather than emitting to a gone consumer.
		return nil
	}

	for _, m := range msgs {
		if err := e.emit(m); err != nil {
			e.state = StateClosed
			return fmt.Errorf("emit history for room %s: %w", e.roomID, err)
		}
		e.seq = append(e.seq, m)
		e.lastID = m.ID.Hex()
	}

	// Subscribe while still holding the lock so no live delivery can slip in
	// ahead of the history just emitted.
	e.stop = e.feed.Subscribe(e.roomID, e.deliver)
	e.state = StateLive
	return nil
}

// deliver handles one live event. Appends at the tail only: wrong-room
// events and an exact redelivery of the last-seen id are dropped.
func (e *Engine) deliver(m *data.Message) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLive {
		return
	}
	if m.RoomID != e.roomID {
		return
	}
	if id := m.ID.Hex(); id != "" && id == e.lastID {
		return
	}

	if err := e.emit(m); err != nil {
		// The consumer is gone; stop appending. The subscription itself is
		// released by Close.
		e.state = StateClosed
		return
	}
	e.seq = append(e.seq, m)
	e.lastID = m.ID.Hex()
}

// Close releases the live subscription. Idempotent: closing twice, or an
// engine that never subscribed, is a no-op.
func (e *Engine) Close() {
	e.mu.Lock()
	stop := e.stop
	e.stop = nil
	e.state = StateClosed
	e.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Messages returns a snapshot of the visible sequence.
func (e *Engine) Messages() []*data.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*data.Message, len(e.seq))
	copy(out, e.seq)
	return out
}

// Send validates, persists and publishes one message. Whitespace-only text
// and an unresolved sender are rejected with zero store calls, leaving the
// caller's input intact for a retry. On success the saved copy goes to the
// room's live subscribers, the sender's own stream included, so both sides
// observe the same total order.
func Send(ctx context.Context, store Saver, feed Publisher, roomID, senderID, text string, isOwnerSender bool) (*data.Message, error) {
	trimmed := normalize.Text(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	if senderID == "" {
		return nil, ErrNoSender
	}
	if roomID == "" {
		return nil, ErrNoRoom
	}

	saved, err := store.SaveMessage(ctx, roomID, senderID, trimmed, isOwnerSender)
	if err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	feed.Publish(roomID, saved)
	return saved, nil
}
