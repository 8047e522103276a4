package chat

import (
	"sync"

	"github.com/petfolk/vetLink-gRPC/internal/data"
)

// RoomHub fans committed messages out to the live subscribers of each room.
// It maps room ids to subscriber callbacks so a SendMessage commit reaches
// every open chat stream for that room in this process. RoomHub implements
// both Feed and Publisher.
type RoomHub struct {
	mu     sync.RWMutex
	rooms  map[string]map[int64]func(*data.Message)
	nextID int64
}

// NewRoomHub creates an empty hub.
func NewRoomHub() *RoomHub {
	return &RoomHub{rooms: make(map[string]map[int64]func(*data.Message))}
}

// Subscribe registers fn for the room's live events and returns a stop
// function that releases the registration. Calling stop more than once is
// harmless.
func (h *RoomHub) Subscribe(roomID string, fn func(*data.Message)) (stop func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[int64]func(*data.Message))
	}

	h.nextID++
	id := h.nextID
	h.rooms[roomID][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.rooms[roomID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

// Publish delivers msg to every current subscriber of the room. A room with
// no subscribers is a no-op: the message is already persisted and will be
// replayed as history when a stream opens. Callbacks run outside the hub
// lock so a slow subscriber cannot block registration.
func (h *RoomHub) Publish(roomID string, msg *data.Message) {
	h.mu.RLock()
	subs := h.rooms[roomID]
	fns := make([]func(*data.Message), 0, len(subs))
	for _, fn := range subs {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(msg)
	}
}
