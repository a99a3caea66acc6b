package handlers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingSocket records writes and detects overlapping WriteJSON calls, which
// the websocket connection would reject.
type countingSocket struct {
	inFlight int32
	overlaps int32
	writes   int32
}

func (s *countingSocket) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&s.inFlight, 1) > 1 {
		atomic.AddInt32(&s.overlaps, 1)
	}
	time.Sleep(time.Millisecond) // widen the window for overlapping writers
	atomic.AddInt32(&s.inFlight, -1)
	atomic.AddInt32(&s.writes, 1)
	return nil
}

func TestBroadcastSerializesWritesPerConnection(t *testing.T) {
	h := newChatHub()
	a := &countingSocket{}
	b := &countingSocket{}
	h.join("room-1", &chatClient{sock: a})
	h.join("room-1", &chatClient{sock: b})

	// Two members sending at the same time must never produce concurrent
	// writes on a shared peer connection.
	const sends = 50
	var wg sync.WaitGroup
	for i := 0; i < 2*sends; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.broadcast("room-1", SocketEvent{Type: "receive_message", RoomID: "room-1", Content: "hi"})
		}()
	}
	wg.Wait()

	require.Zero(t, atomic.LoadInt32(&a.overlaps))
	require.Zero(t, atomic.LoadInt32(&b.overlaps))
	require.Equal(t, int32(2*sends), atomic.LoadInt32(&a.writes))
	require.Equal(t, int32(2*sends), atomic.LoadInt32(&b.writes))
}

func TestBroadcastReachesOnlyRoomMembers(t *testing.T) {
	h := newChatHub()
	member := &countingSocket{}
	outsider := &countingSocket{}
	h.join("room-1", &chatClient{sock: member})
	h.join("room-2", &chatClient{sock: outsider})

	h.broadcast("room-1", SocketEvent{Type: "receive_message", RoomID: "room-1"})
	h.broadcast("no-such-room", SocketEvent{Type: "receive_message"})

	require.Equal(t, int32(1), atomic.LoadInt32(&member.writes))
	require.Zero(t, atomic.LoadInt32(&outsider.writes))
}

func TestLeaveRemovesClientAndEmptyRoom(t *testing.T) {
	h := newChatHub()
	sock := &countingSocket{}
	client := &chatClient{sock: sock}
	h.join("room-1", client)

	h.leave(client)
	h.broadcast("room-1", SocketEvent{Type: "receive_message"})

	require.Zero(t, atomic.LoadInt32(&sock.writes))
	h.mu.RLock()
	defer h.mu.RUnlock()
	require.Empty(t, h.rooms)
}
