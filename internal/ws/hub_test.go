package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dial upgrades a client connection against a test server that subscribes it
// to the hub under the given user id.
func dial(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Subscribe(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Subscribe runs in the server handler after the handshake; wait for the
	// registration before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		n := len(hub.clients[userID])
		hub.mu.RUnlock()
		if n > 0 {
			return conn
		}
		if time.Now().After(deadline) {
			t.Fatal("subscription never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return ev
}

func TestPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub, 1)

	hub.Publish(1, Event{Type: "created", Resource: "task", ID: 7})

	ev := readEvent(t, conn)
	if ev.Type != "created" || ev.Resource != "task" || ev.ID != 7 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestPublishScopedToUser(t *testing.T) {
	hub := NewHub()
	mine := dial(t, hub, 1)
	theirs := dial(t, hub, 2)

	hub.Publish(1, Event{Type: "deleted", Resource: "task", ID: 3})

	ev := readEvent(t, mine)
	if ev.ID != 3 {
		t.Errorf("unexpected event: %+v", ev)
	}

	theirs.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := theirs.ReadMessage(); err == nil {
		t.Error("expected no event for other user")
	}
}

func TestPublishToUserWithoutConnections(t *testing.T) {
	hub := NewHub()
	// Nothing subscribed; must not panic or block.
	hub.Publish(99, Event{Type: "updated", Resource: "milestone", ID: 1})
}

// register adds a bare client to the hub without starting its pumps, so tests
// can drive the send path directly.
func register(hub *Hub, c *client) {
	hub.mu.Lock()
	if hub.clients[c.userID] == nil {
		hub.clients[c.userID] = make(map[*client]struct{})
	}
	hub.clients[c.userID][c] = struct{}{}
	hub.mu.Unlock()
}

func TestPublishConcurrentWithCloseDoesNotPanic(t *testing.T) {
	hub := NewHub()
	c := newClient(1, nil, hub)
	register(hub, c)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				hub.Publish(1, Event{Type: "updated", Resource: "task", ID: 1})
			}
		}()
	}
	c.close()
	wg.Wait()

	if c.trySend([]byte("x")) {
		t.Error("send succeeded on a closed client")
	}
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	c := newClient(1, nil, hub)
	register(hub, c)

	// No write pump is draining, so the buffer fills and the overflowing
	// publish disconnects the client instead of blocking or panicking.
	for i := 0; i <= cap(c.send); i++ {
		hub.Publish(1, Event{Type: "created", Resource: "task", ID: int64(i)})
	}

	hub.mu.RLock()
	_, registered := hub.clients[1]
	hub.mu.RUnlock()
	if registered {
		t.Error("slow client still registered after overflow")
	}
}
