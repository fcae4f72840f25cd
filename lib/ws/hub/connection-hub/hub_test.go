package connectionhub

import (
	"sync"
	"testing"

	wsmodels "connect-skills-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
	}
}

func (i *impl) session(userID string) (clientSession, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	return sess, ok
}

func TestDeleteIgnoresStaleConnection(t *testing.T) {
	h := newTestHub()
	oldConn := &websocket.Conn{}
	newConn := &websocket.Conn{}

	h.AddClient("user-1", oldConn)
	h.AddClient("user-1", newConn)

	// the old handler's deferred cleanup fires after the reconnect
	h.DeleteClient("user-1", oldConn)
	sess, ok := h.session("user-1")
	require.True(t, ok)
	require.Same(t, newConn, sess.conn)

	h.DeleteClient("user-1", newConn)
	_, ok = h.session("user-1")
	require.False(t, ok)
}

func TestConcurrentHubAccess(t *testing.T) {
	h := newTestHub()
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &websocket.Conn{}
			for j := 0; j < 100; j++ {
				h.AddClient("user-1", conn)
				h.SendMessage(wsmodels.ServerMessage{ToUserID: "user-1"})
				h.IsConnected("user-1")
				h.DeleteClient("user-1", conn)
			}
		}()
	}
	wg.Wait()
}

func TestSendToDisconnectedUserIsNoop(t *testing.T) {
	h := newTestHub()
	h.SendMessage(wsmodels.ServerMessage{ToUserID: "nobody"})
	_, ok := h.session("nobody")
	require.False(t, ok)
}
