package connectionhub

import (
	"sync"

	wsmodels "connect-skills-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
}

// DeleteClient drops the session only when it still belongs to the given
// connection, a reconnect must not tear down the replacement session. The
// send channel is never closed here, cancelling the session context is what
// ends its send loop.
func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn != conn {
		i.mu.Unlock()
		return
	}
	delete(i.clients, userID)
	i.mu.Unlock()
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", msg.ToUserID).Warn("ws send buffer full, message dropped")
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
