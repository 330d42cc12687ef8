package websockets

import (
	"crm/config"
	"crm/internal/database"
	"crm/internal/events"
	"crm/internal/handlers/middleware"
	"crm/internal/logger"
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Manager pushes recruit-change events to connected dashboard clients so
// open dashboards refresh without polling.
type Manager struct {
	db  database.DB
	log logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) (*Manager, error) {
	manager := &Manager{
		db:      db,
		log:     logger.New("websockets"),
		clients: make(map[*websocket.Conn]bool),
	}

	go manager.broadcastLoop(eventBus.Subscribe())

	return manager, nil
}

func (m *Manager) broadcastLoop(ch <-chan events.Event) {
	for event := range ch {
		m.broadcast(event)
	}
}

func (m *Manager) broadcast(event events.Event) {
	log := m.log.Function("broadcast")

	payload, err := json.Marshal(event)
	if err != nil {
		log.Er("failed to encode event", err, "type", event.Type)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for conn := range m.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn("dropping websocket client", "error", err)
			_ = conn.Close()
			delete(m.clients, conn)
		}
	}
}

// HandleWebSocket owns the connection for its lifetime. Clients only
// listen; inbound frames are discarded until the connection errors out.
func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	m.register(c)
	middleware.SetWebsocketClients(m.ClientCount())
	defer func() {
		m.unregister(c)
		middleware.SetWebsocketClients(m.ClientCount())
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) register(c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c] = true
	m.log.Info("websocket client connected", "clients", len(m.clients))
}

func (m *Manager) unregister(c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, c)
	_ = c.Close()
}

func (m *Manager) ClientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}
