package sse

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Event represents a Server-Sent Event
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client represents a connected SSE client
type Client struct {
	ID     string
	UserID string
	Events chan Event
}

// Hub manages all SSE client connections
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

// GlobalHub is the singleton SSE Hub instance
var GlobalHub = NewHub()

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		logger:  zap.NewNop(),
	}
}

// SetLogger replaces the hub logger
func (h *Hub) SetLogger(logger *zap.Logger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger = logger
}

// Register adds a new client to the hub
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Info("sse client registered",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
		zap.Int("total", len(h.clients)))
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Info("sse client unregistered",
			zap.String("client_id", clientID),
			zap.Int("total", len(h.clients)))
	}
}

// Broadcast sends an event to all connected clients
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("sse client buffer full, skipping event",
				zap.String("client_id", client.ID))
		}
	}
}

// PublishLogUpdate 활동 로그 변경 이벤트 브로드캐스트
func PublishLogUpdate(projectID, logID, action string) {
	data := fmt.Sprintf(`{"project_id":"%s","log_id":"%s","action":"%s"}`, projectID, logID, action)
	GlobalHub.Broadcast(Event{
		EventType: "log_update",
		Data:      data,
	})
}

// PublishSummaryUpdate 요약 보고서 변경 이벤트 브로드캐스트
func PublishSummaryUpdate(projectID, summaryID, action string) {
	data := fmt.Sprintf(`{"project_id":"%s","summary_id":"%s","action":"%s"}`, projectID, summaryID, action)
	GlobalHub.Broadcast(Event{
		EventType: "summary_update",
		Data:      data,
	})
}
