// Package sse provides Server-Sent Events client management for pushing
// toasts to open browser tabs.
package sse

import (
	"encoding/json"
	"sync"

	"github.com/debemdeboas/postboard/internal/model"
)

type Client struct {
	Msg       chan string
	SessionID string
}

func NewClient(sessionID string) *Client {
	return &Client{
		Msg:       make(chan string, 8),
		SessionID: sessionID,
	}
}

type SSEClients struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewSSEClients() *SSEClients {
	return &SSEClients{
		clients: make(map[*Client]bool),
	}
}

func (s *SSEClients) Add(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client] = true
}

func (s *SSEClients) Delete(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[client]; !ok {
		return
	}
	delete(s.clients, client)
	close(client.Msg)
}

func (s *SSEClients) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast sends msg to every client of the session. Clients that are not
// keeping up miss the message.
func (s *SSEClients) Broadcast(sessionID, msg string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		if client.SessionID == sessionID {
			select {
			case client.Msg <- msg:
			default:
			}
		}
	}
}

type toast struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Notifier returns a notifier that pushes toasts to the session's clients.
func (s *SSEClients) Notifier(sessionID string) *SessionNotifier {
	return &SessionNotifier{clients: s, sessionID: sessionID}
}

type SessionNotifier struct {
	clients   *SSEClients
	sessionID string
}

func (n *SessionNotifier) Notify(t model.Notification) {
	data, err := json.Marshal(toast{
		Status:      string(t.Status),
		Title:       t.Title,
		Description: t.Description,
	})
	if err != nil {
		return
	}
	n.clients.Broadcast(n.sessionID, string(data))
}

// CloseAll disconnects every client. Streaming handlers return once their
// channel is closed.
func (s *SSEClients) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		delete(s.clients, client)
		close(client.Msg)
	}
}
