package session

import (
	"errors"
	"log/slog"
	"sync"
)

// Event is a connection lifecycle notification.
type Event string

const (
	EventConnected    Event = "connected"
	EventDisconnected Event = "disconnected"
)

// Listener receives connection lifecycle events. The address is the
// identity that connected, or the one that just disconnected.
type Listener func(event Event, address string)

// Session holds the process-wide wallet connection state: at most one
// connected identity at a time. Components read the current identity
// synchronously via Address; listeners are notified of lifecycle changes.
type Session struct {
	mu        sync.RWMutex
	address   string
	listeners []Listener
}

// New creates an empty, disconnected Session.
func New() *Session {
	return &Session{}
}

// Connect records the connected account identity. A previously connected
// identity is replaced; the address must be non-empty.
func (s *Session) Connect(address string) error {
	if address == "" {
		return errors.New("session: address is empty")
	}

	s.mu.Lock()
	s.address = address
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	slog.Info("wallet connected", "address", address)
	for _, fn := range listeners {
		fn(EventConnected, address)
	}
	return nil
}

// Disconnect clears the connected identity. Safe to call when already
// disconnected; listeners are only notified when a connection existed.
func (s *Session) Disconnect() {
	s.mu.Lock()
	address := s.address
	s.address = ""
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if address == "" {
		return
	}

	slog.Info("wallet disconnected", "address", address)
	for _, fn := range listeners {
		fn(EventDisconnected, address)
	}
}

// Address returns the connected identity and whether one is connected.
func (s *Session) Address() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address, s.address != ""
}

// Subscribe registers a listener for lifecycle events. Listeners are
// invoked synchronously from Connect/Disconnect, outside the lock.
func (s *Session) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
