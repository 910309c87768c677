package session

import "testing"

func TestConnectAndAddress(t *testing.T) {
	s := New()

	if _, ok := s.Address(); ok {
		t.Fatal("new session should not be connected")
	}

	if err := s.Connect("ACCOUNT1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addr, ok := s.Address()
	if !ok || addr != "ACCOUNT1" {
		t.Errorf("Address() = %q, %v, want ACCOUNT1, true", addr, ok)
	}
}

func TestConnectEmptyAddress(t *testing.T) {
	s := New()
	if err := s.Connect(""); err == nil {
		t.Fatal("expected error for empty address, got nil")
	}
}

func TestDisconnectClearsIdentity(t *testing.T) {
	s := New()
	s.Connect("ACCOUNT1")
	s.Disconnect()

	if _, ok := s.Address(); ok {
		t.Error("session should be disconnected")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := New()

	var events []Event
	var addresses []string
	s.Subscribe(func(e Event, addr string) {
		events = append(events, e)
		addresses = append(addresses, addr)
	})

	s.Connect("ACCOUNT1")
	s.Disconnect()
	s.Disconnect() // no connection: no event

	want := []Event{EventConnected, EventDisconnected}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, events[i], want[i])
		}
		if addresses[i] != "ACCOUNT1" {
			t.Errorf("addresses[%d] = %q, want ACCOUNT1", i, addresses[i])
		}
	}
}
