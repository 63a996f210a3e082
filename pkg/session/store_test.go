package session

import (
	"sync"
	"testing"
	"time"
)

type storedState struct {
	Counter int
}

func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore(time.Minute, func() *storedState { return &storedState{} })

	a := s.Get("a")
	if a == nil {
		t.Fatal("Get returned nil")
	}
	a.Counter = 42

	// Same ID returns the same pointer.
	a2 := s.Get("a")
	if a2 != a {
		t.Error("expected same pointer for same session ID")
	}
	if a2.Counter != 42 {
		t.Errorf("expected Counter=42, got %d", a2.Counter)
	}

	// Different ID returns a fresh instance.
	b := s.Get("b")
	if b == a {
		t.Error("different session IDs should return different pointers")
	}
	if s.Len() != 2 {
		t.Errorf("expected Len()=2, got %d", s.Len())
	}
}

func TestStorePeek(t *testing.T) {
	s := NewStore(time.Minute, func() *storedState { return &storedState{} })

	if _, ok := s.Peek("missing"); ok {
		t.Error("Peek must not create sessions")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got Len()=%d", s.Len())
	}

	s.Get("present")
	if _, ok := s.Peek("present"); !ok {
		t.Error("Peek should find an existing session")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	s := NewStore(50*time.Millisecond, func() *storedState { return &storedState{} })

	s.Get("ephemeral")
	if s.Len() != 1 {
		t.Fatalf("expected 1, got %d", s.Len())
	}

	time.Sleep(80 * time.Millisecond)
	s.Cleanup()

	if s.Len() != 0 {
		t.Errorf("expected 0 after TTL expiry, got %d", s.Len())
	}
}

func TestStoreCleanupKeepsActive(t *testing.T) {
	s := NewStore(50*time.Millisecond, func() *storedState { return &storedState{} })

	s.Get("keep")
	time.Sleep(30 * time.Millisecond)
	// Refresh "keep" before TTL expires.
	s.Get("keep")
	time.Sleep(30 * time.Millisecond)

	s.Cleanup()
	if s.Len() != 1 {
		t.Errorf("refreshed session should survive cleanup, got Len()=%d", s.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(time.Minute, func() *storedState { return &storedState{} })
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Get("session")
		}()
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Errorf("expected 1 session, got %d", s.Len())
	}
}

func TestStoreLazyCleanup(t *testing.T) {
	s := NewStore(10*time.Millisecond, func() *storedState { return &storedState{} })

	s.Get("old")
	time.Sleep(30 * time.Millisecond)

	// Enough Get calls to trip the lazy cleanup pass.
	for i := 1; i < cleanupInterval; i++ {
		s.Get("trigger")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 (only 'trigger'), got %d", s.Len())
	}
}
