package session

import (
	"sync"
	"testing"
)

func TestInviteMarker_MembershipPerCode(t *testing.T) {
	m := NewInviteMarker()

	if m.Has("abc") {
		t.Error("fresh marker should not contain abc")
	}

	m.Mark("abc")
	if !m.Has("abc") {
		t.Error("marked code missing")
	}
	if m.Has("xyz") {
		t.Error("unrelated code reported as marked")
	}

	// Marking twice is a no-op.
	m.Mark("abc")
	if !m.Has("abc") {
		t.Error("double mark lost the code")
	}
}

func TestInviteMarker_ConcurrentAccess(t *testing.T) {
	m := NewInviteMarker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Mark("code")
		}()
		go func() {
			defer wg.Done()
			m.Has("code")
		}()
	}
	wg.Wait()

	if !m.Has("code") {
		t.Error("code missing after concurrent marks")
	}
}

func TestMemoryTokenStore_RoundTrip(t *testing.T) {
	s := &MemoryTokenStore{}

	if _, err := s.Token(); err != ErrNoToken {
		t.Errorf("empty store error = %v, want ErrNoToken", err)
	}

	if err := s.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	tok, err := s.Token()
	if err != nil || tok != "tok" {
		t.Errorf("Token = (%q, %v)", tok, err)
	}

	if err := s.ClearToken(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Token(); err != ErrNoToken {
		t.Errorf("cleared store error = %v, want ErrNoToken", err)
	}
}
