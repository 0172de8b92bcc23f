package invite

import (
	"context"
	"errors"
	"sync"
	"testing"

	"habitlink/internal/api"
	"habitlink/internal/hostenv"
	"habitlink/internal/models"
	"habitlink/internal/session"
)

type fakeAcceptor struct {
	mu      sync.Mutex
	calls   int
	err     error
	friend  models.Friend
	started chan struct{}
	release chan struct{}
}

func (f *fakeAcceptor) AcceptInvite(ctx context.Context, code string) (models.Friend, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.friend, f.err
}

func (f *fakeAcceptor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestResolver(acceptor Acceptor, startParam string) (*Resolver, *hostenv.Bridge) {
	bridge := hostenv.NewBridge(startParam, "en", "")
	r := NewResolver(acceptor, session.NewInviteMarker(), hostenv.NoopHaptics{}, bridge)
	return r, bridge
}

func TestResolve_NoCandidate(t *testing.T) {
	acceptor := &fakeAcceptor{}
	r, _ := newTestResolver(acceptor, "")

	res := r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeNone {
		t.Errorf("outcome = %v, want none", res.Outcome)
	}
	if acceptor.callCount() != 0 {
		t.Errorf("acceptor called %d times, want 0", acceptor.callCount())
	}
}

func TestResolve_StartParamPrefixStripped(t *testing.T) {
	acceptor := &fakeAcceptor{friend: models.Friend{ID: "f1", FirstName: "Ada"}}
	r, bridge := newTestResolver(acceptor, "friend_abc123")

	res := r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeAccepted {
		t.Fatalf("outcome = %v, want accepted", res.Outcome)
	}
	if res.Code != "abc123" {
		t.Errorf("code = %q, want abc123", res.Code)
	}
	if res.Friend.ID != "f1" {
		t.Errorf("friend = %+v", res.Friend)
	}
	if bridge.StartParam() != "" {
		t.Errorf("start param not cleared: %q", bridge.StartParam())
	}
}

func TestResolve_UnprefixedStartParamIgnored(t *testing.T) {
	acceptor := &fakeAcceptor{}
	r, _ := newTestResolver(acceptor, "promo_xyz")

	res := r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeNone {
		t.Errorf("outcome = %v, want none", res.Outcome)
	}
	if acceptor.callCount() != 0 {
		t.Errorf("acceptor called %d times, want 0", acceptor.callCount())
	}
}

func TestResolve_ExplicitCodeWins(t *testing.T) {
	acceptor := &fakeAcceptor{}
	r, _ := newTestResolver(acceptor, "friend_fromlink")

	res := r.Resolve(context.Background(), "explicit")
	if res.Code != "explicit" {
		t.Errorf("code = %q, want explicit", res.Code)
	}
}

func TestResolve_SecondActivationSkipsNetwork(t *testing.T) {
	acceptor := &fakeAcceptor{}
	r, _ := newTestResolver(acceptor, "")

	first := r.Resolve(context.Background(), "code1")
	if first.Outcome != OutcomeAccepted {
		t.Fatalf("first outcome = %v, want accepted", first.Outcome)
	}

	second := r.Resolve(context.Background(), "code1")
	if second.Outcome != OutcomeAlreadyHandled {
		t.Errorf("second outcome = %v, want already-handled", second.Outcome)
	}
	if acceptor.callCount() != 1 {
		t.Errorf("acceptor called %d times, want 1", acceptor.callCount())
	}
}

func TestResolve_BenignFailureMarkedAndSilent(t *testing.T) {
	benign := &api.Error{Status: 400, Message: "Invite expired"}
	acceptor := &fakeAcceptor{err: benign}
	r, bridge := newTestResolver(acceptor, "friend_old")

	res := r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeBenign {
		t.Fatalf("outcome = %v, want benign", res.Outcome)
	}
	if res.Err != nil {
		t.Errorf("benign outcome carries an error: %v", res.Err)
	}
	if bridge.StartParam() != "" {
		t.Errorf("start param not cleared after benign failure")
	}

	// Benign is terminal: no retry on re-activation.
	res = r.Resolve(context.Background(), "old")
	if res.Outcome != OutcomeAlreadyHandled {
		t.Errorf("re-activation outcome = %v, want already-handled", res.Outcome)
	}
	if acceptor.callCount() != 1 {
		t.Errorf("acceptor called %d times, want 1", acceptor.callCount())
	}
}

func TestResolve_NetworkFailureRetryable(t *testing.T) {
	acceptor := &fakeAcceptor{err: errors.New("connection refused")}
	r, bridge := newTestResolver(acceptor, "friend_flaky")

	res := r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", res.Outcome)
	}
	if res.Err == nil {
		t.Error("failed outcome should carry the error")
	}
	if bridge.StartParam() != "friend_flaky" {
		t.Errorf("start param consumed on retryable failure: %q", bridge.StartParam())
	}

	// The code stays unhandled, so a later activation retries.
	acceptor.mu.Lock()
	acceptor.err = nil
	acceptor.mu.Unlock()
	res = r.Resolve(context.Background(), "")
	if res.Outcome != OutcomeAccepted {
		t.Errorf("retry outcome = %v, want accepted", res.Outcome)
	}
	if acceptor.callCount() != 2 {
		t.Errorf("acceptor called %d times, want 2", acceptor.callCount())
	}
}

func TestResolve_InflightCodeNotResubmitted(t *testing.T) {
	acceptor := &fakeAcceptor{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	r, _ := newTestResolver(acceptor, "")

	done := make(chan Result, 1)
	go func() {
		done <- r.Resolve(context.Background(), "dup")
	}()
	<-acceptor.started

	if !r.Accepting() {
		t.Error("Accepting should report an in-flight submission")
	}

	res := r.Resolve(context.Background(), "dup")
	if res.Outcome != OutcomePending {
		t.Errorf("concurrent outcome = %v, want pending", res.Outcome)
	}

	close(acceptor.release)
	first := <-done
	if first.Outcome != OutcomeAccepted {
		t.Errorf("first outcome = %v, want accepted", first.Outcome)
	}
	if acceptor.callCount() != 1 {
		t.Errorf("acceptor called %d times, want 1", acceptor.callCount())
	}
}
