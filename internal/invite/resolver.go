// Package invite resolves a deep-link friend invitation exactly once per
// session, even under duplicate delivery.
package invite

import (
	"context"
	"strings"
	"sync"

	"habitlink/internal/api"
	"habitlink/internal/constants"
	"habitlink/internal/hostenv"
	"habitlink/internal/logger"
	"habitlink/internal/models"
	"habitlink/internal/session"
)

// Acceptor is the slice of the API the resolver needs.
type Acceptor interface {
	AcceptInvite(ctx context.Context, code string) (models.Friend, error)
}

type Outcome int

const (
	// OutcomeNone: no candidate code in the environment; the resolver is inert.
	OutcomeNone Outcome = iota
	// OutcomeAccepted: acceptance submitted and confirmed; friend list should
	// be refreshed by the caller.
	OutcomeAccepted
	// OutcomeAlreadyHandled: the code was resolved earlier this session; no
	// network call was made.
	OutcomeAlreadyHandled
	// OutcomePending: a submission for this code is already in flight.
	OutcomePending
	// OutcomeBenign: the server rejected the code for a reason that fulfils
	// the user's intent anyway (used/expired/own invite). Silent.
	OutcomeBenign
	// OutcomeFailed: a retryable failure; the code stays unhandled.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeAlreadyHandled:
		return "already-handled"
	case OutcomePending:
		return "pending"
	case OutcomeBenign:
		return "benign"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result of one resolver activation. Err is set only for OutcomeFailed.
type Result struct {
	Outcome Outcome
	Code    string
	Friend  models.Friend
	Err     error
}

type Resolver struct {
	acceptor Acceptor
	marker   session.Marker
	haptics  hostenv.Haptics
	bridge   *hostenv.Bridge

	mu       sync.Mutex
	inflight map[string]bool
}

func NewResolver(acceptor Acceptor, marker session.Marker, haptics hostenv.Haptics, bridge *hostenv.Bridge) *Resolver {
	return &Resolver{
		acceptor: acceptor,
		marker:   marker,
		haptics:  haptics,
		bridge:   bridge,
		inflight: make(map[string]bool),
	}
}

// CandidateCode picks the invitation code for this activation: an explicit
// parameter wins, then the host deep-link start parameter with the friend
// prefix. Empty means no candidate.
func (r *Resolver) CandidateCode(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if sp := r.bridge.StartParam(); strings.HasPrefix(sp, constants.StartParamFriendPrefix) {
		return strings.TrimPrefix(sp, constants.StartParamFriendPrefix)
	}
	return ""
}

// Accepting reports whether any acceptance submission is currently in flight.
func (r *Resolver) Accepting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inflight) > 0
}

// Resolve runs one activation. It submits at most one acceptance request per
// code per session: handled codes are skipped without a network call, and a
// pending submission blocks re-submission of the same code.
func (r *Resolver) Resolve(ctx context.Context, explicit string) Result {
	code := r.CandidateCode(explicit)
	if code == "" {
		return Result{Outcome: OutcomeNone}
	}
	if r.marker.Has(code) {
		return Result{Outcome: OutcomeAlreadyHandled, Code: code}
	}

	r.mu.Lock()
	if r.inflight[code] {
		r.mu.Unlock()
		return Result{Outcome: OutcomePending, Code: code}
	}
	r.inflight[code] = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.inflight, code)
		r.mu.Unlock()
	}()

	friend, err := r.acceptor.AcceptInvite(ctx, code)
	if err == nil {
		r.marker.Mark(code)
		r.bridge.ClearStartParam()
		r.haptics.Impact(hostenv.Medium)
		logger.Info("Invite accepted", "code", code)
		return Result{Outcome: OutcomeAccepted, Code: code, Friend: friend}
	}

	if api.IsBenignInviteFailure(err) {
		// Terminal either way; treat like success and stay silent.
		r.marker.Mark(code)
		r.bridge.ClearStartParam()
		logger.Debug("Invite already resolved server-side", "code", code, "reason", err)
		return Result{Outcome: OutcomeBenign, Code: code}
	}

	// Retryable: leave the code unhandled so a later activation can retry.
	logger.Warn("Invite acceptance failed", "code", code, "error", err)
	return Result{Outcome: OutcomeFailed, Code: code, Err: err}
}
