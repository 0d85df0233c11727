package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// ErrRequestPending is returned when a subject already has a party-info
// request in flight.
var ErrRequestPending = errors.New("party info request already pending")

// partyValidator implements interfaces.PartyValidator. It correlates outbound
// party-info requests with inbound responses by subject id. The pending table
// maps subject id to a buffered channel of one; whichever side deletes the
// entry first (responder or timeout) owns the outcome, so each request
// resolves exactly once.
type partyValidator struct {
	logger  log.Logger
	sender  interfaces.PartyRequestSender
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan domain.PartyInfo
}

// NewPartyValidator creates the validator service.
//
// Parameters:
//   - sender: outbound channel to the party authority. Must be non-nil.
//   - timeout: how long RequestPartyInfo waits for a response. Must be
//     positive.
//   - logger: logger. Must be non-nil.
//
// Returns: interfaces.PartyValidator.
//
// Called from: main.
func NewPartyValidator(sender interfaces.PartyRequestSender, timeout time.Duration, logger log.Logger) interfaces.PartyValidator {
	if timeout <= 0 {
		panic("service.party_validator.go: timeout must be positive")
	}

	return &partyValidator{
		logger:  helpers.NilPanic(logger, "service.party_validator.go: logger is required"),
		sender:  helpers.NilPanic(sender, "service.party_validator.go: sender is required"),
		timeout: timeout,
		pending: make(map[string]chan domain.PartyInfo),
	}
}

// RequestPartyInfo publishes a party-info request for subjectID and blocks
// until the response arrives, the timeout elapses, or ctx expires.
//
// Parameters:
//   - ctx: bounds the wait; expiry returns ctx.Err().
//   - subjectID: the player whose party is being queried.
//
// Returns: the response on success; the failure sentinel with a nil error on
// timeout (a slow party authority is an answer, not a fault);
// ErrRequestPending when subjectID already has a request in flight; an
// ArenaError with code collaborator_failure when publishing fails.
//
// Called from: workflow.
func (v *partyValidator) RequestPartyInfo(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
	ch := make(chan domain.PartyInfo, 1)
	v.mu.Lock()
	if _, dup := v.pending[subjectID]; dup {
		v.mu.Unlock()
		return domain.PartyInfo{}, ErrRequestPending
	}
	v.pending[subjectID] = ch
	v.mu.Unlock()

	if err := v.sender.SendPartyInfoRequest(ctx, subjectID); err != nil {
		v.take(subjectID)
		return domain.PartyInfo{}, NewCollaboratorFailureError("sending party info request", err)
	}

	timer := time.NewTimer(v.timeout)
	defer timer.Stop()
	select {
	case info := <-ch:
		return info, nil
	case <-timer.C:
		if v.take(subjectID) {
			level.Warn(v.logger).Log("msg", "party info request timed out", "subject_id", subjectID, "timeout", v.timeout)
			return domain.FailedPartyInfo(subjectID), nil
		}
		// The response won the race and is already in the channel.
		return <-ch, nil
	case <-ctx.Done():
		v.take(subjectID)
		return domain.PartyInfo{}, ctx.Err()
	}
}

// HandleResponse delivers an inbound party-info response to the request
// waiting on it. Responses with no pending request (late arrivals after a
// timeout, or traffic for another host) are logged and discarded.
//
// Called from: the inbound party channel listener.
func (v *partyValidator) HandleResponse(info domain.PartyInfo) {
	v.mu.Lock()
	ch, ok := v.pending[info.SubjectID]
	if ok {
		delete(v.pending, info.SubjectID)
	}
	v.mu.Unlock()

	if !ok {
		level.Debug(v.logger).Log("msg", "discarding party response with no pending request", "subject_id", info.SubjectID)
		return
	}
	ch <- info
}

// take removes subjectID from the pending table, reporting whether it was
// still there. The caller that gets true owns the request's outcome.
func (v *partyValidator) take(subjectID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.pending[subjectID]; !ok {
		return false
	}
	delete(v.pending, subjectID)
	return true
}
