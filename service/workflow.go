package service

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// WorkflowConfig bounds the qualifying party for an encounter.
type WorkflowConfig struct {
	MinPartySize int
	MaxPartySize int
}

// eventWorkflow implements interfaces.EventWorkflow: the ordered encounter
// start sequence with explicit compensation. Steps run forward (party lookup,
// validation, funds withdrawal, provisioning, member resolution, activation);
// when one fails, the completed money and world steps are undone in reverse
// before the error is returned.
type eventWorkflow struct {
	cfg       WorkflowConfig
	validator interfaces.PartyValidator
	ledger    interfaces.GemLedger
	bosses    interfaces.BossCatalog
	orch      interfaces.ArenaOrchestrator
	players   interfaces.PlayerGateway
	logger    log.Logger
}

// NewEventWorkflow creates the encounter start workflow.
//
// Parameters:
//   - cfg: party size bounds. MinPartySize must be at least 1 and not above
//     MaxPartySize.
//   - validator, ledger, bosses, orch, players: collaborators. All must be
//     non-nil.
//   - logger: logger. Must be non-nil.
//
// Returns: interfaces.EventWorkflow.
//
// Called from: main.
func NewEventWorkflow(
	cfg WorkflowConfig,
	validator interfaces.PartyValidator,
	ledger interfaces.GemLedger,
	bosses interfaces.BossCatalog,
	orch interfaces.ArenaOrchestrator,
	players interfaces.PlayerGateway,
	logger log.Logger,
) interfaces.EventWorkflow {
	if cfg.MinPartySize < 1 {
		panic("service.workflow.go: cfg.MinPartySize must be at least 1")
	}
	if cfg.MaxPartySize < cfg.MinPartySize {
		panic("service.workflow.go: cfg.MaxPartySize must not be below MinPartySize")
	}

	return &eventWorkflow{
		cfg:       cfg,
		validator: helpers.NilPanic(validator, "service.workflow.go: validator is required"),
		ledger:    helpers.NilPanic(ledger, "service.workflow.go: ledger is required"),
		bosses:    helpers.NilPanic(bosses, "service.workflow.go: bosses is required"),
		orch:      helpers.NilPanic(orch, "service.workflow.go: orch is required"),
		players:   helpers.NilPanic(players, "service.workflow.go: players is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.workflow.go: logger is required"), "component", "workflow"),
	}
}

// StartEncounter runs the full start sequence for one encounter request.
//
// Parameters:
//   - ctx: bounds the whole sequence, including the party authority wait.
//   - requesterID: the player issuing the request; must be the party leader.
//   - bossID: boss to fight, case-insensitive catalog id.
//   - themeID: arena theme, case-insensitive catalog id.
//
// Returns: nil once the party stands in the arena and the boss is live.
// Otherwise an ArenaError: entity_not_found (boss or theme unknown),
// party_check_failed (lookup failed/timed out, requester not a leader, size
// out of bounds, nobody online), insufficient_funds, no_capacity, or
// collaborator_failure. Whatever was already done is compensated: withdrawn
// gems are re-deposited and a provisioned instance is retired.
//
// Called from: handlers.
func (w *eventWorkflow) StartEncounter(ctx context.Context, requesterID string, bossID string, themeID string) error {
	if requesterID == "" {
		return NewBadParameterError("requester id is required", nil)
	}

	boss, ok := w.bosses.Boss(bossID)
	if !ok {
		return NewEntityNotFoundError(fmt.Sprintf("boss %q is not in the catalog", bossID), nil)
	}

	info, err := w.validator.RequestPartyInfo(ctx, requesterID)
	if err != nil {
		if err == ErrRequestPending {
			return NewPartyCheckFailedError("a party check for this player is already running", err)
		}
		if e := ToArenaError(err); e != nil {
			return e
		}
		return NewCollaboratorFailureError("requesting party info", err)
	}
	if !info.Success {
		return NewPartyCheckFailedError("party lookup failed or timed out", nil)
	}
	if !info.InParty() {
		return NewPartyCheckFailedError("you must be in a party to start an encounter", nil)
	}
	if !info.IsLeader {
		return NewPartyCheckFailedError("only the party leader can start an encounter", nil)
	}
	if info.Size < w.cfg.MinPartySize || info.Size > w.cfg.MaxPartySize {
		return NewPartyCheckFailedError(
			fmt.Sprintf("party size %d is outside the allowed %d..%d", info.Size, w.cfg.MinPartySize, w.cfg.MaxPartySize), nil)
	}

	if boss.GemCost > 0 {
		has, err := w.ledger.Has(ctx, requesterID, boss.GemCost)
		if err != nil {
			return NewCollaboratorFailureError("checking gem balance", err)
		}
		if !has {
			return NewInsufficientFundsError(
				fmt.Sprintf("the encounter costs %d gems", boss.GemCost), nil)
		}
		if err := w.ledger.Withdraw(ctx, requesterID, boss.GemCost); err != nil {
			if e := ToArenaError(err); e != nil {
				return e
			}
			return NewCollaboratorFailureError("withdrawing entry cost", err)
		}
	}

	inst, err := w.orch.Provision(ctx, themeID)
	if err != nil {
		w.refund(ctx, requesterID, boss.GemCost)
		return err
	}

	members := w.onlineMembers(info.MemberIDs, requesterID)
	if len(members) == 0 {
		w.refund(ctx, requesterID, boss.GemCost)
		if rerr := w.orch.Retire(ctx, inst); rerr != nil {
			_ = level.Warn(w.logger).Log("msg", "compensating retire failed", "instance_id", inst.ID, "err", rerr)
		}
		return NewPartyCheckFailedError("no party members are online", nil)
	}

	if err := w.orch.Activate(ctx, inst, members, &boss); err != nil {
		w.refund(ctx, requesterID, boss.GemCost)
		// Activation tears down after a spawn failure itself; Retire is
		// latched, so covering the remaining failure paths here is safe.
		if rerr := w.orch.Retire(ctx, inst); rerr != nil {
			_ = level.Warn(w.logger).Log("msg", "compensating retire failed", "instance_id", inst.ID, "err", rerr)
		}
		return err
	}

	_ = level.Info(w.logger).Log("msg", "encounter started", "instance_id", inst.ID,
		"boss", boss.ID, "requester_id", requesterID, "members", len(members))
	return nil
}

// onlineMembers filters the party roster to players connected to this host.
// The requester is always part of the result when online, even if the party
// authority's roster omitted them.
func (w *eventWorkflow) onlineMembers(roster []string, requesterID string) []string {
	var out []string
	seenRequester := false
	for _, member := range roster {
		if member == requesterID {
			seenRequester = true
		}
		if w.players.IsOnline(member) {
			out = append(out, member)
		}
	}
	if !seenRequester && w.players.IsOnline(requesterID) {
		out = append(out, requesterID)
	}
	return out
}

// refund re-deposits a withdrawn entry cost. A failed refund is only logged;
// there is nothing left to undo it with.
func (w *eventWorkflow) refund(ctx context.Context, subjectID string, amount int64) {
	if amount <= 0 {
		return
	}
	if err := w.ledger.Deposit(ctx, subjectID, amount); err != nil {
		_ = level.Error(w.logger).Log("msg", "refund failed", "subject_id", subjectID, "amount", amount, "err", err)
	}
}
