package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
	"arenamanager/interfaces/mock"
)

type workflowFixture struct {
	validator *mock.PartyValidatorMock
	ledger    *fakeLedger
	bosses    *mock.BossCatalogMock
	orch      *mock.ArenaOrchestratorMock
	players   *mock.PlayerGatewayMock
	wf        interfaces.EventWorkflow
}

// fakeLedger is an in-memory gem ledger with atomic withdraw semantics.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]int64
	failNext error
}

func (l *fakeLedger) Has(ctx context.Context, subjectID string, amount int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failNext != nil {
		return false, l.failNext
	}
	return l.balances[subjectID] >= amount, nil
}

func (l *fakeLedger) Withdraw(ctx context.Context, subjectID string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failNext != nil {
		return l.failNext
	}
	if l.balances[subjectID] < amount {
		return NewInsufficientFundsError("balance too low", nil)
	}
	l.balances[subjectID] -= amount
	return nil
}

func (l *fakeLedger) Deposit(ctx context.Context, subjectID string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[subjectID] += amount
	return nil
}

func (l *fakeLedger) balance(subjectID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[subjectID]
}

func leaderParty(size int, members ...string) domain.PartyInfo {
	return domain.PartyInfo{
		SubjectID: "leader",
		Success:   true,
		IsLeader:  true,
		Size:      size,
		MemberIDs: members,
	}
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		validator: &mock.PartyValidatorMock{
			RequestPartyInfoFunc: func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
				return leaderParty(2, "leader", "player-2"), nil
			},
		},
		ledger: &fakeLedger{balances: map[string]int64{"leader": 1000}},
		bosses: &mock.BossCatalogMock{
			BossFunc: func(id string) (domain.BossDefinition, bool) {
				if id == "magma_lord" {
					return *testBoss(), true
				}
				return domain.BossDefinition{}, false
			},
		},
		orch: &mock.ArenaOrchestratorMock{
			ProvisionFunc: func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
				return domain.NewArenaInstance("inst-1", testTheme(), domain.SlotInfo{SlotID: 0}, helpers.TestNow()), nil
			},
		},
		players: &mock.PlayerGatewayMock{
			IsOnlineFunc: func(subjectID string) bool { return true },
		},
	}
	f.wf = NewEventWorkflow(
		WorkflowConfig{MinPartySize: 1, MaxPartySize: 4},
		f.validator, f.ledger, f.bosses, f.orch, f.players,
		log.NewNopLogger(),
	)
	return f
}

func TestEventWorkflow_StartEncounter(t *testing.T) {
	t.Run("happy path withdraws the cost and activates the party", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		require.NoError(t, err)

		assert.Equal(t, int64(750), f.ledger.balance("leader"))
		require.Len(t, f.orch.ActivateCalls(), 1)
		assert.Equal(t, []string{"leader", "player-2"}, f.orch.ActivateCalls()[0].MemberIDs)
		assert.Empty(t, f.orch.RetireCalls())
	})

	t.Run("unknown boss fails before any side effect", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.StartEncounter(context.Background(), "leader", "dragon", "volcano")
		require.Error(t, err)
		assert.True(t, IsEntityNotFound(err))
		assert.Empty(t, f.validator.RequestPartyInfoCalls())
		assert.Equal(t, int64(1000), f.ledger.balance("leader"))
	})

	t.Run("party failure sentinel maps to party_check_failed", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return domain.FailedPartyInfo(subjectID), nil
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsPartyCheckFailed(err))
		assert.Equal(t, int64(1000), f.ledger.balance("leader"))
	})

	t.Run("non-leader cannot start", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			info := leaderParty(2, "leader", "player-2")
			info.IsLeader = false
			return info, nil
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsPartyCheckFailed(err))
	})

	t.Run("party size bounds are enforced", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return leaderParty(9, "leader"), nil
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsPartyCheckFailed(err))
	})

	t.Run("pending duplicate request maps to party_check_failed", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return domain.PartyInfo{}, ErrRequestPending
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsPartyCheckFailed(err))
	})

	t.Run("short balance fails without withdrawing", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.ledger.balances["leader"] = 10

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsInsufficientFunds(err))
		assert.Equal(t, int64(10), f.ledger.balance("leader"))
		assert.Empty(t, f.orch.ProvisionCalls())
	})

	t.Run("provision failure refunds the withdrawal", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.orch.ProvisionFunc = func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
			return nil, NewNoCapacityError("all arena slots are in use", nil)
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsNoCapacity(err))
		assert.Equal(t, int64(1000), f.ledger.balance("leader"))
	})

	t.Run("nobody online refunds and retires the instance", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.players.IsOnlineFunc = func(subjectID string) bool { return false }

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsPartyCheckFailed(err))
		assert.Equal(t, int64(1000), f.ledger.balance("leader"))
		assert.Len(t, f.orch.RetireCalls(), 1)
	})

	t.Run("activation failure refunds and retires", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.orch.ActivateFunc = func(ctx context.Context, instance *domain.ArenaInstance, memberIDs []string, boss *domain.BossDefinition) error {
			return NewCollaboratorFailureError("spawning boss", errors.New("script missing"))
		}

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		assert.True(t, IsCollaboratorFailure(err))
		assert.Equal(t, int64(1000), f.ledger.balance("leader"))
		assert.Len(t, f.orch.RetireCalls(), 1)
	})

	t.Run("offline roster members are filtered, requester kept", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return leaderParty(3, "player-2", "player-3"), nil
		}
		f.players.IsOnlineFunc = func(subjectID string) bool { return subjectID != "player-3" }

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		require.NoError(t, err)
		require.Len(t, f.orch.ActivateCalls(), 1)
		assert.Equal(t, []string{"player-2", "leader"}, f.orch.ActivateCalls()[0].MemberIDs)
	})

	t.Run("free encounters skip the ledger", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.bosses.BossFunc = func(id string) (domain.BossDefinition, bool) {
			boss := *testBoss()
			boss.GemCost = 0
			return boss, true
		}
		f.ledger.failNext = errors.New("ledger must not be touched")

		err := f.wf.StartEncounter(context.Background(), "leader", "magma_lord", "volcano")
		require.NoError(t, err)
	})
}
