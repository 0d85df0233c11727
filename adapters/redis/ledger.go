package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"

	"arenamanager/helpers"
	"arenamanager/service"
)

const balanceKeyPrefix = "gem_balance"

// withdrawRetries bounds optimistic-lock retries when the balance key is
// modified concurrently.
const withdrawRetries = 3

// gemLedger implements interfaces.GemLedger on Redis (key:
// gem_balance:{subject}, value: integer balance). Withdraw is a WATCH/MULTI
// check-and-decrement, so a short balance is never driven negative.
type gemLedger struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewGemLedger creates a GemLedger backed by Redis. Panics on nil client or logger.
func NewGemLedger(client redis.UniversalClient, logger log.Logger) *gemLedger {
	return &gemLedger{
		client: helpers.NilPanic(client, "adapters.redis.ledger.go: client is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.ledger.go: logger is required"), "component", "gem_ledger"),
	}
}

func balanceKey(subjectID string) string {
	return balanceKeyPrefix + ":" + subjectID
}

// Has reports whether the subject's balance covers amount. A missing key is a
// zero balance, not an error.
func (l *gemLedger) Has(ctx context.Context, subjectID string, amount int64) (bool, error) {
	balance, err := l.client.Get(ctx, balanceKey(subjectID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return amount <= 0, nil
		}
		return false, fmt.Errorf("failed to read gem balance: %w", err)
	}
	return balance >= amount, nil
}

// Withdraw atomically decrements the subject's balance by amount. Fails with
// an insufficient_funds error and no side effects when the balance is short.
func (l *gemLedger) Withdraw(ctx context.Context, subjectID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	key := balanceKey(subjectID)

	txn := func(tx *redis.Tx) error {
		balance, err := tx.Get(ctx, key).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read gem balance: %w", err)
		}
		if balance < amount {
			return service.NewInsufficientFundsError(
				fmt.Sprintf("balance %d does not cover %d", balance, amount), nil)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, balance-amount, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < withdrawRetries; i++ {
		err = l.client.Watch(ctx, txn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("withdraw kept losing the balance race: %w", err)
}

// Deposit credits the subject's balance by amount.
func (l *gemLedger) Deposit(ctx context.Context, subjectID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := l.client.IncrBy(ctx, balanceKey(subjectID), amount).Err(); err != nil {
		return fmt.Errorf("failed to credit gem balance: %w", err)
	}
	return nil
}
