package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/service"
)

const testRedisAddr = "redis://localhost:6379"

// setupTestRedis connects to the local test Redis, wiping the keyspace this
// package writes to. Skips when no server is reachable.
func setupTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not reachable at %s: %v", testRedisAddr, err)
	}

	clear := func() {
		for _, prefix := range []string{balanceKeyPrefix, presenceKeyPrefix, bossEntityKeyPrefix, hostReplyKeyPrefix} {
			keys, _ := client.Keys(context.Background(), prefix+":*").Result()
			if len(keys) > 0 {
				client.Del(context.Background(), keys...)
			}
		}
	}
	clear()
	t.Cleanup(func() {
		clear()
		client.Close()
	})
	return client
}

func TestGemLedger(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	ledger := NewGemLedger(client, log.NewNopLogger())

	t.Run("missing key is a zero balance", func(t *testing.T) {
		has, err := ledger.Has(ctx, "nobody", 1)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("deposit then has", func(t *testing.T) {
		require.NoError(t, ledger.Deposit(ctx, "player-1", 500))

		has, err := ledger.Has(ctx, "player-1", 500)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = ledger.Has(ctx, "player-1", 501)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("withdraw decrements the balance", func(t *testing.T) {
		require.NoError(t, ledger.Deposit(ctx, "player-2", 300))
		require.NoError(t, ledger.Withdraw(ctx, "player-2", 120))

		balance, err := client.Get(ctx, balanceKey("player-2")).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(180), balance)
	})

	t.Run("short balance fails without side effects", func(t *testing.T) {
		require.NoError(t, ledger.Deposit(ctx, "player-3", 50))

		err := ledger.Withdraw(ctx, "player-3", 100)
		require.Error(t, err)
		assert.True(t, service.IsInsufficientFunds(err))

		balance, err := client.Get(ctx, balanceKey("player-3")).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(50), balance)
	})

	t.Run("concurrent withdrawals never overdraw", func(t *testing.T) {
		require.NoError(t, ledger.Deposit(ctx, "player-4", 100))

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := ledger.Withdraw(ctx, "player-4", 30); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		balance, err := client.Get(ctx, balanceKey("player-4")).Int64()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, balance, int64(0))
		assert.Equal(t, int64(100)-int64(succeeded)*30, balance)
	})
}
