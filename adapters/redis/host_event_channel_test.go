package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/interfaces/mock"
)

func TestHostEventChannel_Listen(t *testing.T) {
	client := setupTestRedis(t)
	channel := NewHostEventChannel(client, log.NewNopLogger())

	type bossDeath struct{ entityID, scriptID string }
	bossDeaths := make(chan bossDeath, 1)
	memberDeaths := make(chan string, 1)
	orch := &mock.ArenaOrchestratorMock{
		OnBossDeathFunc: func(ctx context.Context, entityID string, scriptID string) {
			bossDeaths <- bossDeath{entityID, scriptID}
		},
		OnMemberDefeatedFunc: func(ctx context.Context, subjectID string) {
			memberDeaths <- subjectID
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listenErr := make(chan error, 1)
	go func() { listenErr <- channel.Listen(ctx, orch) }()
	time.Sleep(100 * time.Millisecond) // let the subscription settle

	t.Run("boss death reaches the orchestrator", func(t *testing.T) {
		payload, err := json.Marshal(hostEvent{
			Tag:      tagBossDeath,
			EntityID: "entity-7",
			ScriptID: "MagmaLordFinal",
		})
		require.NoError(t, err)
		require.NoError(t, client.Publish(ctx, eventChannel, payload).Err())

		select {
		case d := <-bossDeaths:
			assert.Equal(t, "entity-7", d.entityID)
			assert.Equal(t, "MagmaLordFinal", d.scriptID)
		case <-time.After(5 * time.Second):
			t.Fatal("boss death never reached the orchestrator")
		}
	})

	t.Run("member death reaches the orchestrator", func(t *testing.T) {
		payload, err := json.Marshal(hostEvent{
			Tag:       tagMemberDeath,
			SubjectID: "player-3",
		})
		require.NoError(t, err)
		require.NoError(t, client.Publish(ctx, eventChannel, payload).Err())

		select {
		case subject := <-memberDeaths:
			assert.Equal(t, "player-3", subject)
		case <-time.After(5 * time.Second):
			t.Fatal("member death never reached the orchestrator")
		}
	})

	t.Run("malformed and foreign messages are dropped", func(t *testing.T) {
		require.NoError(t, client.Publish(ctx, eventChannel, "{not json").Err())
		require.NoError(t, client.Publish(ctx, eventChannel, `{"tag":"SOMETHING_ELSE"}`).Err())
		require.NoError(t, client.Publish(ctx, eventChannel, `{"tag":"BOSS_DEATH"}`).Err())
		require.NoError(t, client.Publish(ctx, eventChannel, `{"tag":"MEMBER_DEATH"}`).Err())
		time.Sleep(100 * time.Millisecond)
		assert.Len(t, orch.OnBossDeathCalls(), 1)
		assert.Len(t, orch.OnMemberDefeatedCalls(), 1)
	})

	cancel()
	select {
	case err := <-listenErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("listener never stopped")
	}
}
