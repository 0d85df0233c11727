package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
	"arenamanager/interfaces/mock"
)

func TestPartyChannel_SendPartyInfoRequest(t *testing.T) {
	client := setupTestRedis(t)
	channel := NewPartyChannel(client, log.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, requestChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, channel.SendPartyInfoRequest(ctx, "player-1"))

	select {
	case msg := <-sub.Channel():
		var req partyRequest
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &req))
		assert.Equal(t, tagPartyRequest, req.Tag)
		assert.Equal(t, "player-1", req.SubjectID)
	case <-ctx.Done():
		t.Fatal("request never arrived on the channel")
	}
}

func TestPartyChannel_Listen(t *testing.T) {
	client := setupTestRedis(t)
	channel := NewPartyChannel(client, log.NewNopLogger())

	received := make(chan domain.PartyInfo, 1)
	validator := &mock.PartyValidatorMock{
		HandleResponseFunc: func(info domain.PartyInfo) {
			received <- info
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listenErr := make(chan error, 1)
	go func() { listenErr <- channel.Listen(ctx, validator) }()
	time.Sleep(100 * time.Millisecond) // let the subscription settle

	payload, err := json.Marshal(partyResponse{
		Tag:       tagPartyResponse,
		SubjectID: "player-1",
		Success:   true,
		IsLeader:  true,
		PartySize: 2,
		MemberIDs: []string{"player-1", "player-2"},
	})
	require.NoError(t, err)
	require.NoError(t, client.Publish(ctx, responseChannel, payload).Err())

	select {
	case info := <-received:
		assert.Equal(t, "player-1", info.SubjectID)
		assert.True(t, info.Success)
		assert.True(t, info.IsLeader)
		assert.Equal(t, 2, info.Size)
		assert.Len(t, info.MemberIDs, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("response never reached the validator")
	}

	// Malformed and foreign messages are dropped without reaching the validator.
	require.NoError(t, client.Publish(ctx, responseChannel, "{not json").Err())
	require.NoError(t, client.Publish(ctx, responseChannel, `{"tag":"SOMETHING_ELSE","subject_id":"x"}`).Err())
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, validator.HandleResponseCalls(), 1)

	cancel()
	select {
	case err := <-listenErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop on cancel")
	}
}
