package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
)

const (
	// requestChannel carries party-info requests to the party authority.
	requestChannel = "arena:party:requests"
	// responseChannel carries the authority's responses back.
	responseChannel = "arena:party:responses"

	tagPartyRequest  = "GET_PARTY_INFO"
	tagPartyResponse = "PARTY_INFO_RESPONSE"
)

type partyRequest struct {
	Tag       string `json:"tag"`
	SubjectID string `json:"subject_id"`
}

type partyResponse struct {
	Tag       string   `json:"tag"`
	SubjectID string   `json:"subject_id"`
	Success   bool     `json:"success"`
	IsLeader  bool     `json:"is_leader"`
	PartySize int      `json:"party_size"`
	MemberIDs []string `json:"member_ids"`
}

// PartyChannel is the Redis pub/sub bridge to the cross-process party
// authority. Requests go out on one channel, responses come back on another;
// correlation happens in the party validator, not here.
type PartyChannel struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewPartyChannel creates the bridge. Panics on nil client or logger.
func NewPartyChannel(client redis.UniversalClient, logger log.Logger) *PartyChannel {
	return &PartyChannel{
		client: helpers.NilPanic(client, "adapters.redis.party_channel.go: client is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.party_channel.go: logger is required"), "component", "party_channel"),
	}
}

// SendPartyInfoRequest publishes one GET_PARTY_INFO message for the subject.
// Fire and forget: a missing subscriber is not an error here, it surfaces as
// a validator timeout.
func (c *PartyChannel) SendPartyInfoRequest(ctx context.Context, subjectID string) error {
	payload, err := json.Marshal(partyRequest{Tag: tagPartyRequest, SubjectID: subjectID})
	if err != nil {
		return fmt.Errorf("marshaling party request: %w", err)
	}
	if err := c.client.Publish(ctx, requestChannel, payload).Err(); err != nil {
		return fmt.Errorf("publishing party request: %w", err)
	}
	return nil
}

// Listen subscribes to the response channel and feeds decoded responses to
// the validator until ctx is cancelled. Malformed or foreign messages are
// logged and dropped.
//
// Called from: main, on its own goroutine.
func (c *PartyChannel) Listen(ctx context.Context, validator interfaces.PartyValidator) error {
	helpers.NilPanic(validator, "adapters.redis.party_channel.go: validator is required")

	sub := c.client.Subscribe(ctx, responseChannel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", responseChannel, err)
	}
	_ = level.Info(c.logger).Log("msg", "listening for party responses", "channel", responseChannel)

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			c.handleMessage(validator, msg.Payload)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *PartyChannel) handleMessage(validator interfaces.PartyValidator, payload string) {
	var resp partyResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		_ = level.Warn(c.logger).Log("msg", "dropping malformed party response", "err", err)
		return
	}
	if !strings.EqualFold(resp.Tag, tagPartyResponse) {
		_ = level.Debug(c.logger).Log("msg", "ignoring message with foreign tag", "tag", resp.Tag)
		return
	}
	if resp.SubjectID == "" {
		_ = level.Warn(c.logger).Log("msg", "dropping party response without subject id")
		return
	}

	validator.HandleResponse(domain.PartyInfo{
		SubjectID: resp.SubjectID,
		Success:   resp.Success,
		IsLeader:  resp.IsLeader,
		Size:      resp.PartySize,
		MemberIDs: resp.MemberIDs,
	})
}
