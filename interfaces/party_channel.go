package interfaces

import "context"

// PartyRequestSender publishes one party-info request for a subject on the
// outbound sub-channel to the party authority. Fire and forget: no ack, no
// retry; the response (if any) arrives out of band on the inbound sub-channel
// and is delivered to the party validator by the channel's listener.
//
//go:generate moq -stub -out mock/party_channel.go -pkg mock . PartyRequestSender
type PartyRequestSender interface {
	SendPartyInfoRequest(ctx context.Context, subjectID string) error
}
