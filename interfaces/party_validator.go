package interfaces

import (
	"context"

	"arenamanager/domain"
)

// PartyValidator resolves "is this subject in a qualifying party, and who else
// is in it" against the cross-process party authority. RequestPartyInfo blocks
// until the matching response arrives or the request times out; timeout is not
// an error but the PartyInfo failure sentinel. At most one outstanding request
// per subject: a duplicate fails with service.ErrRequestPending.
// HandleResponse is called by the inbound channel listener; responses with no
// pending request are logged and discarded.
//
//go:generate moq -stub -out mock/party_validator.go -pkg mock . PartyValidator
type PartyValidator interface {
	RequestPartyInfo(ctx context.Context, subjectID string) (domain.PartyInfo, error)
	HandleResponse(info domain.PartyInfo)
}
