package interfaces

import "context"

// EventWorkflow is the top-level saga invoked once a requester has picked a
// boss and a theme. StartEncounter runs the full sequence (party check,
// validation, funds reservation, provisioning, activation) and compensates
// the completed steps when a later one fails.
//
//go:generate moq -stub -out mock/workflow.go -pkg mock . EventWorkflow
type EventWorkflow interface {
	StartEncounter(ctx context.Context, requesterID string, bossID string, themeID string) error
}
