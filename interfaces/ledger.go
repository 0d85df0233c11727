package interfaces

import "context"

// GemLedger is the synchronous funds collaborator. Withdraw is an atomic
// check-and-decrement: it fails without side effects when the balance is
// short. Implementation can be Redis or an economy service client.
//
//go:generate moq -stub -out mock/ledger.go -pkg mock . GemLedger
type GemLedger interface {
	Has(ctx context.Context, subjectID string, amount int64) (bool, error)
	Withdraw(ctx context.Context, subjectID string, amount int64) error
	Deposit(ctx context.Context, subjectID string, amount int64) error
}
