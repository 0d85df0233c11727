package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a record (theme, boss, instance) is absent.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrNoCapacity means that no arena slot is currently available.
	ErrNoCapacity = "no_capacity"
	// ErrPartyCheckFailed means the party lookup failed, timed out, or the
	// party does not qualify (not a member, not the leader, size out of bounds).
	ErrPartyCheckFailed = "party_check_failed"
	// ErrInsufficientFunds means the requester cannot cover the entry cost.
	ErrInsufficientFunds = "insufficient_funds"
	// ErrCollaboratorFailure means an external collaborator (blueprint engine,
	// mob spawner, message channel) failed mid-operation.
	ErrCollaboratorFailure = "collaborator_failure"
)

// ArenaError represents an error within the context of arenamanager services.
type ArenaError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewArenaError creates a new ArenaError.
func NewArenaError(code string, message string, inner error) *ArenaError {
	return &ArenaError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func (e ArenaError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e ArenaError) Unwrap() error {
	return e.Inner
}

// ToArenaError returns a pointer to an arenamanager error, or nil if it is not one.
func ToArenaError(err error) *ArenaError {
	var e *ArenaError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func NewInternalServerError(message string, inner error) *ArenaError {
	if e := ToArenaError(inner); e != nil {
		return e
	}
	return NewArenaError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *ArenaError {
	if e := ToArenaError(inner); e != nil {
		return e
	}
	return NewArenaError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *ArenaError {
	if e := ToArenaError(inner); e != nil {
		return e
	}
	return NewArenaError(ErrBadParameter, message, inner)
}

func NewNoCapacityError(message string, inner error) *ArenaError {
	return NewArenaError(ErrNoCapacity, message, inner)
}

func NewPartyCheckFailedError(message string, inner error) *ArenaError {
	return NewArenaError(ErrPartyCheckFailed, message, inner)
}

func NewInsufficientFundsError(message string, inner error) *ArenaError {
	return NewArenaError(ErrInsufficientFunds, message, inner)
}

func NewCollaboratorFailureError(message string, inner error) *ArenaError {
	return NewArenaError(ErrCollaboratorFailure, message, inner)
}

func IsEntityNotFound(err error) bool {
	e := ToArenaError(err)
	return e != nil && e.Code == ErrEntityNotFound
}

func IsNoCapacity(err error) bool {
	e := ToArenaError(err)
	return e != nil && e.Code == ErrNoCapacity
}

func IsPartyCheckFailed(err error) bool {
	e := ToArenaError(err)
	return e != nil && e.Code == ErrPartyCheckFailed
}

func IsInsufficientFunds(err error) bool {
	e := ToArenaError(err)
	return e != nil && e.Code == ErrInsufficientFunds
}

func IsCollaboratorFailure(err error) bool {
	e := ToArenaError(err)
	return e != nil && e.Code == ErrCollaboratorFailure
}
