package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the sender failed the identity check.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotFound means the referenced id has no record.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientBalance means the amount exceeds the available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidComputation is the computation registry's NotFound.
	ErrInvalidComputation = fmt.Errorf("invalid computation: %w", ErrNotFound)
	// ErrInvalidChannel is the channel registry's NotFound.
	ErrInvalidChannel = fmt.Errorf("invalid channel: %w", ErrNotFound)
	// ErrInvalidMessage is the message registry's NotFound.
	ErrInvalidMessage = fmt.Errorf("invalid message: %w", ErrNotFound)

	ErrAmountOverflow     = errors.New("amount overflow")
	ErrEmptyAddress       = errors.New("empty address")
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrUnknownAction      = errors.New("unknown action")
)
