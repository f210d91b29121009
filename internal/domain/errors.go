package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Plot errors
	ErrMsgInvalidTransition = "invalid transition"
	ErrMsgTooSoon           = "plot is not ready for water yet"
	ErrMsgPlotNotFound      = "plot not found"

	// Resource errors
	ErrMsgInsufficientResource = "insufficient resource"
	ErrMsgInsufficientSeeds    = "not enough seeds"
	ErrMsgInsufficientWater    = "not enough water"
	ErrMsgInsufficientCoins    = "not enough coins"
	ErrMsgInsufficientBottles  = "no glass bottles"
	ErrMsgInsufficientNectar   = "not enough nectar"
	ErrMsgInsufficientItems    = "missing items"

	// Hive errors
	ErrMsgCapacityExceeded  = "hive capacity exceeded"
	ErrMsgHiveNotFound      = "hive not found"
	ErrMsgInvalidCount      = "count must be positive"
	ErrMsgBatchNotComplete  = "honey batch is not complete"
	ErrMsgNoBatchInProgress = "no honey batch in progress"

	// Order errors
	ErrMsgOrderNotFound  = "order not found"
	ErrMsgOrderExpired   = "order has expired"
	ErrMsgOrderNotActive = "order is not active"

	// Catalog errors
	ErrMsgCropNotFound = "crop not found"

	// Classification errors
	ErrMsgNoSession          = "no active session"
	ErrMsgAlreadyClassified  = "hive already classified today"
	ErrMsgPersistenceFailure = "persistence failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)
	ErrTooSoon           = fmt.Errorf("%w: %s", ErrInvalidTransition, ErrMsgTooSoon)
	ErrPlotNotFound      = errors.New(ErrMsgPlotNotFound)

	ErrInsufficientResource = errors.New(ErrMsgInsufficientResource)
	ErrInsufficientSeeds    = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientSeeds)
	ErrInsufficientWater    = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientWater)
	ErrInsufficientCoins    = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientCoins)
	ErrInsufficientBottles  = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientBottles)
	ErrInsufficientNectar   = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientNectar)
	ErrInsufficientItems    = fmt.Errorf("%w: %s", ErrInsufficientResource, ErrMsgInsufficientItems)

	ErrCapacityExceeded  = errors.New(ErrMsgCapacityExceeded)
	ErrHiveNotFound      = errors.New(ErrMsgHiveNotFound)
	ErrInvalidCount      = errors.New(ErrMsgInvalidCount)
	ErrBatchNotComplete  = errors.New(ErrMsgBatchNotComplete)
	ErrNoBatchInProgress = errors.New(ErrMsgNoBatchInProgress)

	ErrOrderNotFound  = errors.New(ErrMsgOrderNotFound)
	ErrOrderExpired   = errors.New(ErrMsgOrderExpired)
	ErrOrderNotActive = errors.New(ErrMsgOrderNotActive)

	ErrCropNotFound = errors.New(ErrMsgCropNotFound)

	ErrNoSession         = errors.New(ErrMsgNoSession)
	ErrAlreadyClassified = errors.New(ErrMsgAlreadyClassified)
	ErrPersistence       = errors.New(ErrMsgPersistenceFailure)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// MissingItemsError lists every requirement an inventory could not cover.
type MissingItemsError struct {
	Missing []string
}

func (e *MissingItemsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgInsufficientItems, strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrInsufficientItems and ErrInsufficientResource.
func (e *MissingItemsError) Unwrap() error {
	return ErrInsufficientItems
}
