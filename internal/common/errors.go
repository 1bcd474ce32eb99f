// Package common defines shared sentinel errors used across the Daily
// Epiphany client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors, rejected before any provider call.
	ErrEmptyObservation = errors.New("observation must not be empty")

	// Generation errors. ErrGenerationFailed is the only error category that
	// is ever user-visible; provider detail stays in the logs.
	ErrGenerationFailed = errors.New("generation failed")

	// Orchestrator state errors.
	ErrGenerationInProgress = errors.New("a generation is already in progress")

	// Identity errors.
	ErrNotSignedIn = errors.New("not signed in")
)
