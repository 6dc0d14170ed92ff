package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrPolicyRows indicates a placement policy was combined with a row
	// count below the policy's minimum.
	ErrPolicyRows = errors.New("grid: too few rows for placement policy")

	// ErrAddress indicates a slot address outside the current grid.
	ErrAddress = errors.New("grid: slot address out of range")

	// ErrUnknownPolicy indicates a policy name outside the closed set.
	ErrUnknownPolicy = errors.New("grid: unknown placement policy")
)
