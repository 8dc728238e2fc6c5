package models

import (
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/platform/sentinel"
)

// Domain error kinds. Callers match them with errors.Is; transports map them
// through their dErrors code and show the outermost message. Entity-specific
// errors wrap the kind so both the precise and the general check succeed, e.g.
//
//	errors.Is(err, ErrDuplicateCandidateNumber) // precise
//	errors.Is(err, ErrDuplicateNumber)          // kind
var (
	ErrNotFound = sentinel.ErrNotFound

	ErrCandidateNotFound  = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "candidate not found")
	ErrTableNotFound      = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "table not found")
	ErrAgentNotFound      = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "agent not found")
	ErrTallySheetNotFound = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "tally sheet not found")

	ErrDuplicateNumber          = dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "number already in use")
	ErrDuplicateCandidateNumber = dErrors.Wrap(ErrDuplicateNumber, dErrors.CodeConflict, "candidate number already in use")
	ErrDuplicateTableNumber     = dErrors.Wrap(ErrDuplicateNumber, dErrors.CodeConflict, "table number already in use")

	ErrInvalidNationalID    = dErrors.New(dErrors.CodeValidation, "national id must be exactly 8 digits")
	ErrPasswordTooShort     = dErrors.New(dErrors.CodeValidation, "password must be at least 4 characters")
	ErrDuplicateNationalID  = dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "national id already registered")
	ErrTableAlreadyAssigned = dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "table already assigned to another agent")

	ErrTallySumMismatch   = dErrors.New(dErrors.CodeValidation, "vote sum does not match registered voters")
	ErrTallyAlreadyExists = dErrors.Wrap(sentinel.ErrAlreadyExists, dErrors.CodeConflict, "table already has a tally sheet")
	ErrInvalidStatus      = dErrors.New(dErrors.CodeValidation, "invalid tally sheet status")
	ErrNoTableAssigned    = dErrors.New(dErrors.CodeForbidden, "agent has no assigned table")

	ErrInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	ErrNoSession          = dErrors.New(dErrors.CodeUnauthorized, "no active session")
	ErrForbidden          = dErrors.New(dErrors.CodeForbidden, "operation not allowed for role")
)
