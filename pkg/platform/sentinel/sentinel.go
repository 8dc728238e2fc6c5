package sentinel

import "errors"

// Sentinel errors for storage facts. Domain errors wrap them, so callers can
// test the kind of failure with errors.Is without knowing the entity.
//
//   - ErrNotFound: entity does not exist in the store
//   - ErrConflict: a uniqueness constraint would be broken by the write
//   - ErrAlreadyExists: a write-once record is already present
//
// Validation failures (malformed input) are not sentinels; use pkg/domain-errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")
)
