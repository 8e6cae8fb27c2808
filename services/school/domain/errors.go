package domain

import "errors"

// Sentinel errors for the school domain. Use errors.Is() to check these.
// Not-found and invalid-name are expected business outcomes returned as
// values; ErrStorage marks infrastructure faults that propagate upward.
var (
	// ErrSchoolNotFound indicates no live school exists for the requested id.
	// Covers both rows that never existed and soft-deleted ones.
	ErrSchoolNotFound = errors.New("school not found")

	// ErrInvalidSchoolName indicates the school name violates domain constraints.
	ErrInvalidSchoolName = errors.New("invalid school name")

	// ErrStorage indicates the persistence medium is unreachable or rejected
	// a write with a constraint violation.
	ErrStorage = errors.New("storage failure")
)
