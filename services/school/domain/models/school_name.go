package models

import "fmt"

// SchoolName is a value object representing a valid school name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type SchoolName string

const (
	minSchoolNameLength = 1
	maxSchoolNameLength = 255
)

// NewSchoolName constructs a valid SchoolName or returns an error if
// constraints are violated.
func NewSchoolName(s string) (SchoolName, error) {
	if len(s) < minSchoolNameLength {
		return "", fmt.Errorf("school name must be at least %d character", minSchoolNameLength)
	}
	if len(s) > maxSchoolNameLength {
		return "", fmt.Errorf("school name must not exceed %d characters", maxSchoolNameLength)
	}
	return SchoolName(s), nil
}

// String returns the underlying string value.
func (n SchoolName) String() string {
	return string(n)
}
