// Package services contains stateless domain services for the school bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/schoolsvc/services/school/domain/models"
)

// ValidateName enforces business rules for SchoolName beyond the structural
// constraints of the SchoolName constructor (length 1–255). The boundary
// validates request bodies too, but the service defends independently.
//
// Business rules:
//   - No leading or trailing whitespace
//   - Must not be only whitespace characters
//   - No control characters (Unicode category Cc)
func ValidateName(name models.SchoolName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("school name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("school name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("school name must not contain control characters")
		}
	}

	return nil
}
