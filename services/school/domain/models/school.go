package models

import "time"

// School is the sole aggregate of this bounded context. The store assigns ID
// on first save (monotonic, never reused). Active starts true and flips to
// false on soft-delete; an inactive record is terminal and invisible to
// normal lookups while still counting toward unfiltered listings.
type School struct {
	ID        int64
	Name      SchoolName
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSchool constructs an unsaved School aggregate. ID stays zero until the
// repository persists it; audit timestamps are maintained by the store.
func NewSchool(name SchoolName) *School {
	return &School{
		Name:   name,
		Active: true,
	}
}

// WithName returns a copy of the school with only Name replaced. Every other
// field (ID, Active, audit timestamps) carries over unchanged.
func (s School) WithName(name SchoolName) *School {
	s.Name = name
	return &s
}

// Deactivate marks the school soft-deleted. There is no reactivation path.
func (s *School) Deactivate() {
	s.Active = false
}
