// Package query defines the closed set of filter predicates over School rows.
// Only two named predicates exist and they combine with logical AND — no OR,
// no negation, no general expression tree. The repository layer renders a
// Predicate into SQL; the predicate itself is pure data.
package query

// Predicate is a composable filter condition. The zero value matches every row.
type Predicate struct {
	ID     *int64
	Active *bool
}

// ByID matches the row whose id equals the given value.
func ByID(id int64) Predicate {
	return Predicate{ID: &id}
}

// IsActive matches rows where the active flag is true.
func IsActive() Predicate {
	active := true
	return Predicate{Active: &active}
}

// And combines two predicates with logical AND. A condition set on both sides
// takes the right-hand value; in practice callers never combine conflicting
// conditions. ByID(id).And(IsActive()) is the canonical live-record predicate.
func (p Predicate) And(other Predicate) Predicate {
	if other.ID != nil {
		p.ID = other.ID
	}
	if other.Active != nil {
		p.Active = other.Active
	}
	return p
}

// IsEmpty reports whether the predicate matches every row.
func (p Predicate) IsEmpty() bool {
	return p.ID == nil && p.Active == nil
}
