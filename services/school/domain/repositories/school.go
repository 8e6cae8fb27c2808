package repositories

import (
	"context"

	"github.com/ghuser/schoolsvc/services/school/domain/models"
	"github.com/ghuser/schoolsvc/services/school/domain/query"
)

// PageRequest selects a 0-based page of results.
type PageRequest struct {
	Number int // 0-based page index
	Size   int // rows per page
}

// Offset returns the row offset corresponding to the page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one slice of School rows plus the total row count ignoring
// pagination.
type Page struct {
	Content       []*models.School
	TotalElements int
	Number        int
	Size          int
}

// SchoolRepository is the persistence interface for the School aggregate.
// The domain layer owns this interface; infrastructure implements it.
type SchoolRepository interface {
	// FindAll returns every row, active or not, in store-default (id) order.
	// An out-of-range page yields an empty page, never an error.
	FindAll(ctx context.Context, page PageRequest) (Page, error)

	// FindOne returns the single row matching pred, or ErrSchoolNotFound when
	// nothing matches. Predicates used by the service match at most one row.
	FindOne(ctx context.Context, pred query.Predicate) (*models.School, error)

	// FindAllMatching returns the page of rows matching pred.
	FindAllMatching(ctx context.Context, pred query.Predicate, page PageRequest) (Page, error)

	// Save inserts when school.ID is zero, otherwise updates the existing row
	// by id. The store maintains audit timestamps on every write and the
	// returned School is the post-write representation. Storage faults and
	// constraint violations wrap ErrStorage.
	Save(ctx context.Context, school *models.School) (*models.School, error)
}
