// Package handlers translates HTTP requests into typed service calls and
// service results back into HTTP responses. One file per endpoint.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	schooldomain "github.com/ghuser/schoolsvc/services/school/domain"
	"github.com/ghuser/schoolsvc/services/school/domain/models"
)

// SchoolResponse is the JSON representation of a school. The id_school field
// name is part of the published API contract.
type SchoolResponse struct {
	ID        int64     `json:"id_school"  example:"1"`
	Name      string    `json:"name"       example:"high school"`
	Active    bool      `json:"active"     example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name SchoolResponse

// ErrorResponse documents the error envelope written by errhttp.
type ErrorResponse struct {
	Code  string `json:"code"  example:"school.not_found"`
	Error string `json:"error" example:"school not found"`
} // @name ErrorResponse

func toSchoolResponse(school *models.School) SchoolResponse {
	return SchoolResponse{
		ID:        school.ID,
		Name:      school.Name.String(),
		Active:    school.Active,
		CreatedAt: school.CreatedAt,
		UpdatedAt: school.UpdatedAt,
	}
}

// schoolIDParam parses the {schoolId} route parameter. A non-numeric id can
// never name a live record, so it maps to ErrSchoolNotFound.
func schoolIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "schoolId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("school id %q: %w", raw, schooldomain.ErrSchoolNotFound)
	}
	return id, nil
}
