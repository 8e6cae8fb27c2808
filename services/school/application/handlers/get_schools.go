package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/schoolsvc/pkg/errhttp"
	"github.com/ghuser/schoolsvc/pkg/httpx"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
	"github.com/ghuser/schoolsvc/services/school/domain/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListSchoolsResponse is the page envelope for GET /school.
type ListSchoolsResponse struct {
	Content       []SchoolResponse `json:"content"`
	TotalElements int              `json:"totalElements" example:"41"`
	Page          int              `json:"page"          example:"0"`
	Size          int              `json:"size"          example:"20"`
} // @name ListSchoolsResponse

// GetSchoolsHandler handles GET /school requests.
type GetSchoolsHandler struct {
	svc *appsvcs.Services
}

// NewGetSchoolsHandler returns a GetSchoolsHandler backed by the given services.
func NewGetSchoolsHandler(svc *appsvcs.Services) *GetSchoolsHandler {
	return &GetSchoolsHandler{svc: svc}
}

// Execute lists schools.
//
//	@Summary		List schools
//	@Description	Returns one page of schools, soft-deleted rows included. An empty page is a 200, not a 404.
//	@Tags			schools
//	@Produce		json
//	@Param			page	query		int	false	"0-based page index"	default(0)
//	@Param			size	query		int	false	"page size"				default(20)
//	@Success		200		{object}	ListSchoolsResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/school [get]
func (h *GetSchoolsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.School.List(r.Context(), pageRequest(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	content := make([]SchoolResponse, len(page.Content))
	for i, school := range page.Content {
		content[i] = toSchoolResponse(school)
	}

	httpx.JSON(w, http.StatusOK, ListSchoolsResponse{
		Content:       content,
		TotalElements: page.TotalElements,
		Page:          page.Number,
		Size:          page.Size,
	})
}

// pageRequest reads page/size query parameters, falling back to defaults on
// missing, malformed, or out-of-range values.
func pageRequest(r *http.Request) repositories.PageRequest {
	page := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	size := defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = min(v, maxPageSize)
	}
	return repositories.PageRequest{Number: page, Size: size}
}
