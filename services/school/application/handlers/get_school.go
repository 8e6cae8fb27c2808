package handlers

import (
	"net/http"

	"github.com/ghuser/schoolsvc/pkg/errhttp"
	"github.com/ghuser/schoolsvc/pkg/httpx"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
)

// GetSchoolHandler handles GET /school/{schoolId} requests.
type GetSchoolHandler struct {
	svc *appsvcs.Services
}

// NewGetSchoolHandler returns a GetSchoolHandler backed by the given services.
func NewGetSchoolHandler(svc *appsvcs.Services) *GetSchoolHandler {
	return &GetSchoolHandler{svc: svc}
}

// Execute fetches one live school by id. Soft-deleted schools are 404.
//
//	@Summary		View a school
//	@Tags			schools
//	@Produce		json
//	@Param			schoolId	path		int	true	"ID of the school"	example(1)
//	@Success		200			{object}	SchoolResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/school/{schoolId} [get]
func (h *GetSchoolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := schoolIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	school, err := h.svc.School.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSchoolResponse(school))
}
