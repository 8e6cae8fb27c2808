package handlers

import (
	"net/http"

	"github.com/ghuser/schoolsvc/pkg/errhttp"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
)

// DeleteSchoolHandler handles DELETE /school/{schoolId} requests.
type DeleteSchoolHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSchoolHandler returns a DeleteSchoolHandler backed by the given services.
func NewDeleteSchoolHandler(svc *appsvcs.Services) *DeleteSchoolHandler {
	return &DeleteSchoolHandler{svc: svc}
}

// Execute soft-deletes a live school. Repeat deletes of the same id are 404:
// inactive is terminal and indistinguishable from never-existed.
//
//	@Summary		Delete a school
//	@Tags			schools
//	@Param			schoolId	path	int	true	"ID of the school"	example(1)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/school/{schoolId} [delete]
func (h *DeleteSchoolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := schoolIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.School.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
