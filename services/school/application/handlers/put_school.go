package handlers

import (
	"net/http"

	"github.com/ghuser/schoolsvc/pkg/errhttp"
	pkgvalidator "github.com/ghuser/schoolsvc/pkg/validator"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
)

// PutSchoolHandler handles PUT /school/{schoolId} requests.
type PutSchoolHandler struct {
	svc *appsvcs.Services
}

// NewPutSchoolHandler returns a PutSchoolHandler backed by the given services.
func NewPutSchoolHandler(svc *appsvcs.Services) *PutSchoolHandler {
	return &PutSchoolHandler{svc: svc}
}

// Execute renames a live school. Only name is replaceable; a soft-deleted
// school is 404 and nothing is written.
//
//	@Summary		Update a school
//	@Tags			schools
//	@Accept			json
//	@Param			schoolId	path	int			true	"ID of the school"	example(1)
//	@Param			body		body	SchoolForm	true	"New school name"
//	@Success		202
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/school/{schoolId} [put]
func (h *PutSchoolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := schoolIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	form, ok := pkgvalidator.ValidateRequest[SchoolForm](w, r)
	if !ok {
		return
	}

	if _, err := h.svc.School.Update(r.Context(), id, form.Name); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
