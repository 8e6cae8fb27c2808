package handlers

import (
	"net/http"

	"github.com/ghuser/schoolsvc/pkg/errhttp"
	pkgvalidator "github.com/ghuser/schoolsvc/pkg/validator"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
)

// SchoolForm is the request body for POST /school and PUT /school/{schoolId}.
type SchoolForm struct {
	Name string `json:"name" validate:"required,min=1,max=255" example:"my pretty school"`
} // @name SchoolForm

// PostSchoolHandler handles POST /school requests.
type PostSchoolHandler struct {
	svc *appsvcs.Services
}

// NewPostSchoolHandler returns a PostSchoolHandler backed by the given services.
func NewPostSchoolHandler(svc *appsvcs.Services) *PostSchoolHandler {
	return &PostSchoolHandler{svc: svc}
}

// Execute creates a new school. Accepted responses carry no body.
//
//	@Summary		Save a new school
//	@Tags			schools
//	@Accept			json
//	@Param			body	body	SchoolForm	true	"School to create"
//	@Success		202
//	@Failure		400	{object}	ErrorResponse
//	@Router			/school [post]
func (h *PostSchoolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	form, ok := pkgvalidator.ValidateRequest[SchoolForm](w, r)
	if !ok {
		return
	}

	if _, err := h.svc.School.Create(r.Context(), form.Name); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
