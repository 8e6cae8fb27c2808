// Package errhttp maps domain sentinel errors to HTTP responses carrying a
// stable machine-readable code. Add a case to classify for each new sentinel.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/schoolsvc/pkg/httpx"
	schooldomain "github.com/ghuser/schoolsvc/services/school/domain"
)

// ErrorBody is the JSON error envelope returned to clients.
type ErrorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// WriteError maps err to an HTTP status and writes a {code, error} JSON body.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// For 5xx statuses the message is replaced with the generic status text so no
// internal detail (SQL, connection strings) reaches the caller.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	httpx.JSON(w, status, ErrorBody{Code: code, Error: msg})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, schooldomain.ErrSchoolNotFound):
		return http.StatusNotFound, "school.not_found" // 404
	case errors.Is(err, schooldomain.ErrInvalidSchoolName):
		return http.StatusBadRequest, "school.invalid_name" // 400
	case errors.Is(err, schooldomain.ErrStorage):
		return http.StatusServiceUnavailable, "storage.unavailable" // 503
	default:
		return http.StatusInternalServerError, "internal_error" // 500
	}
}
