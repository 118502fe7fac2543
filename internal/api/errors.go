package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"myhealth/rehab-api/internal/service"
)

const msgInternal = "internal server error, please try again later"

// serviceErrorStatus maps the service sentinels to HTTP statuses. The
// sentinel's text is returned as the message.
var serviceErrorStatus = []struct {
	err    error
	status int
}{
	{service.ErrMissingFields, http.StatusBadRequest},
	{service.ErrUsernameTaken, http.StatusBadRequest},
	{service.ErrValidationFailed, http.StatusBadRequest},
	{service.ErrInvalidContentType, http.StatusBadRequest},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrPlanAccessDenied, http.StatusForbidden},
	{service.ErrRecordAccessDenied, http.StatusForbidden},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrExerciseNotFound, http.StatusNotFound},
	{service.ErrPlanNotFound, http.StatusNotFound},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrCommentNotFound, http.StatusNotFound},
	{service.ErrParentCommentNotFound, http.StatusNotFound},
	{service.ErrUploadsDisabled, http.StatusServiceUnavailable},
}

// respondWithServiceError answers with the status of a known service error.
// Anything else is logged and hidden behind a generic 500.
func respondWithServiceError(c *gin.Context, err error) {
	for _, known := range serviceErrorStatus {
		if errors.Is(err, known.err) {
			abortWithError(c, known.status, err.Error())
			return
		}
	}
	requestLogger(c).WithError(err).WithField("route", c.FullPath()).Error("unhandled service error")
	abortWithError(c, http.StatusInternalServerError, msgInternal)
}

// bindJSON decodes the body, answering 400 on malformed input. An empty body
// is an empty object: partial updates become no-ops while binding rules such
// as required still apply.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
