package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond converts err into its structured response. Unknown errors are attached
// to the gin context for the request logger and reported as 500.
func Respond(c *gin.Context, err error) {
	var (
		fe  FieldError
		fes FieldErrors
		nf  NotFoundError
		ce  ConstraintError
		se  ScopeError
		be  BusinessError
	)

	switch {
	case errors.As(err, &fes):
		fields := make(map[string]string, len(fes))
		for _, f := range fes {
			fields[f.Field] = f.Reason
		}
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "invalid_field",
			Message: fes.Error(),
			Fields:  fields,
		})

	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "invalid_field",
			Message: fe.Reason,
			Fields:  map[string]string{fe.Field: fe.Reason},
		})

	case errors.As(err, &nf):
		NotFound(c, "not_found", nf.Error())

	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "constraint_violation",
			Message: ce.Error(),
			Fields:  map[string]string{ce.Field: ce.Reason},
		})

	case errors.As(err, &se):
		fields := make(map[string]string, len(se.Fields))
		for _, f := range se.Fields {
			fields[f] = "field cannot be changed here"
		}
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "partial_update_scope_violation",
			Message: se.Error(),
			Fields:  fields,
		})

	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Code)

	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "internal server error")
	}
}
