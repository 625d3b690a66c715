package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the JSON error body rendered at the HTTP boundary. Fields carries
// field-scoped validation messages keyed by form field name.
type Err struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`

	cause error
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.cause != nil {
		zap.L().Error(err.Message,
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

// ErrValidation maps ozzo field errors into a field-scoped 400 so the
// console can render each message next to the offending input.
func ErrValidation(err error) *Err {
	resp := &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "validation failed",
	}

	var fieldErrs validation.Errors
	if ok := asValidationErrors(err, &fieldErrs); ok {
		resp.Fields = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			resp.Fields[field] = fieldErr.Error()
		}

		return resp
	}

	resp.Message = err.Error()

	return resp
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v not found with %v %v", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
	}
}

// ErrSubmissionFailed hides the remote cause behind a generic message;
// the cause still reaches the log through RenderErr.
func ErrSubmissionFailed(cause error) *Err {
	return &Err{
		StatusCode: http.StatusBadGateway,
		Message:    "the submission could not be completed, please try again",
		cause:      cause,
	}
}

func ErrInternalServerError(cause error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		cause:      cause,
	}
}

func asValidationErrors(err error, target *validation.Errors) bool {
	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		return false
	}

	*target = fieldErrs

	return true
}
