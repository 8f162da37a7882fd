package response

import (
	stderrors "errors"
	"net/http"

	"pokedex-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data inside the standard envelope with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// JSON writes data as the bare response body. Used by resource endpoints whose
// shape is part of the public contract.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes err as an error envelope. HTTPError and ValidationErrors keep
// their status; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErrs errors.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    validationErrs,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// ErrorWithMap resolves err through mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	for target, httpErr := range mapping {
		if stderrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Forbidden writes a 403 envelope.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   MessageForbidden,
	})
}

// PanicError writes a generic 500 after a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}
