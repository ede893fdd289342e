package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
)

// ErrorBody is the stable failure shape: a fixed error string plus optional
// machine-readable details (field->message map for validation failures).
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Fail writes a failure body with the given status.
func Fail(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorBody{Error: message, Details: details})
}

// AbortFail writes a failure body and aborts the middleware chain.
func AbortFail(c *gin.Context, status int, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Details: details})
}

// statusOf centralizes the kind->status mapping so no other layer chooses
// HTTP codes.
func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError translates a classified error into its HTTP response. Unexpected
// errors are logged with full detail and surfaced with a generic body only.
func FromError(c *gin.Context, logger *logrus.Logger, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		e = apperr.Wrap(apperr.Internal, err, "unclassified error")
	}
	status := statusOf(e.Kind)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			}).Error("internal error")
		}
		Fail(c, status, "Internal Server Error", nil)
		return
	}
	Fail(c, status, e.Message, e.Details)
}
