package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudaladin7/To-Do-List/internal/application"
	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
	"github.com/mahmoudaladin7/To-Do-List/pkg/response"
)

// BasicAuth verifies the Authorization header on every request through the
// credential verifier. It sets userID and userEmail in the Gin context on
// success. Every 401 carries the Basic challenge so clients can retry.
func BasicAuth(users *application.UserService, realm string, logger *logrus.Logger) gin.HandlerFunc {
	challenge := `Basic realm="` + realm + `"`
	return func(c *gin.Context) {
		user, err := users.VerifyBasic(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			var e *apperr.Error
			if errors.As(err, &e) && e.Kind == apperr.Unauthenticated {
				c.Header("WWW-Authenticate", challenge)
				response.AbortFail(c, http.StatusUnauthorized, e.Message, nil)
				return
			}
			if logger != nil {
				logger.WithError(err).Error("credential verification failed")
			}
			response.AbortFail(c, http.StatusInternalServerError, "Internal Server Error", nil)
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Next()
	}
}
