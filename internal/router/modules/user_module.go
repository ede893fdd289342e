package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudaladin7/To-Do-List/internal/container"
	handlers "github.com/mahmoudaladin7/To-Do-List/internal/interface/http"
	"github.com/mahmoudaladin7/To-Do-List/internal/interface/middleware"
)

// UserModule wires the registration endpoint.
// Public: POST /api/v1/users — a new identity cannot authenticate before it
// exists, so this is the one route outside the auth gate.

type UserModule struct {
	Handler *handlers.UserHandler
	C       *container.Container
}

func NewUserModule(h *handlers.UserHandler, c *container.Container) *UserModule {
	return &UserModule{Handler: h, C: c}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.C.Redis, 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
}
