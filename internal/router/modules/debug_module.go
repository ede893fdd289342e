package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudaladin7/To-Do-List/internal/container"
	"github.com/mahmoudaladin7/To-Do-List/internal/interface/middleware"
)

type DebugModule struct {
	C *container.Container
}

func NewDebugModule(c *container.Container) *DebugModule { return &DebugModule{C: c} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(m.C.Redis, 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
