package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudaladin7/To-Do-List/internal/application"
	"github.com/mahmoudaladin7/To-Do-List/internal/container"
	handlers "github.com/mahmoudaladin7/To-Do-List/internal/interface/http"
	"github.com/mahmoudaladin7/To-Do-List/internal/interface/middleware"
)

// TaskModule wires task CRUD under the Basic auth gate.
// Protected: POST/GET /api/v1/tasks, GET/PATCH/DELETE /api/v1/tasks/:id

type TaskModule struct {
	Handler *handlers.TaskHandler
	Users   *application.UserService
	C       *container.Container
}

func NewTaskModule(h *handlers.TaskHandler, users *application.UserService, c *container.Container) *TaskModule {
	return &TaskModule{Handler: h, Users: users, C: c}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.BasicAuth(m.Users, m.C.Cfg.AuthRealm, m.C.Logger))
	tasks.Use(
		middleware.RateLimit(m.C.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(m.C.Redis, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		tasks.POST("", m.Handler.Create)
		tasks.GET("", m.Handler.List)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PATCH("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
