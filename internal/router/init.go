package router

import (
	"github.com/mahmoudaladin7/To-Do-List/internal/application"
	"github.com/mahmoudaladin7/To-Do-List/internal/container"
	pginfra "github.com/mahmoudaladin7/To-Do-List/internal/infrastructure/postgres"
	handlers "github.com/mahmoudaladin7/To-Do-List/internal/interface/http"
	"github.com/mahmoudaladin7/To-Do-List/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the injected
// container and registers every feature module with the router registry.
// Called once during startup (or per test with a fresh container).
func InitModules(r *Registry, c *container.Container) {
	userRepo := pginfra.NewUserRepository(c.PG)
	taskRepo := pginfra.NewTaskRepository(c.PG)

	userSvc := application.NewUserService(userRepo, c.Logger)
	taskSvc := application.NewTaskService(taskRepo, c.Logger)

	userHandler := handlers.NewUserHandler(userSvc, c.Logger)
	taskHandler := handlers.NewTaskHandler(taskSvc, c.Logger)

	r.Add(modules.NewUserModule(userHandler, c))
	r.Add(modules.NewTaskModule(taskHandler, userSvc, c))
	if c.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c))
	}
}
