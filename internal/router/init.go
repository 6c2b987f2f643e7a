package router

import (
	"time"

	appuser "github.com/oksasatya/go-user-lookup/internal/application"
	"github.com/oksasatya/go-user-lookup/internal/container"
	handlers "github.com/oksasatya/go-user-lookup/internal/interface/http"
	"github.com/oksasatya/go-user-lookup/internal/interface/middleware"
	"github.com/oksasatya/go-user-lookup/internal/router/modules"
)

// Routes under /api that never count against the shared limit.
// /debug/vars is limited by its own module.
var unlimitedPaths = []string{"/api/health", "/api/debug/vars"}

type UserModuleDeps struct {
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	service := appuser.NewService(container.GetRecordSource())
	handler := handlers.NewUserHandler(service, container.GetLogger())
	return UserModuleDeps{
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup, after the record source is connected
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	userDeps := buildUserDeps()

	allow := []middleware.AllowFunc{middleware.AllowPaths(unlimitedPaths...)}
	if cfg.RateLimitAllowPrivate {
		allow = append(allow, middleware.AllowPrivateIP())
	}
	limiter := middleware.NewLimiter(container.GetRedis(), cfg.RateLimitPerMinute, time.Minute)
	r.Use(middleware.RateLimit(limiter, middleware.KeyByIP(), middleware.AnyOf(allow...)))

	r.Add(modules.New(userDeps.Handler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRedis()))
	}
	r.AddRoot(modules.NewStaticModule(handlers.NewStaticHandler()))
}
