package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-lookup/internal/interface/http"
)

// Module wires user lookup handlers into routes
// GET /api/users?id=N   plain-text profile
// GET /api/users/:id    JSON profile
// GET /api/health
type Module struct {
	Handler *handlers.UserHandler
}

func New(h *handlers.UserHandler) *Module {
	return &Module{Handler: h}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)

	users := rg.Group("/users")
	{
		users.GET("", m.Handler.Render)
		users.GET("/:id", m.Handler.GetProfile)
	}
}
