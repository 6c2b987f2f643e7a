package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-lookup/internal/interface/http"
)

// StaticModule serves the course page at the site root.
type StaticModule struct {
	Handler *handlers.StaticHandler
}

func NewStaticModule(h *handlers.StaticHandler) *StaticModule { return &StaticModule{Handler: h} }

func (m *StaticModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.Handler.Index)
	rg.HEAD("", m.Handler.Index)
}
