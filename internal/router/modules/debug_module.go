package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-user-lookup/internal/interface/middleware"
)

const DebugVarsPerMinute = 120

type DebugModule struct {
	Redis *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule { return &DebugModule{Redis: rdb} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), with its own per-IP budget
	rl := middleware.RateLimit(middleware.NewLimiter(m.Redis, DebugVarsPerMinute, time.Minute), middleware.KeyByIPAndPath(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
