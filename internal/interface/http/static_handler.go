package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-lookup/web"
)

type StaticHandler struct {
	page []byte
}

func NewStaticHandler() *StaticHandler {
	return &StaticHandler{page: web.IndexHTML()}
}

// Index serves the course page unchanged.
func (h *StaticHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
