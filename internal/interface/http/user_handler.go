package handlers

import (
	"bytes"
	"errors"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-user-lookup/internal/application"
	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	repo "github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/internal/interface/presenter"
	"github.com/oksasatya/go-user-lookup/pkg/helpers"
	"github.com/oksasatya/go-user-lookup/pkg/response"
	"github.com/oksasatya/go-user-lookup/pkg/validation"
)

// lookup counters, published on /api/debug/vars
var lookups = expvar.NewMap("user_lookups")

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type userURI struct {
	ID int64 `uri:"id" binding:"userid"`
}

// Render answers GET /users?id=N with the plain-text profile lines.
// A missing or non-numeric id falls back to the default user.
func (h *UserHandler) Render(c *gin.Context) {
	id := userapp.ResolveUserID(c.Query("id"))
	u, ok := h.lookup(c, id)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := presenter.Render(&buf, u.Profile()); err != nil {
		h.fail(c, id, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// GetProfile answers GET /users/:id with the profile as JSON.
func (h *UserHandler) GetProfile(c *gin.Context) {
	var req userURI
	if err := c.ShouldBindUri(&req); err != nil {
		lookups.Add("error", 1)
		response.Error[any](c, http.StatusBadRequest, "invalid user id", validation.ToDetails(err))
		return
	}
	u, ok := h.lookup(c, req.ID)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, u.Profile(), "profile", nil)
}

func (h *UserHandler) lookup(c *gin.Context, id int64) (*entity.User, bool) {
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err)
		return nil, false
	}
	lookups.Add("ok", 1)
	return u, true
}

func (h *UserHandler) fail(c *gin.Context, id int64, err error) {
	lookups.Add("error", 1)
	status, msg := statusFor(err)
	if h.Logger != nil {
		helpers.LogError(h.Logger, err.Error(), err, logrus.Fields{
			"user_id":    id,
			"request_id": c.GetString("request_id"),
		})
	}
	var details any
	if status == http.StatusBadRequest {
		details = validation.ToDetails(err)
	}
	response.Error[any](c, status, msg, details)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, validation.ErrInvalidIdentifier), errors.Is(err, validation.ErrInvalidEmail):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, repo.ErrConnection):
		return http.StatusServiceUnavailable, "record source unavailable"
	default:
		return http.StatusInternalServerError, "lookup failed"
	}
}
