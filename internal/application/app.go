package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/internal/interface/presenter"
)

// DefaultUserID is used when the request carries no usable id.
const DefaultUserID int64 = 1

var (
	ErrConnectionFailure = errors.New("failed to connect to database")
	ErrNotReady          = errors.New("application not ready")
)

type State int

const (
	StateInit State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Error is returned by NewApp and wraps whatever stopped the app from becoming ready.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// App runs one lookup: resolve id, fetch, render.
type App struct {
	state   State
	source  repo.RecordSource
	service *Service
	logger  *logrus.Logger
	out     io.Writer
}

// NewApp connects source and returns a ready App. When Connect fails the
// returned App is nil and the error wraps ErrConnectionFailure.
func NewApp(ctx context.Context, source repo.RecordSource, logger *logrus.Logger, out io.Writer) (*App, error) {
	a := &App{state: StateInit, source: source, logger: logger, out: out}
	if err := source.Connect(ctx); err != nil {
		a.state = StateFailed
		return nil, &Error{Op: "connect", Err: fmt.Errorf("%w: %w", ErrConnectionFailure, err)}
	}
	a.service = NewService(source)
	a.state = StateReady
	return a, nil
}

func (a *App) State() State { return a.state }

// Service exposes the lookup service bound to the connected source.
func (a *App) Service() *Service { return a.service }

// Run performs one lookup for rawID and writes the profile to the output.
// Failures are logged at error level and never returned.
func (a *App) Run(ctx context.Context, rawID string) {
	if a.state != StateReady {
		a.logger.Error(ErrNotReady.Error())
		return
	}
	if err := a.lookup(ctx, ResolveUserID(rawID)); err != nil {
		a.logger.Error(err.Error())
	}
}

func (a *App) lookup(ctx context.Context, id int64) error {
	u, err := a.service.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return presenter.Render(a.out, u.Profile())
}

// Close releases the record source when it holds resources.
func (a *App) Close() error {
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ResolveUserID parses raw as a base-10 integer, falling back to DefaultUserID
// when raw is blank or not a number. Zero and negatives are returned unchanged.
func ResolveUserID(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return DefaultUserID
	}
	return id
}
