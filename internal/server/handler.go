package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mpavlovic/retrieval-eval/internal/apperr"
	"github.com/mpavlovic/retrieval-eval/internal/eval"
	"github.com/mpavlovic/retrieval-eval/internal/eval/plan"
)

const maxPlanBytes = 1 << 20

// RunsHandler executes run plans posted by clients. Plans reference
// corpus files by path, so the server must see the same filesystem the
// plans describe.
type RunsHandler struct{}

func NewRunsHandler() *RunsHandler {
	return &RunsHandler{}
}

func (h *RunsHandler) Bind(e *echo.Echo) {
	e.POST("/api/v1/runs", h.CreateRun)
}

// CreateRun accepts a YAML or JSON plan document, runs the evaluation
// synchronously and returns the report.
func (h *RunsHandler) CreateRun(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPlanBytes))
	if err != nil {
		return apperr.NewValidationWrap("read request body", err)
	}
	if len(body) == 0 {
		return apperr.NewValidation("request body is empty")
	}

	p, err := plan.Parse(body)
	if err != nil {
		return err
	}

	rep, err := eval.Execute(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rep)
}
