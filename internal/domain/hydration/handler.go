package hydration

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/water")
	g.GET("", h.State)
	g.POST("/glasses", h.Add)
	g.DELETE("/glasses", h.Remove)
	g.POST("/reset", h.Reset)
	g.PUT("/goal", h.SetGoal)
}

type goalRequest struct {
	Goal int `json:"goal"`
}

func (h *Handler) respond(c echo.Context, st Status, err error) error {
	if err != nil {
		return assessment.HTTPError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) State(c echo.Context) error {
	st, err := h.svc.State(c.Request().Context())
	return h.respond(c, st, err)
}

func (h *Handler) Add(c echo.Context) error {
	st, err := h.svc.Add(c.Request().Context())
	return h.respond(c, st, err)
}

func (h *Handler) Remove(c echo.Context) error {
	st, err := h.svc.Remove(c.Request().Context())
	return h.respond(c, st, err)
}

func (h *Handler) Reset(c echo.Context) error {
	st, err := h.svc.Reset(c.Request().Context())
	return h.respond(c, st, err)
}

func (h *Handler) SetGoal(c echo.Context) error {
	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st, err := h.svc.SetGoal(c.Request().Context(), req.Goal)
	return h.respond(c, st, err)
}
