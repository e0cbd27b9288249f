package recommendation

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
	api.GET("/dashboard", h.Dashboard)
	api.POST("/recommendations", h.Recommend)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return assessment.HTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

// Recommend answers for a profile in the request body without storing it.
func (h *Handler) Recommend(c echo.Context) error {
	var p assessment.PatientProfile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := p.Validate(); err != nil {
		return assessment.HTTPError(err)
	}
	return c.JSON(http.StatusOK, h.svc.For(p))
}
