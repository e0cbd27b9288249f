package report

import (
	"bytes"
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
	api.GET("/reports/nutrition", h.Get)
	api.GET("/reports/nutrition/print", h.Print)
}

func (h *Handler) Get(c echo.Context) error {
	r, err := h.svc.Build(c.Request().Context())
	if err != nil {
		return assessment.HTTPError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// Print renders the report as a standalone HTML page meant for the browser's
// print dialog.
func (h *Handler) Print(c echo.Context) error {
	r, err := h.svc.Build(c.Request().Context())
	if err != nil {
		return assessment.HTTPError(err)
	}
	var buf bytes.Buffer
	if err := RenderHTML(&buf, r); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
