package nutritionlog

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
	"github.com/nutricancer/nutricancer/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/nutrition")
	g.GET("/entries", h.ListEntries)
	g.POST("/entries", h.AddEntry)
	g.PUT("/entries/:id", h.UpdateEntry)
	g.DELETE("/entries/:id", h.DeleteEntry)
	g.GET("/days/:date", h.Day)
	g.GET("/goals", h.GetGoals)
	g.PUT("/goals", h.SetGoals)
	g.POST("/import", h.Import)
}

func (h *Handler) ListEntries(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return httpError(err)
	}
	pg := pagination.FromContext(c)
	page := pagination.Slice(entries, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(entries), pg.Limit, pg.Offset))
}

func (h *Handler) AddEntry(c echo.Context) error {
	var e FoodEntry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Add(c.Request().Context(), e)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateEntry(c echo.Context) error {
	var e FoodEntry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), e)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteEntry(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Day accepts a date or "today".
func (h *Handler) Day(c echo.Context) error {
	date := c.Param("date")
	if date == "today" {
		date = h.svc.Today()
	}
	day, err := h.svc.Day(c.Request().Context(), date)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, day)
}

func (h *Handler) GetGoals(c echo.Context) error {
	g, err := h.svc.Goals(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *Handler) SetGoals(c echo.Context) error {
	var g nutrient.Goals
	if err := c.Bind(&g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	saved, err := h.svc.SetGoals(c.Request().Context(), g)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Import takes the CSV either as a multipart "file" field or as the raw
// request body.
func (h *Handler) Import(c echo.Context) error {
	var body io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
		}
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer f.Close()
		body = f
	}

	n, err := h.svc.Import(c.Request().Context(), body)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": n})
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidImport):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return assessment.HTTPError(err)
}
