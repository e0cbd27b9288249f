package mealplan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/meal-plan")
	g.GET("", h.Week)
	g.DELETE("", h.Reset)
	g.GET("/candidates", h.Candidates)
	g.GET("/days/:day", h.Day)
	g.GET("/days/:day/nutrition", h.DayNutrition)
	g.PUT("/days/:day/meals/:slot", h.AssignMeal)
	g.DELETE("/days/:day/meals/:slot", h.RemoveMeal)
	g.PUT("/days/:day/notes", h.SaveNotes)
}

type assignRequest struct {
	RecipeID string `json:"recipe_id"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) Week(c echo.Context) error {
	week, err := h.svc.Week(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, week)
}

func (h *Handler) Reset(c echo.Context) error {
	week, err := h.svc.Reset(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, week)
}

func (h *Handler) Candidates(c echo.Context) error {
	recipes, err := h.svc.Candidates(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, recipes)
}

func (h *Handler) Day(c echo.Context) error {
	idx, err := dayParam(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Day(c.Request().Context(), idx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DayNutrition(c echo.Context) error {
	idx, err := dayParam(c)
	if err != nil {
		return err
	}
	sum, err := h.svc.DayNutrition(c.Request().Context(), idx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) AssignMeal(c echo.Context) error {
	idx, err := dayParam(c)
	if err != nil {
		return err
	}
	slot, err := ParseSlot(c.Param("slot"))
	if err != nil {
		return httpError(err)
	}
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RecipeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recipe_id is required")
	}
	d, err := h.svc.AssignMeal(c.Request().Context(), idx, slot, req.RecipeID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

// RemoveMeal empties a slot. Snacks are removed one at a time by ?index=N.
func (h *Handler) RemoveMeal(c echo.Context) error {
	idx, err := dayParam(c)
	if err != nil {
		return err
	}
	slot, err := ParseSlot(c.Param("slot"))
	if err != nil {
		return httpError(err)
	}
	snack := 0
	if v := c.QueryParam("index"); v != "" {
		if snack, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "index must be an integer")
		}
	}
	d, err := h.svc.RemoveMeal(c.Request().Context(), idx, slot, snack)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) SaveNotes(c echo.Context) error {
	idx, err := dayParam(c)
	if err != nil {
		return err
	}
	var req notesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.SaveNotes(c.Request().Context(), idx, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func dayParam(c echo.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "day must be an integer between 0 and 6")
	}
	return idx, nil
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrInvalidDay), errors.Is(err, ErrInvalidSlot):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrRecipeNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return assessment.HTTPError(err)
}
