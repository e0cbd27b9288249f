package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/pkg/pagination"
)

type Handler struct {
	src Source
}

func NewHandler(src Source) *Handler {
	return &Handler{src: src}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/recipes", h.ListRecipes)
	api.GET("/recipes/:id", h.GetRecipe)
	api.GET("/advice", h.ListAdvice)
}

// ListRecipes supports ?q=, repeated or comma separated ?symptom= and
// ?cancer_type=, plus limit/offset.
func (h *Handler) ListRecipes(c echo.Context) error {
	f := Filter{Query: c.QueryParam("q")}
	for _, v := range multiParam(c, "symptom") {
		s, err := assessment.ParseSymptom(v)
		if err != nil {
			return assessment.HTTPError(err)
		}
		f.Symptoms = append(f.Symptoms, s)
	}
	for _, v := range multiParam(c, "cancer_type") {
		ct, err := assessment.ParseCancerType(v)
		if err != nil {
			return assessment.HTTPError(err)
		}
		f.CancerTypes = append(f.CancerTypes, ct)
	}

	pg := pagination.FromContext(c)
	items := h.src.Current().Search(f)
	page := pagination.Slice(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) GetRecipe(c echo.Context) error {
	r, err := h.src.Current().Recipe(c.Param("id"))
	if errors.Is(err, ErrRecipeNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "recipe not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) ListAdvice(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.src.Current().Advice()
	page := pagination.Slice(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func multiParam(c echo.Context, name string) []string {
	var out []string
	for _, v := range c.QueryParams()[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
