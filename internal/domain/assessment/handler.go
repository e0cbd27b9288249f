package assessment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessment", h.Submit)
	api.GET("/assessment", h.Current)
	api.DELETE("/assessment", h.Clear)
	api.POST("/metrics", h.Preview)
	api.GET("/vocabulary", h.Vocabulary)
}

func (h *Handler) Submit(c echo.Context) error {
	var p PatientProfile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	snap, err := h.svc.Submit(c.Request().Context(), p)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusCreated, snap)
}

func (h *Handler) Current(c echo.Context) error {
	snap, err := h.svc.Current(c.Request().Context())
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Clear(c echo.Context) error {
	if err := h.svc.Clear(c.Request().Context()); err != nil {
		return HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Preview derives metrics for a profile without storing it.
func (h *Handler) Preview(c echo.Context) error {
	var p PatientProfile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := Derive(p)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Vocabulary lists the accepted values of every closed field with their
// French labels, for building the assessment form.
func (h *Handler) Vocabulary(c echo.Context) error {
	vocab := map[string][]option{}
	for _, g := range AllGenders() {
		vocab["gender"] = append(vocab["gender"], option{string(g), g.Label()})
	}
	for _, ct := range AllCancerTypes() {
		vocab["cancer_type"] = append(vocab["cancer_type"], option{string(ct), ct.Label()})
	}
	for _, a := range AllActivities() {
		vocab["physical_activity"] = append(vocab["physical_activity"], option{string(a), a.Label()})
	}
	for _, s := range AllSymptoms() {
		vocab["digestive_symptoms"] = append(vocab["digestive_symptoms"], option{string(s), s.Label()})
	}
	return c.JSON(http.StatusOK, vocab)
}

// HTTPError converts a service error into an echo error. Domain errors carry
// the offending field so the form can highlight it.
func HTTPError(err error) *echo.HTTPError {
	var de *DomainError
	if errors.As(err, &de) {
		return echo.NewHTTPError(http.StatusBadRequest, de)
	}
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, "internal server error").SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}
