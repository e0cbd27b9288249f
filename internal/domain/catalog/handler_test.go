package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type listBody struct {
	Data    []Recipe `json:"data"`
	Total   int      `json:"total"`
	HasMore bool     `json:"has_more"`
}

func get(t *testing.T, h echo.HandlerFunc, target string, params ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return rec, h(c)
}

func TestHandler_ListRecipes(t *testing.T) {
	h := NewHandler(Builtin())
	rec, err := get(t, h.ListRecipes, "/recipes?symptom=diarrhea,abdominal_pain&cancer_type=pancreas&limit=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body listBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// pancreas-suitable recipes with diarrhea or abdominal pain: 4, 5
	if body.Total != 2 || len(body.Data) != 2 || body.HasMore {
		t.Errorf("unexpected page %+v", body)
	}
}

func TestHandler_ListRecipes_Paging(t *testing.T) {
	h := NewHandler(Builtin())
	rec, _ := get(t, h.ListRecipes, "/recipes?limit=5&offset=10")
	var body listBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Total != 14 || len(body.Data) != 4 || body.Data[0].ID != "11" {
		t.Errorf("unexpected page: total=%d len=%d", body.Total, len(body.Data))
	}
}

func TestHandler_ListRecipes_BadSymptom(t *testing.T) {
	h := NewHandler(Builtin())
	_, err := get(t, h.ListRecipes, "/recipes?symptom=fever")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_GetRecipe(t *testing.T) {
	h := NewHandler(Builtin())
	rec, err := get(t, h.GetRecipe, "/", "id", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var r Recipe
	json.Unmarshal(rec.Body.Bytes(), &r)
	if r.Title != "Tajine tunisien aux légumes" {
		t.Errorf("unexpected recipe %q", r.Title)
	}

	_, err = get(t, h.GetRecipe, "/", "id", "404")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_ListAdvice(t *testing.T) {
	h := NewHandler(Builtin())
	rec, err := get(t, h.ListAdvice, "/advice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Data  []NutritionAdvice `json:"data"`
		Total int               `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Total != 12 || len(body.Data) != 12 {
		t.Errorf("expected 12 advice entries, got %d", body.Total)
	}
}
