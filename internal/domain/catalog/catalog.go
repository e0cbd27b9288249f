// Package catalog holds the read-only recipe and advice dataset. A Catalog
// never changes after construction; reloading builds a new one.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
)

var ErrRecipeNotFound = errors.New("recipe not found")

//go:embed builtin.json
var builtinJSON []byte

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the dataset shipped with the binary.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := Decode(bytes.NewReader(builtinJSON))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded dataset is invalid: %v", err))
		}
		builtin = c
	})
	return builtin
}

// Source yields the catalog in effect. *Catalog and *Watcher implement it.
type Source interface {
	Current() *Catalog
}

type Catalog struct {
	recipes []Recipe
	advice  []NutritionAdvice
	byID    map[string]int
}

type document struct {
	Recipes []Recipe          `json:"recipes"`
	Advice  []NutritionAdvice `json:"advice"`
}

// New validates and copies the given entries.
func New(recipes []Recipe, advice []NutritionAdvice) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(recipes)),
		advice:  make([]NutritionAdvice, 0, len(advice)),
		byID:    make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		if err := validateRecipe(r); err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("recipe %q: duplicate id", r.ID)
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r.Clone())
	}
	seen := make(map[string]bool, len(advice))
	for _, a := range advice {
		if err := validateAdvice(a); err != nil {
			return nil, err
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("advice %q: duplicate id", a.ID)
		}
		seen[a.ID] = true
		c.advice = append(c.advice, a.Clone())
	}
	return c, nil
}

// Decode reads a {"recipes": [...], "advice": [...]} document.
func Decode(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Recipes, doc.Advice)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func validateRecipe(r Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("recipe id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe %q: title is required", r.ID)
	}
	if err := r.NutritionFacts.Validate(); err != nil {
		return fmt.Errorf("recipe %q: %w", r.ID, err)
	}
	if len(r.SuitableFor.CancerTypes) == 0 {
		return fmt.Errorf("recipe %q: at least one cancer type is required", r.ID)
	}
	for _, ct := range r.SuitableFor.CancerTypes {
		if _, err := assessment.ParseCancerType(string(ct)); err != nil {
			return fmt.Errorf("recipe %q: %w", r.ID, err)
		}
	}
	for _, s := range r.SuitableFor.Symptoms {
		if _, err := assessment.ParseSymptom(string(s)); err != nil {
			return fmt.Errorf("recipe %q: %w", r.ID, err)
		}
	}
	return nil
}

func validateAdvice(a NutritionAdvice) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("advice id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("advice %q: title is required", a.ID)
	}
	if a.ForSymptoms != nil && len(a.ForSymptoms) == 0 {
		return fmt.Errorf("advice %q: for_symptoms is empty, omit it for general advice", a.ID)
	}
	for _, s := range a.ForSymptoms {
		if _, err := assessment.ParseSymptom(string(s)); err != nil {
			return fmt.Errorf("advice %q: %w", a.ID, err)
		}
	}
	return nil
}

func (c *Catalog) Current() *Catalog { return c }

func (c *Catalog) Len() (recipes, advice int) {
	return len(c.recipes), len(c.advice)
}

// Recipes returns copies of all recipes in catalog order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Advice returns copies of all advice entries in catalog order.
func (c *Catalog) Advice() []NutritionAdvice {
	out := make([]NutritionAdvice, len(c.advice))
	for i, a := range c.advice {
		out[i] = a.Clone()
	}
	return out
}

func (c *Catalog) Recipe(id string) (Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return Recipe{}, ErrRecipeNotFound
	}
	return c.recipes[i].Clone(), nil
}

// Filter narrows a recipe search. Empty fields do not filter.
type Filter struct {
	Query       string
	Symptoms    []assessment.Symptom
	CancerTypes []assessment.CancerType
}

// Search returns recipes whose title or description contains Query (case
// insensitive), suited to any of Symptoms and to any of CancerTypes.
func (c *Catalog) Search(f Filter) []Recipe {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := []Recipe{}
	for _, r := range c.recipes {
		if q != "" && !r.matchesText(q) {
			continue
		}
		if len(f.Symptoms) > 0 && r.MatchingSymptoms(f.Symptoms) == 0 {
			continue
		}
		if len(f.CancerTypes) > 0 && !anyCancer(r, f.CancerTypes) {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

func anyCancer(r Recipe, types []assessment.CancerType) bool {
	for _, ct := range types {
		if r.SuitableForCancer(ct) {
			return true
		}
	}
	return false
}
