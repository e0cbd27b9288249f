package nutrient

import (
	"math"
	"testing"
)

func TestSum_OrderIndependent(t *testing.T) {
	a := Facts{350, 8, 45, 14, 5}
	b := Facts{180, 3, 22, 9, 6}
	c := Facts{120, 0, 32, 0, 4}
	if Sum(a, b, c) != Sum(c, a, b) {
		t.Error("sum depends on order")
	}
	if got := Sum(a, b, c); got != (Facts{650, 11, 99, 23, 15}) {
		t.Errorf("unexpected sum %+v", got)
	}
	if Sum() != (Facts{}) {
		t.Error("empty sum should be zero")
	}
	if Sum(a, b).Sub(b) != a {
		t.Error("Sub should undo Add")
	}
}

func TestFacts_Validate(t *testing.T) {
	if err := (Facts{1, 0, 0, 0, 0}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Facts{Fat: -1}).Validate(); err == nil {
		t.Error("expected error for negative fat")
	}
	if err := (Goals{Fiber: math.NaN()}).Validate(); err == nil {
		t.Error("expected error for NaN fiber")
	}
}

func TestProgressOf(t *testing.T) {
	goals := Goals{2000, 75, 250, 65, 25}
	p := ProgressOf(Facts{1000, 150, 0, 65, 5}, goals)
	if p.Calories != 0.5 {
		t.Errorf("calories: got %v", p.Calories)
	}
	if p.Protein != 1 {
		t.Errorf("protein should clamp at 1, got %v", p.Protein)
	}
	if p.Carbs != 0 || p.Fat != 1 || p.Fiber != 0.2 {
		t.Errorf("unexpected progress %+v", p)
	}
}

func TestProgressOf_ZeroGoal(t *testing.T) {
	p := ProgressOf(Facts{Calories: 10}, Goals{})
	if p.Calories != 1 || p.Protein != 0 {
		t.Errorf("unexpected progress for zero goals: %+v", p)
	}
}

func TestProgressOf_Bounded(t *testing.T) {
	for total := 0.0; total < 5000; total += 137 {
		for goal := 1.0; goal < 4000; goal += 211 {
			f := fraction(total, goal)
			if f < 0 || f > 1 {
				t.Fatalf("fraction(%v, %v) = %v", total, goal, f)
			}
		}
	}
	if fraction(-5, 10) != 0 {
		t.Error("negative totals clamp to 0")
	}
}
