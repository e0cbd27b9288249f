// Package hydration counts glasses of water against a daily goal.
package hydration

import "math"

const (
	MinGoal     = 1
	MaxGoal     = 20
	DefaultGoal = 8

	// GlassMilliliters is the volume of one counted glass.
	GlassMilliliters = 250
)

// State is what is persisted: today's count, the goal and the date the count
// belongs to.
type State struct {
	Glasses int    `json:"glasses"`
	Goal    int    `json:"goal"`
	Date    string `json:"date"`
}

type Outcome string

const (
	OutcomeNone         Outcome = ""
	OutcomeGoalReached  Outcome = "goal_reached"
	OutcomeGoalExceeded Outcome = "goal_exceeded"
)

// Level buckets progress for display: below 30%, below 70%, below 100%, done.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelComplete Level = "complete"
)

// Status is State plus the values a tracker view derives from it.
type Status struct {
	State
	Milliliters     int     `json:"milliliters"`
	GoalMilliliters int     `json:"goal_milliliters"`
	Progress        float64 `json:"progress"`
	Level           Level   `json:"level"`
	Outcome         Outcome `json:"outcome,omitempty"`
}

func (s State) Status() Status {
	ratio := 0.0
	if s.Goal > 0 {
		ratio = float64(s.Glasses) / float64(s.Goal)
	}
	level := LevelComplete
	switch {
	case ratio < 0.3:
		level = LevelLow
	case ratio < 0.7:
		level = LevelMedium
	case ratio < 1:
		level = LevelHigh
	}
	return Status{
		State:           s,
		Milliliters:     s.Glasses * GlassMilliliters,
		GoalMilliliters: s.Goal * GlassMilliliters,
		Progress:        math.Min(ratio, 1),
		Level:           level,
	}
}

// outcomeOf reports whether adding a glass just reached or went past the goal.
func outcomeOf(glasses, goal int) Outcome {
	switch {
	case glasses == goal:
		return OutcomeGoalReached
	case glasses > goal:
		return OutcomeGoalExceeded
	}
	return OutcomeNone
}
