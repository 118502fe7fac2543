// internal/domain/training_plan.go
package domain

import (
	"encoding/json"
	"time"
)

// Defaults applied when a plan is created without them.
const (
	DefaultPlanDuration   = 4 // weeks
	DefaultPlanDifficulty = "中等"
)

// TrainingPlan is a user's weekly rehabilitation schedule.
type TrainingPlan struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"` // Owner
	Title      string `json:"title"`
	Duration   int    `json:"duration"`
	Difficulty string `json:"difficulty"`
	// WeeklyPlans is the week -> day -> exercise layout built by the frontend.
	// It is stored verbatim.
	WeeklyPlans json.RawMessage `json:"weeklyPlans"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TrainingPlanPatch is a partial update of a plan. Nil fields keep their value.
type TrainingPlanPatch struct {
	Title       *string
	Duration    *int
	Difficulty  *string
	WeeklyPlans json.RawMessage
	Notes       *string
}

// Apply merges the patch into p.
func (patch TrainingPlanPatch) Apply(p *TrainingPlan) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.Difficulty != nil {
		p.Difficulty = *patch.Difficulty
	}
	if patch.WeeklyPlans != nil {
		p.WeeklyPlans = patch.WeeklyPlans
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
}
