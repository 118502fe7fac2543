package domain

import (
	"time"
)

// RecordExercise is one exercise performed during a training session.
type RecordExercise struct {
	ExerciseID int    `json:"exerciseId"`
	Sets       int    `json:"sets,omitempty"`
	Reps       int    `json:"reps,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes,omitempty"`
}

// TrainingRecord logs one completed (or attempted) session of a plan.
type TrainingRecord struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	PlanID    int              `json:"planId"`
	Exercises []RecordExercise `json:"exercises"`
	Duration  int              `json:"duration"` // Minutes
	Completed bool             `json:"completed"`
	Notes     string           `json:"notes"`
	Date      time.Time        `json:"date"`
}

// TrainingRecordPatch is a partial update of a record. Nil fields keep their value.
type TrainingRecordPatch struct {
	Exercises *[]RecordExercise
	Duration  *int
	Completed *bool
	Notes     *string
}

// Apply merges the patch into r.
func (p TrainingRecordPatch) Apply(r *TrainingRecord) {
	if p.Exercises != nil {
		r.Exercises = *p.Exercises
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
