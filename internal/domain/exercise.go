// internal/domain/exercise.go
package domain

import (
	"time"
)

// Exercise is an entry of the rehabilitation exercise catalogue.
type Exercise struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	TargetArea  TargetArea `json:"targetArea"` // Either "knee" or ["knee", "hip"]
	Difficulty  string     `json:"difficulty,omitempty"`
	Duration    int        `json:"duration,omitempty"` // Suggested minutes
	// Step by step execution technique.
	Instructions []string  `json:"instructions,omitempty"`
	Precautions  []string  `json:"precautions,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
