package main

import (
	"context"
	"errors"
	"fmt"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/service"
)

var errCatalogueNotEmpty = errors.New("exercise catalogue is not empty, use --force to seed anyway")

// seed creates the exercises whose names are not in the catalogue yet.
func seed(ctx context.Context, exerciseService service.ExerciseService, exercises []*domain.Exercise, force bool) (created, skipped int, err error) {
	existing, err := exerciseService.ListExercises(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(existing) > 0 && !force {
		return 0, 0, errCatalogueNotEmpty
	}

	names := make(map[string]bool, len(existing))
	for _, e := range existing {
		names[e.Name] = true
	}
	for _, e := range exercises {
		if names[e.Name] {
			skipped++
			continue
		}
		if _, err := exerciseService.CreateExercise(ctx, e); err != nil {
			return created, skipped, fmt.Errorf("create %q: %w", e.Name, err)
		}
		names[e.Name] = true
		created++
	}
	return created, skipped, nil
}
