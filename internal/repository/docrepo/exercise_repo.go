package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

type exerciseRepository struct {
	exercises collection[domain.Exercise]
}

// NewExerciseRepository creates a new instance of exerciseRepository.
func NewExerciseRepository(db *docstore.DB, log logrus.FieldLogger) repository.ExerciseRepository {
	return &exerciseRepository{exercises: newCollection[domain.Exercise](db, docstore.Exercises, log)}
}

func (r *exerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return r.exercises.all(ctx), nil
}

func (r *exerciseRepository) GetByID(ctx context.Context, id int) (*domain.Exercise, error) {
	return r.exercises.byID(ctx, id)
}

// GetByTargetArea returns the exercises whose target area overlaps query.
func (r *exerciseRepository) GetByTargetArea(ctx context.Context, query domain.TargetArea) ([]domain.Exercise, error) {
	return r.exercises.filter(ctx, func(e *domain.Exercise) bool { return e.TargetArea.Matches(query) }), nil
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int, error) {
	return r.exercises.insert(ctx, exercise, func(id int) {
		exercise.ID = id
		if exercise.CreatedAt.IsZero() {
			exercise.CreatedAt = now()
		}
	}, nil)
}
