package service

import (
	"context"
	"errors"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
)

// AllTargetAreas is the path value that lists the whole catalogue.
const AllTargetAreas = "all"

// --- Service Interface ---
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id int) (*domain.Exercise, error)
	// ListByTargetArea accepts "all", one area or a comma separated list.
	// A positive limit truncates the result.
	ListByTargetArea(ctx context.Context, targetArea string, limit int) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id int) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListByTargetArea(ctx context.Context, targetArea string, limit int) ([]domain.Exercise, error) {
	var (
		exercises []domain.Exercise
		err       error
	)
	if targetArea == AllTargetAreas {
		exercises, err = s.exerciseRepo.GetAll(ctx)
	} else {
		exercises, err = s.exerciseRepo.GetByTargetArea(ctx, domain.ParseTargetArea(targetArea))
	}
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(exercises) > limit {
		exercises = exercises[:limit]
	}
	return exercises, nil
}

// CreateExercise adds a catalogue entry. Name and target area are required.
func (s *exerciseService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" || exercise.TargetArea.IsZero() {
		return nil, ErrValidationFailed
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}
