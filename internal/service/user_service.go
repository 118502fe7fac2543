package service

import (
	"context"
	"errors"
	"sort"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// AreaCount is how many performed exercises worked one body area.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// UserStats summarizes a user's training history.
type UserStats struct {
	UserID            int         `json:"userId"`
	Username          string      `json:"username"`
	TotalWorkouts     int         `json:"totalWorkouts"`
	TotalTrainingTime int         `json:"totalTrainingTime"` // Minutes
	TrainingDays      int         `json:"trainingDays"`
	TotalTrainingDays int         `json:"totalTrainingDays"`
	TargetAreaStats   []AreaCount `json:"targetAreaStats"`
}

// UserService covers profiles and per-user aggregates.
type UserService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error)
	GetStats(ctx context.Context, id int) (*UserStats, error)
	GetTrainingPlans(ctx context.Context, userID int) ([]domain.TrainingPlan, error)
}

type userService struct {
	userRepo     repository.UserRepository
	planRepo     repository.TrainingPlanRepository
	recordRepo   repository.TrainingRecordRepository
	exerciseRepo repository.ExerciseRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	recordRepo repository.TrainingRecordRepository,
	exerciseRepo repository.ExerciseRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		planRepo:     planRepo,
		recordRepo:   recordRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetStats counts every area of every performed exercise, so an exercise
// targeting ["knee","hip"] adds one to both areas.
func (s *userService) GetStats(ctx context.Context, id int) (*UserStats, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.TargetArea, len(exercises))
	for _, e := range exercises {
		byID[e.ID] = e.TargetArea
	}

	stats := &UserStats{
		UserID:            user.ID,
		Username:          user.Username,
		TotalWorkouts:     len(records),
		TrainingDays:      user.TrainingDays,
		TotalTrainingDays: user.TotalTrainingDays,
	}
	counts := map[string]int{}
	for _, rec := range records {
		stats.TotalTrainingTime += rec.Duration
		for _, performed := range rec.Exercises {
			for _, area := range byID[performed.ExerciseID].Areas() {
				counts[area]++
			}
		}
	}

	stats.TargetAreaStats = make([]AreaCount, 0, len(counts))
	for area, n := range counts {
		stats.TargetAreaStats = append(stats.TargetAreaStats, AreaCount{Area: area, Count: n})
	}
	sort.Slice(stats.TargetAreaStats, func(i, j int) bool {
		a, b := stats.TargetAreaStats[i], stats.TargetAreaStats[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Area < b.Area
	})
	return stats, nil
}

func (s *userService) GetTrainingPlans(ctx context.Context, userID int) ([]domain.TrainingPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}
