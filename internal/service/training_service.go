package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound       = errors.New("training plan not found")
	ErrPlanAccessDenied   = errors.New("access denied to modify this training plan")
	ErrRecordNotFound     = errors.New("training record not found")
	ErrRecordAccessDenied = errors.New("access denied to modify this training record")
)

// CreatePlanInput is the plan form. Zero Duration and empty Difficulty take
// the defaults.
type CreatePlanInput struct {
	Title       string
	Duration    int
	Difficulty  string
	WeeklyPlans json.RawMessage
	Notes       string
}

// CreateRecordInput is the training log form. A nil Exercises means the
// field was not sent.
type CreateRecordInput struct {
	PlanID    int
	Exercises *[]domain.RecordExercise
	Duration  int
	Completed bool
	Notes     string
}

// TrainingService manages plans and the records logged against them.
type TrainingService interface {
	ListPlans(ctx context.Context) ([]domain.TrainingPlan, error)
	GetPlan(ctx context.Context, planID int) (*domain.TrainingPlan, error)
	CreatePlan(ctx context.Context, userID int, in CreatePlanInput) (*domain.TrainingPlan, error)
	UpdatePlan(ctx context.Context, userID, planID int, patch domain.TrainingPlanPatch) (*domain.TrainingPlan, error)

	ListRecords(ctx context.Context, userID int) ([]domain.TrainingRecord, error)
	CreateRecord(ctx context.Context, userID int, in CreateRecordInput) (*domain.TrainingRecord, error)
	UpdateRecord(ctx context.Context, userID, recordID int, patch domain.TrainingRecordPatch) (*domain.TrainingRecord, error)
}

type trainingService struct {
	planRepo   repository.TrainingPlanRepository
	recordRepo repository.TrainingRecordRepository
	userRepo   repository.UserRepository
	log        logrus.FieldLogger
}

// NewTrainingService creates a new instance of trainingService.
func NewTrainingService(
	planRepo repository.TrainingPlanRepository,
	recordRepo repository.TrainingRecordRepository,
	userRepo repository.UserRepository,
	log logrus.FieldLogger,
) TrainingService {
	return &trainingService{
		planRepo:   planRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

func (s *trainingService) ListPlans(ctx context.Context) ([]domain.TrainingPlan, error) {
	return s.planRepo.GetAll(ctx)
}

func (s *trainingService) GetPlan(ctx context.Context, planID int) (*domain.TrainingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func isAbsentJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (s *trainingService) CreatePlan(ctx context.Context, userID int, in CreatePlanInput) (*domain.TrainingPlan, error) {
	if in.Title == "" || isAbsentJSON(in.WeeklyPlans) {
		return nil, fmt.Errorf("%w: title and weeklyPlans", ErrMissingFields)
	}

	plan := &domain.TrainingPlan{
		UserID:      userID,
		Title:       in.Title,
		Duration:    in.Duration,
		Difficulty:  in.Difficulty,
		WeeklyPlans: in.WeeklyPlans,
		Notes:       in.Notes,
	}
	if plan.Duration == 0 {
		plan.Duration = domain.DefaultPlanDuration
	}
	if plan.Difficulty == "" {
		plan.Difficulty = domain.DefaultPlanDifficulty
	}

	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *trainingService) UpdatePlan(ctx context.Context, userID, planID int, patch domain.TrainingPlanPatch) (*domain.TrainingPlan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrPlanAccessDenied
	}
	if isAbsentJSON(patch.WeeklyPlans) {
		patch.WeeklyPlans = nil
	}

	updated, err := s.planRepo.Update(ctx, planID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *trainingService) ListRecords(ctx context.Context, userID int) ([]domain.TrainingRecord, error) {
	return s.recordRepo.GetByUserID(ctx, userID)
}

// CreateRecord logs a session against an existing plan and bumps the user's
// totalTrainingDays counter.
func (s *trainingService) CreateRecord(ctx context.Context, userID int, in CreateRecordInput) (*domain.TrainingRecord, error) {
	if in.PlanID == 0 || in.Exercises == nil {
		return nil, fmt.Errorf("%w: planId and exercises", ErrMissingFields)
	}
	if _, err := s.GetPlan(ctx, in.PlanID); err != nil {
		return nil, err
	}

	record := &domain.TrainingRecord{
		UserID:    userID,
		PlanID:    in.PlanID,
		Exercises: *in.Exercises,
		Duration:  in.Duration,
		Completed: in.Completed,
		Notes:     in.Notes,
	}
	if _, err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// The record is already stored; a failed counter bump must not fail the request.
	if _, err := s.userRepo.IncrementTotalTrainingDays(ctx, userID); err != nil {
		s.log.WithError(err).WithField("userID", userID).Warn("failed to increment totalTrainingDays")
	}
	return record, nil
}

func (s *trainingService) UpdateRecord(ctx context.Context, userID, recordID int, patch domain.TrainingRecordPatch) (*domain.TrainingRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrRecordAccessDenied
	}

	updated, err := s.recordRepo.Update(ctx, recordID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return updated, nil
}
