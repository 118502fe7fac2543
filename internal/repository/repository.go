package repository

import (
	"context"

	"myhealth/rehab-api/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create assigns the id and createdAt on user and stores it.
	Create(ctx context.Context, user *domain.User) (int, error)
	Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error)
	IncrementTotalTrainingDays(ctx context.Context, id int) (*domain.User, error)
}

// TrainingPlanRepository defines the interface for interacting with training plan data.
type TrainingPlanRepository interface {
	GetAll(ctx context.Context) ([]domain.TrainingPlan, error)
	GetByID(ctx context.Context, id int) (*domain.TrainingPlan, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.TrainingPlan, error)
	Create(ctx context.Context, plan *domain.TrainingPlan) (int, error)
	Update(ctx context.Context, id int, patch domain.TrainingPlanPatch) (*domain.TrainingPlan, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id int) (*domain.Exercise, error)
	GetByTargetArea(ctx context.Context, query domain.TargetArea) ([]domain.Exercise, error)
	Create(ctx context.Context, exercise *domain.Exercise) (int, error)
}

// TrainingRecordRepository defines the interface for interacting with training record data.
type TrainingRecordRepository interface {
	GetAll(ctx context.Context) ([]domain.TrainingRecord, error)
	GetByID(ctx context.Context, id int) (*domain.TrainingRecord, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.TrainingRecord, error)
	Create(ctx context.Context, record *domain.TrainingRecord) (int, error)
	Update(ctx context.Context, id int, patch domain.TrainingRecordPatch) (*domain.TrainingRecord, error)
}

// PostRepository defines the interface for interacting with community posts.
type PostRepository interface {
	GetAll(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id int) (*domain.Post, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (int, error)
	Update(ctx context.Context, id int, patch domain.PostPatch) (*domain.Post, error)
	// Like adds exactly one like and returns the updated post.
	Like(ctx context.Context, id int) (*domain.Post, error)
}

// CommentRepository defines the interface for interacting with post comments.
type CommentRepository interface {
	GetAll(ctx context.Context) ([]domain.Comment, error)
	GetByID(ctx context.Context, id int) (*domain.Comment, error)
	GetByPostID(ctx context.Context, postID int) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (int, error)
	Like(ctx context.Context, id int) (*domain.Comment, error)
}
