package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// userRepository implements repository.UserRepository over the users collection.
type userRepository struct {
	users collection[domain.User]
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *docstore.DB, log logrus.FieldLogger) repository.UserRepository {
	return &userRepository{users: newCollection[domain.User](db, docstore.Users, log)}
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	return r.users.all(ctx), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.users.byID(ctx, id)
}

// GetByUsername retrieves a user by their (case sensitive) username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.users.first(ctx, func(u *domain.User) bool { return u.Username == username })
}

// Create stores a new user. A taken username yields repository.ErrConflict.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (int, error) {
	if user.Expertise == nil {
		user.Expertise = []string{}
	}
	return r.users.insert(ctx, user,
		func(id int) {
			user.ID = id
			if user.CreatedAt.IsZero() {
				user.CreatedAt = now()
			}
		},
		func(existing *domain.User) bool { return existing.Username == user.Username },
	)
}

func (r *userRepository) Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	return r.users.modify(ctx, id, patch.Apply)
}

func (r *userRepository) IncrementTotalTrainingDays(ctx context.Context, id int) (*domain.User, error) {
	return r.users.modify(ctx, id, func(u *domain.User) {
		u.TotalTrainingDays++
	})
}
