package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

type trainingPlanRepository struct {
	plans collection[domain.TrainingPlan]
}

// NewTrainingPlanRepository creates a new instance of trainingPlanRepository.
func NewTrainingPlanRepository(db *docstore.DB, log logrus.FieldLogger) repository.TrainingPlanRepository {
	return &trainingPlanRepository{plans: newCollection[domain.TrainingPlan](db, docstore.TrainingPlans, log)}
}

func (r *trainingPlanRepository) GetAll(ctx context.Context) ([]domain.TrainingPlan, error) {
	return r.plans.all(ctx), nil
}

func (r *trainingPlanRepository) GetByID(ctx context.Context, id int) (*domain.TrainingPlan, error) {
	return r.plans.byID(ctx, id)
}

func (r *trainingPlanRepository) GetByUserID(ctx context.Context, userID int) ([]domain.TrainingPlan, error) {
	return r.plans.filter(ctx, func(p *domain.TrainingPlan) bool { return p.UserID == userID }), nil
}

func (r *trainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) (int, error) {
	return r.plans.insert(ctx, plan, func(id int) {
		plan.ID = id
		plan.CreatedAt = now()
		plan.UpdatedAt = plan.CreatedAt
	}, nil)
}

func (r *trainingPlanRepository) Update(ctx context.Context, id int, patch domain.TrainingPlanPatch) (*domain.TrainingPlan, error) {
	return r.plans.modify(ctx, id, func(p *domain.TrainingPlan) {
		patch.Apply(p)
		p.UpdatedAt = now()
	})
}
