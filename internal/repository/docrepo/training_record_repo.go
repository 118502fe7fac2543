package docrepo

import (
	"context"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

type trainingRecordRepository struct {
	records collection[domain.TrainingRecord]
}

// NewTrainingRecordRepository creates a new instance of trainingRecordRepository.
func NewTrainingRecordRepository(db *docstore.DB, log logrus.FieldLogger) repository.TrainingRecordRepository {
	return &trainingRecordRepository{records: newCollection[domain.TrainingRecord](db, docstore.TrainingRecords, log)}
}

func (r *trainingRecordRepository) GetAll(ctx context.Context) ([]domain.TrainingRecord, error) {
	return r.records.all(ctx), nil
}

func (r *trainingRecordRepository) GetByID(ctx context.Context, id int) (*domain.TrainingRecord, error) {
	return r.records.byID(ctx, id)
}

func (r *trainingRecordRepository) GetByUserID(ctx context.Context, userID int) ([]domain.TrainingRecord, error) {
	return r.records.filter(ctx, func(rec *domain.TrainingRecord) bool { return rec.UserID == userID }), nil
}

// Create stamps the record's date with the current time.
func (r *trainingRecordRepository) Create(ctx context.Context, record *domain.TrainingRecord) (int, error) {
	if record.Exercises == nil {
		record.Exercises = []domain.RecordExercise{}
	}
	return r.records.insert(ctx, record, func(id int) {
		record.ID = id
		record.Date = now()
	}, nil)
}

func (r *trainingRecordRepository) Update(ctx context.Context, id int, patch domain.TrainingRecordPatch) (*domain.TrainingRecord, error) {
	return r.records.modify(ctx, id, patch.Apply)
}
