package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type QuestionarioRepo interface {
	Create(ctx context.Context, tx *gorm.DB, questionarios []*types.Questionario) ([]*types.Questionario, error)
	GetByID(ctx context.Context, tx *gorm.DB, questionarioID uuid.UUID) (*types.Questionario, error)
	GetByNome(ctx context.Context, tx *gorm.DB, nome string) (*types.Questionario, error)
}

type questionarioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionarioRepo(db *gorm.DB, baseLog *logger.Logger) QuestionarioRepo {
	return &questionarioRepo{db: db, log: baseLog.With("repo", "QuestionarioRepo")}
}

func (r *questionarioRepo) Create(ctx context.Context, tx *gorm.DB, questionarios []*types.Questionario) ([]*types.Questionario, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(questionarios) == 0 {
		return []*types.Questionario{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&questionarios).Error; err != nil {
		return nil, err
	}
	return questionarios, nil
}

func (r *questionarioRepo) GetByID(ctx context.Context, tx *gorm.DB, questionarioID uuid.UUID) (*types.Questionario, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var q types.Questionario
	err := transaction.WithContext(ctx).Where("id = ?", questionarioID).First(&q).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionarioRepo) GetByNome(ctx context.Context, tx *gorm.DB, nome string) (*types.Questionario, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var q types.Questionario
	err := transaction.WithContext(ctx).Where("nome = ?", nome).First(&q).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
