package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type SessaoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessao *types.SessaoAvaliacao) (*types.SessaoAvaliacao, error)
	GetByID(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID, updates map[string]any) error
}

type sessaoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessaoRepo(db *gorm.DB, baseLog *logger.Logger) SessaoRepo {
	return &sessaoRepo{db: db, log: baseLog.With("repo", "SessaoRepo")}
}

func (r *sessaoRepo) Create(ctx context.Context, tx *gorm.DB, sessao *types.SessaoAvaliacao) (*types.SessaoAvaliacao, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(sessao).Error; err != nil {
		return nil, err
	}
	return sessao, nil
}

func (r *sessaoRepo) GetByID(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) (*types.SessaoAvaliacao, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var sessao types.SessaoAvaliacao
	err := transaction.WithContext(ctx).Where("id = ?", sessaoID).First(&sessao).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sessao, nil
}

func (r *sessaoRepo) UpdateFields(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.SessaoAvaliacao{}).
		Where("id = ?", sessaoID).
		Updates(updates).Error
}
