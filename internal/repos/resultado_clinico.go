package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type ResultadoClinicoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, resultado *types.ResultadoClinico) (*types.ResultadoClinico, error)
	ListBySessao(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) ([]*types.ResultadoClinico, error)
}

type resultadoClinicoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResultadoClinicoRepo(db *gorm.DB, baseLog *logger.Logger) ResultadoClinicoRepo {
	return &resultadoClinicoRepo{db: db, log: baseLog.With("repo", "ResultadoClinicoRepo")}
}

func (r *resultadoClinicoRepo) Create(ctx context.Context, tx *gorm.DB, resultado *types.ResultadoClinico) (*types.ResultadoClinico, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(resultado).Error; err != nil {
		return nil, err
	}
	return resultado, nil
}

func (r *resultadoClinicoRepo) ListBySessao(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) ([]*types.ResultadoClinico, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ResultadoClinico
	if err := transaction.WithContext(ctx).
		Where("sessao_id = ?", sessaoID).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
