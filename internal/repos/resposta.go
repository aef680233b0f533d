package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// RespostaRepo is append-only: responses are the audit trail the estimator
// replays, so there is no update or delete.
type RespostaRepo interface {
	Append(ctx context.Context, tx *gorm.DB, resposta *types.RespostaItem) (*types.RespostaItem, error)
	ListBySessao(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) ([]*types.RespostaItem, error)
}

type respostaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRespostaRepo(db *gorm.DB, baseLog *logger.Logger) RespostaRepo {
	return &respostaRepo{db: db, log: baseLog.With("repo", "RespostaRepo")}
}

func (r *respostaRepo) Append(ctx context.Context, tx *gorm.DB, resposta *types.RespostaItem) (*types.RespostaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(resposta).Error; err != nil {
		return nil, err
	}
	return resposta, nil
}

func (r *respostaRepo) ListBySessao(ctx context.Context, tx *gorm.DB, sessaoID uuid.UUID) ([]*types.RespostaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.RespostaItem
	if err := transaction.WithContext(ctx).
		Where("sessao_id = ?", sessaoID).
		Order("respondida_em asc, created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
