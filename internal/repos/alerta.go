package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type AlertaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, alertas []*types.Alerta) ([]*types.Alerta, error)
	GetByID(ctx context.Context, tx *gorm.DB, alertaID uuid.UUID) (*types.Alerta, error)
	List(ctx context.Context, tx *gorm.DB, usuarioID *uuid.UUID, status types.StatusAlerta) ([]*types.Alerta, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, alertaID uuid.UUID, status types.StatusAlerta) error
}

type alertaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlertaRepo(db *gorm.DB, baseLog *logger.Logger) AlertaRepo {
	return &alertaRepo{db: db, log: baseLog.With("repo", "AlertaRepo")}
}

func (r *alertaRepo) Create(ctx context.Context, tx *gorm.DB, alertas []*types.Alerta) ([]*types.Alerta, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(alertas) == 0 {
		return []*types.Alerta{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&alertas).Error; err != nil {
		return nil, err
	}
	return alertas, nil
}

func (r *alertaRepo) GetByID(ctx context.Context, tx *gorm.DB, alertaID uuid.UUID) (*types.Alerta, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var alerta types.Alerta
	err := transaction.WithContext(ctx).Where("id = ?", alertaID).First(&alerta).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alerta, nil
}

func (r *alertaRepo) List(ctx context.Context, tx *gorm.DB, usuarioID *uuid.UUID, status types.StatusAlerta) ([]*types.Alerta, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.Alerta{})
	if usuarioID != nil {
		query = query.Where("usuario_id = ?", *usuarioID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var results []*types.Alerta
	if err := query.Order("created_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *alertaRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, alertaID uuid.UUID, status types.StatusAlerta) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Alerta{}).
		Where("id = ?", alertaID).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}
