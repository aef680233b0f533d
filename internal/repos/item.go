package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type ItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, itens []*types.Item) ([]*types.Item, error)
	GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error)
	ListByFiltro(ctx context.Context, tx *gorm.DB, categoria types.CategoriaItem, dominio string) ([]*types.Item, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{db: db, log: baseLog.With("repo", "ItemRepo")}
}

func (r *itemRepo) Create(ctx context.Context, tx *gorm.DB, itens []*types.Item) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(itens) == 0 {
		return []*types.Item{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&itens).Error; err != nil {
		return nil, err
	}
	return itens, nil
}

func (r *itemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var item types.Item
	err := transaction.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) ListByFiltro(ctx context.Context, tx *gorm.DB, categoria types.CategoriaItem, dominio string) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.Item{})
	if categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}
	if dominio != "" {
		query = query.Where("dominio = ?", dominio)
	}
	var results []*types.Item
	if err := query.Order("id asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *itemRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Item{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
