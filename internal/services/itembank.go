package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/acolhedu/acolhe-backend/internal/cache"
	"github.com/acolhedu/acolhe-backend/internal/engine/irt"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/repos"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

const (
	itemCacheCapacity = 2000
	itemCacheTTL      = 5 * time.Minute
)

// ItemBankService fronts the read-only item bank with a bounded TTL cache.
// Concurrent lookups of the same item are coalesced through singleflight so a
// selection loop fanning out over a session does not stampede storage.
type ItemBankService interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*types.Item, error)
	ListCandidatos(ctx context.Context, questionario *types.Questionario) ([]*types.Item, error)
}

type itemBankService struct {
	log      *logger.Logger
	itemRepo repos.ItemRepo
	lookup   *cache.TTL
	sf       singleflight.Group
}

func NewItemBankService(baseLog *logger.Logger, itemRepo repos.ItemRepo, lookup *cache.TTL) ItemBankService {
	if lookup == nil {
		lookup = cache.NewTTL(itemCacheCapacity, itemCacheTTL)
	}
	return &itemBankService{
		log:      baseLog.With("service", "ItemBankService"),
		itemRepo: itemRepo,
		lookup:   lookup,
	}
}

func (s *itemBankService) GetItem(ctx context.Context, itemID uuid.UUID) (*types.Item, error) {
	key := itemID.String()
	if v, ok := s.lookup.Get(key); ok {
		return v.(*types.Item), nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		item, err := s.itemRepo.GetByID(ctx, nil, itemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			s.lookup.Put(key, item)
		}
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Item), nil
}

func (s *itemBankService) ListCandidatos(ctx context.Context, questionario *types.Questionario) ([]*types.Item, error) {
	var categoria types.CategoriaItem
	var dominio string
	if questionario != nil {
		categoria = questionario.CategoriaFiltro
		dominio = questionario.DominioFiltro
	}
	return s.itemRepo.ListByFiltro(ctx, nil, categoria, dominio)
}

func parametrosDoItem(item *types.Item) irt.Parametros {
	return irt.Parametros{A: item.ParametroA, B: item.ParametroB, C: item.ParametroC}
}
