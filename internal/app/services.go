package app

import (
	"gorm.io/gorm"

	"github.com/acolhedu/acolhe-backend/internal/cache"
	redisclient "github.com/acolhedu/acolhe-backend/internal/clients/redis"
	"github.com/acolhedu/acolhe-backend/internal/engine/irt"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/services"
)

const informationCacheCapacity = 5000

type Services struct {
	ItemBank  services.ItemBankService
	Avaliacao services.AvaliacaoService
	Escala    services.EscalaService
	Alerta    services.AlertaService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	// Process-wide caches. Writes are idempotent upserts, so the caches are
	// shared across sessions without extra locking at this layer.
	infoCache := cache.NewLRU(informationCacheCapacity)
	calc := irt.NovaCalculadora(infoCache)

	itemBank := services.NewItemBankService(log, reposet.Item, nil)

	var notifier services.Notifier
	alertNotifier, err := redisclient.NewAlertNotifier(log)
	if err != nil {
		// The engine stays fully functional without the notification
		// collaborator; alerts remain queryable through the API.
		log.Warn("Alert notifier unavailable, alerts will not be pushed", "error", err)
	} else {
		notifier = alertNotifier
	}

	avaliacao := services.NewAvaliacaoService(
		db,
		log,
		reposet.Sessao,
		reposet.Resposta,
		reposet.Questionario,
		reposet.ResultadoClinico,
		reposet.Alerta,
		itemBank,
		calc,
		notifier,
	)
	escala := services.NewEscalaService(db, log, reposet.Sessao, reposet.ResultadoClinico)
	alerta := services.NewAlertaService(db, log, reposet.Alerta)

	return Services{
		ItemBank:  itemBank,
		Avaliacao: avaliacao,
		Escala:    escala,
		Alerta:    alerta,
	}, nil
}
