package app

import (
	"github.com/acolhedu/acolhe-backend/internal/handlers"
	"github.com/acolhedu/acolhe-backend/internal/logger"
)

type Handlers struct {
	Avaliacao *handlers.AvaliacaoHandler
	Alerta    *handlers.AlertaHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Avaliacao: handlers.NewAvaliacaoHandler(log, serviceset.Avaliacao, serviceset.Escala),
		Alerta:    handlers.NewAlertaHandler(log, serviceset.Alerta),
	}
}
