package app

import (
	"github.com/gin-gonic/gin"

	"github.com/acolhedu/acolhe-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:   middlewareset.Auth,
		AvaliacaoHandler: handlerset.Avaliacao,
		AlertaHandler:    handlerset.Alerta,
		AllowOrigins:     cfg.AllowOrigins,
	})
}
