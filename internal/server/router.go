package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/acolhedu/acolhe-backend/internal/handlers"
	"github.com/acolhedu/acolhe-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware   *middleware.AuthMiddleware
	AvaliacaoHandler *handlers.AvaliacaoHandler
	AlertaHandler    *handlers.AlertaHandler
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Sessões adaptativas
		api.POST("/sessoes", cfg.AvaliacaoHandler.IniciarSessao)
		api.POST("/sessoes/:id/respostas", cfg.AvaliacaoHandler.RegistrarResposta)
		api.POST("/sessoes/:id/pausar", cfg.AvaliacaoHandler.PausarSessao)
		api.POST("/sessoes/:id/retomar", cfg.AvaliacaoHandler.RetomarSessao)
		api.POST("/sessoes/:id/finalizar", cfg.AvaliacaoHandler.FinalizarSessao)
		// Escalas de forma fixa
		api.POST("/sessoes/:id/escalas", cfg.AvaliacaoHandler.RegistrarEscala)
		// Alertas
		api.GET("/alertas", cfg.AlertaHandler.Listar)
		api.PATCH("/alertas/:id/status", cfg.AlertaHandler.AtualizarStatus)
	}

	return router
}
