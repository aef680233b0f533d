package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/acolhedu/acolhe-backend/internal/engine/clinical"
	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/middleware"
	"github.com/acolhedu/acolhe-backend/internal/services"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type AvaliacaoHandler struct {
	log          *logger.Logger
	avaliacaoSvc services.AvaliacaoService
	escalaSvc    services.EscalaService
}

func NewAvaliacaoHandler(log *logger.Logger, avaliacaoSvc services.AvaliacaoService, escalaSvc services.EscalaService) *AvaliacaoHandler {
	return &AvaliacaoHandler{
		log:          log.With("handler", "AvaliacaoHandler"),
		avaliacaoSvc: avaliacaoSvc,
		escalaSvc:    escalaSvc,
	}
}

type iniciarSessaoRequest struct {
	QuestionarioID uuid.UUID      `json:"questionario_id" binding:"required"`
	Contexto       datatypes.JSON `json:"contexto"`
}

// POST /api/sessoes
func (h *AvaliacaoHandler) IniciarSessao(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	var req iniciarSessaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	sessao, err := h.avaliacaoSvc.IniciarSessao(c.Request.Context(), req.QuestionarioID, usuarioID, req.Contexto)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, sessao)
}

type registrarRespostaRequest struct {
	ItemID        uuid.UUID `json:"item_id" binding:"required"`
	Valor         *float64  `json:"valor" binding:"required"`
	TempoResposta float64   `json:"tempo_resposta"`
}

// POST /api/sessoes/:id/respostas
func (h *AvaliacaoHandler) RegistrarResposta(c *gin.Context) {
	sessaoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return
	}
	var req registrarRespostaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resultado, err := h.avaliacaoSvc.RegistrarResposta(c.Request.Context(), sessaoID, req.ItemID, *req.Valor, req.TempoResposta)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resultado)
}

// POST /api/sessoes/:id/pausar
func (h *AvaliacaoHandler) PausarSessao(c *gin.Context) {
	h.transicao(c, h.avaliacaoSvc.PausarSessao)
}

// POST /api/sessoes/:id/retomar
func (h *AvaliacaoHandler) RetomarSessao(c *gin.Context) {
	h.transicao(c, h.avaliacaoSvc.RetomarSessao)
}

func (h *AvaliacaoHandler) transicao(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*types.SessaoAvaliacao, error)) {
	sessaoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return
	}
	sessao, err := op(c.Request.Context(), sessaoID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sessao)
}

// POST /api/sessoes/:id/finalizar
func (h *AvaliacaoHandler) FinalizarSessao(c *gin.Context) {
	sessaoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return
	}
	resultado, err := h.avaliacaoSvc.FinalizarSessao(c.Request.Context(), sessaoID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resultado)
}

type registrarEscalaRequest struct {
	Instrumento types.InstrumentoClinico  `json:"instrumento" binding:"required"`
	Respostas   []clinical.RespostaEscala `json:"respostas"`
	Item9       *int                      `json:"item9"`
}

// POST /api/sessoes/:id/escalas
func (h *AvaliacaoHandler) RegistrarEscala(c *gin.Context) {
	sessaoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return
	}
	var req registrarEscalaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resultado, err := h.escalaSvc.RegistrarEscala(c.Request.Context(), sessaoID, req.Instrumento, req.Respostas, req.Item9)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, resultado)
}
