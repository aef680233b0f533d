package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/services"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

type AlertaHandler struct {
	log       *logger.Logger
	alertaSvc services.AlertaService
}

func NewAlertaHandler(log *logger.Logger, alertaSvc services.AlertaService) *AlertaHandler {
	return &AlertaHandler{
		log:       log.With("handler", "AlertaHandler"),
		alertaSvc: alertaSvc,
	}
}

// GET /api/alertas?usuario_id=...&status=...
func (h *AlertaHandler) Listar(c *gin.Context) {
	var usuarioID *uuid.UUID
	if raw := c.Query("usuario_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
			return
		}
		usuarioID = &id
	}
	status := types.StatusAlerta(c.Query("status"))

	alertas, err := h.alertaSvc.Listar(c.Request.Context(), usuarioID, status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, alertas)
}

type atualizarStatusRequest struct {
	Status types.StatusAlerta `json:"status" binding:"required"`
}

// PATCH /api/alertas/:id/status
func (h *AlertaHandler) AtualizarStatus(c *gin.Context) {
	alertaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_alert_id", err)
		return
	}
	var req atualizarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	alerta, err := h.alertaSvc.AtualizarStatus(c.Request.Context(), alertaID, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, alerta)
}
