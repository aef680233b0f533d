package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acolhedu/acolhe-backend/internal/types"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses:
// validation → 400, missing resources → 404, illegal session state → 409,
// anything else → 500.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrValorInvalido),
		errors.Is(err, types.ErrItemJaRespondido),
		errors.Is(err, types.ErrScoreInvalido),
		errors.Is(err, types.ErrInstrumentoDesconhecido),
		errors.Is(err, types.ErrStatusInvalido):
		RespondError(c, http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, types.ErrSessaoNaoEncontrada),
		errors.Is(err, types.ErrQuestionarioNaoEncontrado),
		errors.Is(err, types.ErrItemDesconhecido),
		errors.Is(err, types.ErrAlertaNaoEncontrado):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case types.IsEstadoInvalido(err):
		RespondError(c, http.StatusConflict, "invalid_state", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
