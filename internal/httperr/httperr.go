package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
	IDs       []uint `json:"professional_ids,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError traduz a taxonomia de erros de domínio para HTTP.
// Erros desconhecidos (storage etc.) viram 500 com fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var (
		be     BusinessError
		nf     NotFoundError
		cfg    ConfigurationError
		ce     ConflictError
		it     InvalidTransitionError
		capErr CapacityEnforcementError
	)

	// capacidade primeiro: ela embrulha a causa original
	switch {
	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, HTTPError{
			Code:    "capacity_enforcement_failed",
			Message: "Não foi possível aplicar o plano. Desative manualmente os profissionais listados.",
			IDs:     capErr.ProfessionalIDs,
		})
	case errors.As(err, &be):
		BadRequest(c, be.Code, "Dados inválidos.")
	case errors.As(err, &nf):
		NotFound(c, nf.Code, "Registro não encontrado.")
	case errors.As(err, &cfg):
		Write(c, http.StatusUnprocessableEntity, cfg.Code, "Horários de atendimento não configurados.")
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, HTTPError{
			Code:      ce.Code,
			Message:   "Horário indisponível. Escolha outro horário.",
			Retryable: ce.Retryable(),
		})
	case errors.As(err, &it):
		if it.Code == CodeForbidden {
			Forbidden(c, it.Code, "Operação não permitida.")
			return
		}
		Write(c, http.StatusUnprocessableEntity, it.Code, "Mudança de status inválida.")
	default:
		_ = c.Error(err)
		Internal(c, fallbackCode, "Erro interno.")
	}
}
