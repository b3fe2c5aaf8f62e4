package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
)

var businessMessages = map[string]string{
	"client_not_found":      "Cliente não encontrado.",
	"barber_not_found":      "Barbeiro não encontrado.",
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"time_conflict":         "Conflito de horário com outro agendamento.",
	"invalid_date":          "Data ou hora inválida.",
	"invalid_duration":      "Serviço com duração inválida.",
	"invalid_status":        "Status inválido.",
}

// writeBusinessError traduz erros de negócio dos use cases para HTTP.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	msg := businessMessages[code]

	switch code {
	case "client_not_found", "barber_not_found", "service_not_found", "appointment_not_found":
		httperr.NotFound(c, code, msg)
	case "time_conflict", "invalid_date", "invalid_duration", "invalid_status":
		httperr.BadRequest(c, code, msg)
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
