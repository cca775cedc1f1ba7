package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

var businessStatus = map[string]int{
	CodeValidation:         http.StatusBadRequest,
	CodeNotAuthenticated:   http.StatusUnauthorized,
	CodeInvalidCredentials: http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeNoManagedShop:      http.StatusForbidden,
	CodeSlotTaken:          http.StatusConflict,
	CodeHasFutureBookings:  http.StatusConflict,
	CodeEmailTaken:         http.StatusConflict,
	CodeBarbershopNotFound: http.StatusNotFound,
	CodeServiceNotFound:    http.StatusNotFound,
}

var businessMessage = map[string]string{
	CodeValidation:         "Dados inválidos.",
	CodeNotAuthenticated:   "Você precisa estar logado.",
	CodeInvalidCredentials: "E-mail ou senha inválidos.",
	CodeForbidden:          "Acesso negado.",
	CodeNoManagedShop:      "Nenhuma barbearia associada ao usuário.",
	CodeSlotTaken:          "Este horário não está mais disponível.",
	CodeHasFutureBookings:  "Não é possível excluir um serviço com agendamentos futuros.",
	CodeEmailTaken:         "E-mail já cadastrado.",
	CodeBarbershopNotFound: "Barbearia não encontrada.",
	CodeServiceNotFound:    "Serviço não encontrado.",
}

// StatusFor devolve o status HTTP de um código de negócio (400 se desconhecido).
func StatusFor(code string) int {
	if s, ok := businessStatus[code]; ok {
		return s
	}
	return http.StatusBadRequest
}

// FromError responde erros de negócio com o status mapeado; o resto vira 500.
// Devolve false quando o erro não era de negócio.
func FromError(c *gin.Context, err error) bool {
	be, ok := AsBusiness(err)
	if !ok {
		// o RequestLogger registra c.Errors
		_ = c.Error(err)
		Internal(c, "internal_error", "Erro interno. Tente novamente mais tarde.")
		return false
	}

	msg := be.Message
	if msg == "" {
		msg = businessMessage[be.Code]
	}
	Write(c, StatusFor(be.Code), be.Code, msg)
	return true
}
