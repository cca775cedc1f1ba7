package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
)

// Clock permite fixar o "agora" nos testes.
type Clock func() time.Time

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// barbershopQuery lê o barbershop_id opcional das rotas /me; 0 = barbearia do ator.
func barbershopQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("barbershop_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbearia inválida.")
		return 0, false
	}
	return uint(id), true
}

func invalidRequest(c *gin.Context, err error) {
	httperr.Write(c, http.StatusBadRequest, "invalid_request", "Dados inválidos: "+err.Error())
}
