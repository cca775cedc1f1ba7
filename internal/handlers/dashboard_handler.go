package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	ucDashboard "github.com/EltonLopezzs/onbarbearia/internal/usecase/dashboard"
)

type DashboardHandler struct {
	uc    *ucDashboard.GetSummary
	clock Clock
}

func NewDashboardHandler(uc *ucDashboard.GetSummary, clock Clock) *DashboardHandler {
	return &DashboardHandler{uc: uc, clock: clock}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}

	s, err := h.uc.Execute(c.Request.Context(), middleware.Actor(c), requested, h.clock.Now())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
