package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/domain/user"
	"github.com/EltonLopezzs/onbarbearia/internal/dto"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
)

type MeHandler struct {
	users user.Repository
}

func NewMeHandler(users user.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.Actor(c)

	u, err := h.users.Get(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	// token de um usuário apagado
	if u == nil {
		httperr.FromError(c, httperr.ErrBusiness(httperr.CodeNotAuthenticated))
		return
	}

	resp := gin.H{"user": dto.NewUserDTO(u)}
	if u.ManagedBarbershop != nil {
		resp["barbershop"] = dto.NewBarbershopDTO(u.ManagedBarbershop)
	}
	c.JSON(http.StatusOK, resp)
}
