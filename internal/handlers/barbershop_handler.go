package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/dto"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/httpresp"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	ucBarbershop "github.com/EltonLopezzs/onbarbearia/internal/usecase/barbershop"
)

type BarbershopHandler struct {
	list   *ucBarbershop.ListBarbershops
	get    *ucBarbershop.GetBarbershop
	update *ucBarbershop.UpdateBarbershop
}

func NewBarbershopHandler(
	list *ucBarbershop.ListBarbershops,
	get *ucBarbershop.GetBarbershop,
	update *ucBarbershop.UpdateBarbershop,
) *BarbershopHandler {
	return &BarbershopHandler{list: list, get: get, update: update}
}

type UpdateBarbershopRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Description *string `json:"description"`
}

// ------------------------------
// Público
// ------------------------------

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewBarbershopDTOs(shops))
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBarbershopDetailDTO(shop))
}

// ------------------------------
// /me/barbershop
// ------------------------------

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	shopID, err := middleware.Actor(c).ManagedBarbershop(0)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	shop, err := h.get.Execute(c.Request.Context(), shopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBarbershopDetailDTO(shop))
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	shop, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), ucBarbershop.UpdateBarbershopInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBarbershopDTO(shop))
}
