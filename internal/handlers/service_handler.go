package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/EltonLopezzs/onbarbearia/internal/dto"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/httpresp"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	ucService "github.com/EltonLopezzs/onbarbearia/internal/usecase/service"
)

const imageFormField = "image"

type ServiceHandler struct {
	list   *ucService.ListServices
	create *ucService.CreateService
	update *ucService.UpdateService
	delete *ucService.DeleteService
	upload *ucService.UploadServiceImage
	clock  Clock
}

func NewServiceHandler(
	list *ucService.ListServices,
	create *ucService.CreateService,
	update *ucService.UpdateService,
	del *ucService.DeleteService,
	upload *ucService.UploadServiceImage,
	clock Clock,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		create: create,
		update: update,
		delete: del,
		upload: upload,
		clock:  clock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=255"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) ListPublic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.respondList(c, id)
}

// ======================================================
// /me/services
// ======================================================

func (h *ServiceHandler) ListMine(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	shopID, err := middleware.Actor(c).ManagedBarbershop(requested)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondList(c, shopID)
}

func (h *ServiceHandler) respondList(c *gin.Context, shopID uint) {
	list, err := h.list.Execute(c.Request.Context(), shopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), ucService.CreateServiceInput{
		BarbershopID: requested,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewServiceDTO(svc))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), ucService.UpdateServiceInput{
		BarbershopID: requested,
		ServiceID:    id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewServiceDTO(svc))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), ucService.DeleteServiceInput{
		BarbershopID: requested,
		ServiceID:    id,
		Now:          h.clock.Now(),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.upload == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "images_disabled", "Upload de imagens não configurado.")
		return
	}

	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile(imageFormField)
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo \"image\".")
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	svc, err := h.upload.Execute(c.Request.Context(), middleware.Actor(c), ucService.UploadServiceImageInput{
		BarbershopID: requested,
		ServiceID:    id,
		File:         f,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewServiceDTO(svc))
}
