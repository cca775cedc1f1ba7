package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/dto"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	ucSchedule "github.com/EltonLopezzs/onbarbearia/internal/usecase/schedule"
)

type OperatingHoursHandler struct {
	get     *ucSchedule.GetOperatingHours
	replace *ucSchedule.ReplaceOperatingHours
}

func NewOperatingHoursHandler(
	get *ucSchedule.GetOperatingHours,
	replace *ucSchedule.ReplaceOperatingHours,
) *OperatingHoursHandler {
	return &OperatingHoursHandler{get: get, replace: replace}
}

type OperatingDayRequest struct {
	// ponteiro: 0 (domingo) é válido e "required" o rejeitaria
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"clock"`
	EndTime   string `json:"end_time" binding:"clock"`
	IsClosed  bool   `json:"is_closed"`
}

type ReplaceOperatingHoursRequest struct {
	Days []OperatingDayRequest `json:"days" binding:"required,len=7,dive"`
}

func (h *OperatingHoursHandler) Get(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	shopID, err := middleware.Actor(c).ManagedBarbershop(requested)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	rows, err := h.get.Execute(c.Request.Context(), shopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOperatingHoursDTOs(rows))
}

// Replace troca os sete dias de uma vez.
func (h *OperatingHoursHandler) Replace(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}

	var req ReplaceOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	days := make([]schedule.Day, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, schedule.Day{
			DayOfWeek: *d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsClosed:  d.IsClosed,
		})
	}

	rows, err := h.replace.Execute(c.Request.Context(), middleware.Actor(c), ucSchedule.ReplaceOperatingHoursInput{
		BarbershopID: requested,
		Days:         days,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOperatingHoursDTOs(rows))
}
