package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	ucAvailability "github.com/EltonLopezzs/onbarbearia/internal/usecase/availability"
)

type AvailabilityHandler struct {
	uc *ucAvailability.GetAvailability
}

func NewAvailabilityHandler(uc *ucAvailability.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Get responde {"date": "YYYY-MM-DD", "slots": ["08:00", ...]}.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), ucAvailability.GetAvailabilityInput{
		BarbershopID: id,
		Date:         date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}
