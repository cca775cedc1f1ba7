package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/httpresp"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	requested, ok := barbershopQuery(c)
	if !ok {
		return
	}
	shopID, err := middleware.Actor(c).ManagedBarbershop(requested)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		BarbershopID: shopID,
		Action:       c.Query("action"),
		Entity:       c.Query("entity"),
		Page:         page,
		Limit:        limit,
	}

	// --------------------------------------------------
	// Filtros de data (dias civis no fuso da barbearia)
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		if from, err := timezone.ParseDate(h.loc, s); err == nil {
			f.From = &from
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err := timezone.ParseDate(h.loc, s); err == nil {
			_, end := timezone.DayBounds(to, h.loc)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	f.Normalize()
	httpresp.Page(c, logs, total, f.Page, f.Limit)
}
