package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, ps portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: ps}

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/current", h.getCurrentPeriod)
		periods.GET("/:id", h.getPeriod)
		periods.POST("/:id/close", h.closePeriod)
	}
}

// createPeriod godoc
// @Summary Open an accounting period
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.CreatePeriodRequest true "Period"
// @Success 201 {object} dto.Response{data=domain.Period}
// @Failure 400 {object} dto.Response
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "create period")
		return
	}
	logger.Info("Period created", slog.String("period_id", period.PeriodID))
	c.JSON(http.StatusCreated, dto.OK(period))
}

func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list periods")
		return
	}
	c.JSON(http.StatusOK, dto.OK(periods))
}

func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.GetPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "get period")
		return
	}
	c.JSON(http.StatusOK, dto.OK(period))
}

func (h *periodHandler) getCurrentPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.GetCurrentPeriod(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "get current period")
		return
	}
	c.JSON(http.StatusOK, dto.OK(period))
}

// closePeriod godoc
// @Summary Close an accounting period
// @Description Refused while unbalanced transactions are booked into the period. Idempotent.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} dto.Response{data=domain.Period}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Period has unbalanced transactions"
// @Router /periods/{id}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")
	logger = logger.With(slog.String("period_id", periodID))

	period, err := h.periodService.ClosePeriod(c.Request.Context(), periodID)
	if err != nil {
		respondError(c, logger, err, "close period")
		return
	}
	logger.Info("Period closed")
	c.JSON(http.StatusOK, dto.OK(period))
}
