package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler exposes the accounting equation checks.
type ledgerHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := &ledgerHandler{balanceService: bs}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/equation", h.ledgerEquation)
		ledger.GET("/equation/categories", h.categoryEquation)
		ledger.POST("/equation/check", h.checkEquation)
	}
}

// ledgerEquation godoc
// @Summary Check the accounting equation against the journal
// @Description Totals balanced entries up to asOf. Net income is counted as equity.
// @Tags ledger
// @Produce json
// @Param asOf query string false "Cut-off date, inclusive"
// @Success 200 {object} dto.Response{data=domain.EquationResult}
// @Router /ledger/equation [get]
func (h *ledgerHandler) ledgerEquation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := parseTimeQuery(c, "asOf", true)
	if err != nil {
		respondError(c, logger, err, "check accounting equation")
		return
	}

	result, err := h.balanceService.CheckLedgerEquation(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "check accounting equation")
		return
	}
	c.JSON(http.StatusOK, dto.OK(result))
}

// categoryEquation godoc
// @Summary Check the accounting equation against the category records
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.Response{data=domain.EquationResult}
// @Router /ledger/equation/categories [get]
func (h *ledgerHandler) categoryEquation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.balanceService.CheckCategoryEquation(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "check accounting equation")
		return
	}
	c.JSON(http.StatusOK, dto.OK(result))
}

// checkEquation godoc
// @Summary Check caller-supplied totals
// @Tags ledger
// @Accept json
// @Produce json
// @Param totals body dto.EquationCheckRequest true "Totals"
// @Success 200 {object} dto.Response{data=domain.EquationResult}
// @Router /ledger/equation/check [post]
func (h *ledgerHandler) checkEquation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EquationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	result := h.balanceService.ValidateAccountingEquation(req.TotalAssets, req.TotalLiabilities, req.TotalEquity)
	c.JSON(http.StatusOK, dto.OK(result))
}
