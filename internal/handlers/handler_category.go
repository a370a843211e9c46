package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the subsidiary ledgers transactions link to.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: cs}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.recordCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:kind/:id", h.getCategory)
	}
}

// recordCategory godoc
// @Summary Record a category record
// @Description Kind-specific warnings are returned alongside the stored record.
// @Tags categories
// @Accept json
// @Produce json
// @Param record body dto.CreateCategoryRecordRequest true "Record"
// @Success 201 {object} dto.Response{data=domain.CategoryRecord}
// @Failure 400 {object} dto.Response
// @Router /categories [post]
func (h *categoryHandler) recordCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	record, warnings, err := h.categoryService.RecordCategory(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "record category")
		return
	}
	logger.Info("Category record created", slog.String("record_id", record.RecordID), slog.Int("warning_count", len(warnings)))
	c.JSON(http.StatusCreated, dto.OK(record, warnings...))
}

// listCategories godoc
// @Summary List category records
// @Tags categories
// @Produce json
// @Param kind query string false "ASSET, LIABILITY, EQUITY, REVENUE or EXPENSE"
// @Success 200 {object} dto.Response{data=[]domain.CategoryRecord}
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var kind *domain.CategoryKind
	if raw := c.Query("kind"); raw != "" {
		k := domain.CategoryKind(raw)
		kind = &k
	}

	records, err := h.categoryService.ListCategories(c.Request.Context(), kind)
	if err != nil {
		respondError(c, logger, err, "list category records")
		return
	}
	c.JSON(http.StatusOK, dto.OK(records))
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	link := domain.CategoryLink{Kind: domain.CategoryKind(c.Param("kind")), RecordID: c.Param("id")}

	record, err := h.categoryService.GetCategory(c.Request.Context(), link)
	if err != nil {
		respondError(c, logger, err, "get category record")
		return
	}
	c.JSON(http.StatusOK, dto.OK(record))
}
