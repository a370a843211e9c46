package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingSvc
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvc) {
	h := newTransactionHandler(ts, rs)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.POST("/pending", h.createPendingTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/unbalanced", h.listUnbalancedTransactions)
		transactions.GET("/summary", h.summaryByType)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/balance", h.balanceTransaction)
	}
}

// createTransaction godoc
// @Summary Record a balanced transaction
// @Description Validates the journal entries and stores the transaction with them atomically.
// @Description Every violated rule is returned in errors.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction and entries"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Malformed request or unbalanced entries"
// @Failure 500 {object} dto.Response
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	h.create(c, h.transactionService.CreateTransaction, "create transaction")
}

// createPendingTransaction godoc
// @Summary Record a transaction for later balancing
// @Description Stores a structurally valid transaction as unbalanced. Debits need not equal credits yet.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction and entries"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response
// @Router /transactions/pending [post]
func (h *transactionHandler) createPendingTransaction(c *gin.Context) {
	h.create(c, h.transactionService.CreatePendingTransaction, "create pending transaction")
}

func (h *transactionHandler) create(
	c *gin.Context,
	createFn func(context.Context, domain.TransactionDraft) (*domain.Transaction, error),
	action string,
) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to "+action,
		slog.String("type", string(req.Type)),
		slog.Int("entry_count", len(req.Entries)))

	txn, err := createFn(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, logger, err, action)
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.Bool("is_balanced", txn.IsBalanced))
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Pages through transactions, newest first. Filters combine with AND.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Param type query string false "Transaction type"
// @Param isBalanced query bool false "Balanced state"
// @Param from query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param to query string false "End date, inclusive"
// @Success 200 {object} dto.Response{data=dto.TransactionPageResponse}
// @Failure 400 {object} dto.Response
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, err := parseIntQuery(c, "page", 1)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}
	pageSize, err := parseIntQuery(c, "pageSize", pagination.DefaultPageSize)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}
	dateRange, err := parseDateRange(c)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}

	filter := domain.TransactionFilter{DateRange: dateRange}
	if raw := c.Query("type"); raw != "" {
		t := domain.TransactionType(raw)
		filter.Type = &t
	}
	if raw := c.Query("isBalanced"); raw != "" {
		balanced, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, logger, apperrors.NewAppError(http.StatusBadRequest, "isBalanced must be true or false", apperrors.ErrValidation), "list transactions")
			return
		}
		filter.IsBalanced = &balanced
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), page, pageSize, filter)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionPageResponse(result)))
}

// listUnbalancedTransactions godoc
// @Summary Reconciliation queue
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.TransactionResponse}
// @Router /transactions/unbalanced [get]
func (h *transactionHandler) listUnbalancedTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.GetUnbalancedTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list unbalanced transactions")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponses(txns)))
}

// summaryByType godoc
// @Summary Transaction counts and amounts per type
// @Description Sums the informational transaction amount. Most frequent type first.
// @Tags transactions
// @Produce json
// @Param from query string false "Start date"
// @Param to query string false "End date, inclusive"
// @Success 200 {object} dto.Response{data=[]domain.TypeSummary}
// @Router /transactions/summary [get]
func (h *transactionHandler) summaryByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dateRange, err := parseDateRange(c)
	if err != nil {
		respondError(c, logger, err, "summarize transactions")
		return
	}

	summaries, err := h.reportingService.SummaryByType(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, logger, err, "summarize transactions")
		return
	}
	c.JSON(http.StatusOK, dto.OK(summaries))
}

// getTransaction godoc
// @Summary Get a transaction with its entries
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 404 {object} dto.Response
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger.With(slog.String("transaction_id", transactionID)), err, "get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}

// updateTransaction godoc
// @Summary Update an unbalanced transaction
// @Description Changes transaction-level fields. Balanced transactions are immutable.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Transaction is balanced"
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req.ToUpdate())
	if err != nil {
		respondError(c, logger, err, "update transaction")
		return
	}
	logger.Info("Transaction updated")
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}

// deleteTransaction godoc
// @Summary Delete an unbalanced transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.DeleteResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Transaction is balanced"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	deleted, err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger, err, "delete transaction")
		return
	}
	logger.Info("Transaction deleted")
	c.JSON(http.StatusOK, dto.OK(dto.DeleteResponse{Deleted: deleted}))
}

// balanceTransaction godoc
// @Summary Balance a pending transaction
// @Description Re-validates the stored entries and marks the transaction balanced. Idempotent.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Entries do not balance"
// @Failure 404 {object} dto.Response
// @Router /transactions/{id}/balance [post]
func (h *transactionHandler) balanceTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.BalanceTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger, err, "balance transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}
