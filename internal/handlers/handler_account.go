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

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, bs portssvc.BalanceSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		balanceService: bs,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newAccountHandler(as, bs)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.POST("/:id/archive", h.archiveAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the chart of accounts. Status defaults to ACTIVE.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 409 {object} dto.Response "Account number already in use"
// @Failure 500 {object} dto.Response "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create account", slog.String("number", req.Number), slog.String("account_type", string(req.AccountType)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToAccountResponse(account)))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   type query string false "Account type"
// @Param   status query string false "Account status"
// @Success 200 {object} dto.Response{data=[]dto.AccountResponse}
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter domain.AccountFilter
	if raw := c.Query("type"); raw != "" {
		t := domain.AccountType(raw)
		filter.AccountType = &t
	}
	if raw := c.Query("status"); raw != "" {
		s := domain.AccountStatus(raw)
		filter.Status = &s
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListAccountResponse(accounts)))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 404 {object} dto.Response "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "get account")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// updateAccount godoc
// @Summary Update an account
// @Description Changes name, description or status. The account type never changes.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Account is archived"
// @Router /accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("account_id", accountID))

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "update account")
		return
	}
	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// archiveAccount godoc
// @Summary Archive an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 409 {object} dto.Response "System accounts cannot be archived"
// @Router /accounts/{id}/archive [post]
func (h *accountHandler) archiveAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("account_id", accountID))

	account, err := h.accountService.ArchiveAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "archive account")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// getAccountBalance godoc
// @Summary Get the balance of an account
// @Description Debits minus credits over entries of balanced transactions in the window.
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   from query string false "Start date"
// @Param   to query string false "End date, inclusive"
// @Success 200 {object} dto.Response{data=dto.AccountBalanceResponse}
// @Failure 404 {object} dto.Response "Account not found"
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("account_id", accountID))

	dateRange, err := parseDateRange(c)
	if err != nil {
		respondError(c, logger, err, "get account balance")
		return
	}

	balance, err := h.balanceService.AccountBalance(c.Request.Context(), accountID, dateRange)
	if err != nil {
		respondError(c, logger, err, "get account balance")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.AccountBalanceResponse{
		AccountID: accountID,
		Balance:   balance,
		From:      dateRange.From,
		To:        dateRange.To,
	}))
}
