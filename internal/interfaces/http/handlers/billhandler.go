package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingUC "centime/internal/application/billing/usecases"
	"centime/internal/domain/billing"
	"centime/internal/interfaces/http/middleware"
	"centime/internal/shared/biztime"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

type BillHandler struct {
	createBill       *billingUC.CreateBillUseCase
	getBill          *billingUC.GetBillUseCase
	listBills        *billingUC.ListBillsUseCase
	payBill          *billingUC.PayBillUseCase
	ensureBillsDue   *billingUC.EnsureBillsDueUseCase
	listTransactions *billingUC.ListTransactionsUseCase
	logger           logger.Interface
}

func NewBillHandler(
	createBill *billingUC.CreateBillUseCase,
	getBill *billingUC.GetBillUseCase,
	listBills *billingUC.ListBillsUseCase,
	payBill *billingUC.PayBillUseCase,
	ensureBillsDue *billingUC.EnsureBillsDueUseCase,
	listTransactions *billingUC.ListTransactionsUseCase,
	logger logger.Interface,
) *BillHandler {
	return &BillHandler{
		createBill:       createBill,
		getBill:          getBill,
		listBills:        listBills,
		payBill:          payBill,
		ensureBillsDue:   ensureBillsDue,
		listTransactions: listTransactions,
		logger:           logger,
	}
}

type createBillRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=150"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents" binding:"min=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	DueDate     string `json:"due_date" binding:"required"`
	Category    string `json:"category"`
}

// Create assigns a one-off bill to a customer. Admin only.
func (h *BillHandler) Create(c *gin.Context) {
	actorID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dueDate, err := biztime.ParseDate(req.DueDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid due_date, expected YYYY-MM-DD")
		return
	}

	result, err := h.createBill.Execute(c.Request.Context(), billingUC.CreateBillCommand{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		DueDate:     dueDate,
		Category:    req.Category,
		CreatedBy:   actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBillResponse(result.Bill))
}

// Get returns one bill with its settlement record when paid.
func (h *BillHandler) Get(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	billID, err := utils.ParseUintParam(c, "id", "bill")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBill.Execute(c.Request.Context(), billingUC.GetBillCommand{
		BillID:    billID,
		ActorID:   actorID,
		ActorRole: role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{"bill": toBillResponse(result.Bill)}
	if result.LatestTransaction != nil {
		response["transaction"] = toTransactionResponse(result.LatestTransaction)
	}

	utils.OKResponse(c, response)
}

// List pages through bills with optional status and due date filters.
func (h *BillHandler) List(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	pagination := utils.ParsePagination(c)

	filter := billing.BillFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	dueFrom, err := utils.ParseDateQuery(c, "due_from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	filter.DueFrom = dueFrom

	dueTo, err := utils.ParseDateQuery(c, "due_to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	filter.DueTo = dueTo

	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID, err := utils.ParseUintQuery(c, "user_id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		filter.UserID = userID
	}

	// Opportunistic catch-up so the listing reflects every elapsed
	// cycle. A failed catch-up degrades to a possibly stale list; the
	// scheduler bounds how stale.
	catchUp := billingUC.EnsureBillsDueCommand{UserID: filter.UserID}
	if !role.IsAdmin() {
		ownerID := actorID
		catchUp.UserID = &ownerID
	}
	if _, err := h.ensureBillsDue.Execute(c.Request.Context(), catchUp); err != nil {
		h.logger.Warnw("bill catch-up before listing failed", "error", err)
	}

	result, err := h.listBills.Execute(c.Request.Context(), billingUC.ListBillsCommand{
		ActorID:   actorID,
		ActorRole: role,
		Filter:    filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toBillResponses(result.Bills), result.Total, pagination.Page, pagination.PageSize)
}

type payBillRequest struct {
	Method string `json:"method" binding:"omitempty,oneof=simulated card bank_transfer"`
}

// Pay settles a bill. Re-paying a settled bill returns the prior
// settlement with 200 instead of an error.
func (h *BillHandler) Pay(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	billID, err := utils.ParseUintParam(c, "id", "bill")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req payBillRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.payBill.Execute(c.Request.Context(), billingUC.PayBillCommand{
		BillID:    billID,
		ActorID:   actorID,
		ActorRole: role,
		Method:    req.Method,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{
		"bill":         toBillResponse(result.Bill),
		"already_paid": result.AlreadyPaid,
	}
	if result.Transaction != nil {
		response["transaction"] = toTransactionResponse(result.Transaction)
	}

	utils.OKResponse(c, response)
}

type generateBillsRequest struct {
	ReferenceDate string `json:"reference_date" binding:"omitempty"`
	UserID        *uint  `json:"user_id"`
}

// Generate runs catch-up bill generation up to the reference date.
// Admin only; the scheduler calls the same use case on its own timer.
func (h *BillHandler) Generate(c *gin.Context) {
	var req generateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := billingUC.EnsureBillsDueCommand{UserID: req.UserID}
	if req.ReferenceDate != "" {
		referenceDate, err := biztime.ParseDate(req.ReferenceDate)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid reference_date, expected YYYY-MM-DD")
			return
		}
		cmd.ReferenceDate = referenceDate
	}

	result, err := h.ensureBillsDue.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"created": result.Created,
		"failed":  result.Failed,
	})
}

// ListTransactions pages through payment history.
func (h *BillHandler) ListTransactions(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	pagination := utils.ParsePagination(c)

	filter := billing.TransactionFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.listTransactions.Execute(c.Request.Context(), billingUC.ListTransactionsCommand{
		ActorID:   actorID,
		ActorRole: role,
		Filter:    filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{
		"transactions": toTransactionResponses(result.Transactions),
		"total":        result.Total,
		"page":         pagination.Page,
		"page_size":    pagination.PageSize,
	}
	if result.Summary != nil {
		response["summary"] = gin.H{
			"success_count":    result.Summary.SuccessCount,
			"failed_count":     result.Summary.FailedCount,
			"total_paid_cents": result.Summary.TotalPaidCents,
		}
	}

	utils.OKResponse(c, response)
}
