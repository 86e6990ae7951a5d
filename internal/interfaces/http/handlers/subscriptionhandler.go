package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subscriptionUC "centime/internal/application/subscription/usecases"
	"centime/internal/domain/subscription"
	"centime/internal/interfaces/http/middleware"
	"centime/internal/shared/biztime"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscription *subscriptionUC.CreateSubscriptionUseCase
	toggleSubscription *subscriptionUC.ToggleSubscriptionUseCase
	updateSubscription *subscriptionUC.UpdateSubscriptionUseCase
	listSubscriptions  *subscriptionUC.ListSubscriptionsUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	createSubscription *subscriptionUC.CreateSubscriptionUseCase,
	toggleSubscription *subscriptionUC.ToggleSubscriptionUseCase,
	updateSubscription *subscriptionUC.UpdateSubscriptionUseCase,
	listSubscriptions *subscriptionUC.ListSubscriptionsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscription: createSubscription,
		toggleSubscription: toggleSubscription,
		updateSubscription: updateSubscription,
		listSubscriptions:  listSubscriptions,
		logger:             logger,
	}
}

type createSubscriptionRequest struct {
	// UserID may be omitted by customers; it defaults to the actor.
	UserID          uint   `json:"user_id"`
	Name            string `json:"name" binding:"required,max=120"`
	AmountCents     int64  `json:"amount_cents" binding:"min=0"`
	Currency        string `json:"currency" binding:"omitempty,len=3"`
	Category        string `json:"category"`
	NextRenewalDate string `json:"next_renewal_date" binding:"omitempty"`
	Notes           string `json:"notes"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = actorID
	}

	cmd := subscriptionUC.CreateSubscriptionCommand{
		UserID:      userID,
		ActorID:     actorID,
		ActorRole:   role,
		Name:        req.Name,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Category:    req.Category,
		Notes:       req.Notes,
	}

	if req.NextRenewalDate != "" {
		nextRenewalDate, err := biztime.ParseDate(req.NextRenewalDate)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid next_renewal_date, expected YYYY-MM-DD")
			return
		}
		cmd.NextRenewalDate = nextRenewalDate
	}

	result, err := h.createSubscription.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubscriptionResponse(result.Subscription))
}

// Toggle pauses an active subscription or resumes a paused one.
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleSubscription.Execute(c.Request.Context(), subscriptionUC.ToggleSubscriptionCommand{
		SubscriptionID: subscriptionID,
		ActorID:        actorID,
		ActorRole:      role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toSubscriptionResponse(result.Subscription))
}

type updateSubscriptionRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=120"`
	Notes *string `json:"notes"`
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateSubscription.Execute(c.Request.Context(), subscriptionUC.UpdateSubscriptionCommand{
		SubscriptionID: subscriptionID,
		ActorID:        actorID,
		ActorRole:      role,
		Name:           req.Name,
		Notes:          req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toSubscriptionResponse(result.Subscription))
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	pagination := utils.ParsePagination(c)

	filter := subscription.Filter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if rawActive := c.Query("active"); rawActive != "" {
		active := rawActive == "true"
		filter.Active = &active
	}

	userID, err := utils.ParseUintQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	filter.UserID = userID

	result, err := h.listSubscriptions.Execute(c.Request.Context(), subscriptionUC.ListSubscriptionsCommand{
		ActorID:   actorID,
		ActorRole: role,
		Filter:    filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toSubscriptionResponses(result.Subscriptions), result.Total, pagination.Page, pagination.PageSize)
}
