package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "centime/internal/application/user/usecases"
	"centime/internal/interfaces/http/middleware"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

type CustomerHandler struct {
	createCustomer *userUC.CreateCustomerUseCase
	getCustomer    *userUC.GetCustomerUseCase
	listCustomers  *userUC.ListCustomersUseCase
	updateProfile  *userUC.UpdateProfileUseCase
	logger         logger.Interface
}

func NewCustomerHandler(
	createCustomer *userUC.CreateCustomerUseCase,
	getCustomer *userUC.GetCustomerUseCase,
	listCustomers *userUC.ListCustomersUseCase,
	updateProfile *userUC.UpdateProfileUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomer: createCustomer,
		getCustomer:    getCustomer,
		listCustomers:  listCustomers,
		updateProfile:  updateProfile,
		logger:         logger,
	}
}

type createCustomerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=150"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address"`
}

// Create provisions a customer account with its profile. Admin only.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createCustomer.Execute(c.Request.Context(), userUC.CreateCustomerCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := CustomerDetailResponse{
		CustomerResponse: toCustomerResponse(result.User),
		Profile:          toProfileResponse(result.Profile),
	}

	utils.CreatedResponse(c, response)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCustomer.Execute(c.Request.Context(), userUC.GetCustomerCommand{
		UserID:    userID,
		ActorID:   actorID,
		ActorRole: role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, CustomerDetailResponse{
		CustomerResponse: toCustomerResponse(result.User),
		Profile:          toProfileResponse(result.Profile),
		UnpaidBills:      result.UnpaidBills,
	})
}

// List pages through customer accounts. Admin only.
func (h *CustomerHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listCustomers.Execute(c.Request.Context(), userUC.ListCustomersCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]CustomerDetailResponse, 0, len(result.Customers))
	for _, customer := range result.Customers {
		items = append(items, CustomerDetailResponse{
			CustomerResponse: toCustomerResponse(customer),
			UnpaidBills:      result.UnpaidCounts[customer.ID()],
		})
	}

	utils.ListSuccessResponse(c, items, result.Total, pagination.Page, pagination.PageSize)
}

type updateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=150"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address"`
}

func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	actorID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), userUC.UpdateProfileCommand{
		UserID:    userID,
		ActorID:   actorID,
		ActorRole: role,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toProfileResponse(result.Profile))
}
