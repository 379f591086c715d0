package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"possuite/internal/models/request_models"
	"possuite/internal/services"
	"possuite/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// InitializeCheckout godoc
// @Summary Start a hosted-payment-page transaction for a plan
// @Description Initialize a gateway transaction and return its redirect URL
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.InitializeCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/initialize [post]
func (p *PaymentController) InitializeCheckout(c *gin.Context) {

	var request request_models.InitializeCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	checkout, err := p.paymentService.InitializeCheckout(c.Request.Context(), userId, request.Email, request.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout initialized successfully")
}

// VerifyPayment godoc
// @Summary Verify a gateway transaction by reference
// @Description Confirm the transaction outcome with the gateway and activate the subscription
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {

	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Reference is required")
		return
	}

	userId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	if err := p.paymentService.VerifyPayment(c.Request.Context(), userId, request.Reference); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Payment verified successfully")
}
