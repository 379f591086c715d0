package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"possuite/internal/models/request_models"
	"possuite/internal/services"
	"possuite/pkg/utils"
)

type AdminController struct {
	adminService services.AdminService
}

func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GrantSubscription godoc
// @Summary Grant or extend a subscription for any user
// @Description Admin-only override, repeatable at will
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.GrantSubscriptionRequest true "Grant payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/grant-subscription [post]
func (a *AdminController) GrantSubscription(c *gin.Context) {

	var request request_models.GrantSubscriptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if request.UserID == "" || request.PlanID == "" {
		utils.RespondError(c, http.StatusBadRequest, "userId and planId are required")
		return
	}

	subscription, message, err := a.adminService.GrantSubscription(
		c.Request.Context(), request.UserID, request.PlanID, request.DurationMonths)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true, "subscription": subscription}, message)
}

// SendNotification godoc
// @Summary Send an ad-hoc notification email
// @Description Admin-only transactional mail dispatch; nothing is persisted
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.SendNotificationRequest true "Notification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/send-notification [post]
func (a *AdminController) SendNotification(c *gin.Context) {

	var request request_models.SendNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := a.adminService.SendNotification(
		c.Request.Context(), request.RecipientEmail, request.Subject, request.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Notification sent successfully")
}

// GetAdminData godoc
// @Summary Aggregate read for the admin dashboard
// @Description All subscriptions, payments, plans, users and summary metrics in one response
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/data [get]
func (a *AdminController) GetAdminData(c *gin.Context) {

	data, err := a.adminService.AggregateData(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Admin data fetched successfully")
}
