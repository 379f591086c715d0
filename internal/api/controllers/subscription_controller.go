package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"possuite/internal/models/request_models"
	"possuite/internal/services"
	"possuite/pkg/utils"
)

type SubscriptionController struct {
	trialService services.TrialService
}

func NewSubscriptionController(trialService services.TrialService) *SubscriptionController {
	return &SubscriptionController{
		trialService: trialService,
	}
}

// ActivateTrial godoc
// @Summary Activate the one-month free trial
// @Description Grant a one-month active subscription without payment, once per account
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.ActivateTrialRequest true "Trial activation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/trial [post]
func (s *SubscriptionController) ActivateTrial(c *gin.Context) {

	var request request_models.ActivateTrialRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	userId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	subscription, err := s.trialService.ActivateTrial(c.Request.Context(), userId, request.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		gin.H{"success": true, "subscription": subscription},
		"Free trial activated successfully")
}
