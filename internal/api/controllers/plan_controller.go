package controllers

import (
	"github.com/gin-gonic/gin"
	"possuite/internal/services"
	"possuite/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List active subscription plans
// @Description Fetch the plans offerable for new subscriptions, cheapest first
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {

	plans, err := p.planService.GetActivePlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"plans": plans}, "Plans fetched successfully")
}
