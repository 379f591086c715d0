package services

import (
	"context"

	"possuite/internal/models/db_models"
	"possuite/internal/models/response_models"
	"possuite/internal/repositories"
	"possuite/pkg/utils"
)

type PlanServiceInterface interface {
	GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetPlanById(ctx context.Context, planId string) (*response_models.PlanResponse, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error) {

	plans, err := p.planRepo.GetActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, toPlanResponse(&plans[i]))
	}

	return result, nil
}

func (p *PlanService) GetPlanById(ctx context.Context, planId string) (*response_models.PlanResponse, error) {

	plan, err := p.planRepo.GetPlanById(ctx, planId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	result := toPlanResponse(plan)
	return &result, nil
}

func toPlanResponse(plan *db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:          plan.ID,
		Code:        plan.Code,
		Name:        plan.Name,
		Description: plan.Description,
		Amount:      plan.Amount,
		Currency:    plan.Currency,
		Interval:    string(plan.Interval),
		Features:    []string(plan.Features),
		IsActive:    plan.IsActive,
	}
}
