package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"possuite/internal/models/response_models"
	"possuite/internal/repositories"
	"possuite/pkg/utils"
)

// TrialService grants the one-month free trial. Strictly one-shot per
// account: any prior subscription row, paid or trial, exhausts it.
type TrialService interface {
	ActivateTrial(ctx context.Context, accountID uuid.UUID, planID string) (*response_models.SubscriptionResponse, error)
}

type trialService struct {
	planRepo repositories.IPlanRepository
	subRepo  repositories.SubscriptionRepository
}

func NewTrialService(planRepo repositories.IPlanRepository, subRepo repositories.SubscriptionRepository) TrialService {
	return &trialService{
		planRepo: planRepo,
		subRepo:  subRepo,
	}
}

func (t *trialService) ActivateTrial(ctx context.Context, accountID uuid.UUID, planID string) (*response_models.SubscriptionResponse, error) {

	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	// Fast-path eligibility check; the locked insert below re-checks
	// under the transaction, this one just keeps the common duplicate
	// call from touching the plan table.
	existing, err := t.subRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing > 0 {
		return nil, utils.ErrTrialAlreadyUsed
	}

	plan, err := t.planRepo.GetPlanById(ctx, planUUID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return nil, utils.ErrPlanNotFound
	}

	start := utils.NowUnixSeconds()
	end := utils.AddMonths(start, 1)

	sub, err := t.subRepo.CreateTrialExclusive(ctx, accountID, plan.ID, start, end)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionExists) {
			return nil, utils.ErrTrialAlreadyUsed
		}
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Free trial activated for account %s on plan %s", accountID, plan.Code)

	return &response_models.SubscriptionResponse{
		ID:        sub.ID,
		UserID:    sub.AccountID,
		PlanID:    sub.PlanID,
		Status:    string(sub.Status),
		StartDate: utils.FormatRFC3339(sub.StartDate),
		EndDate:   utils.FormatRFC3339(sub.EndDate),
	}, nil
}
