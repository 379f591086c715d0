package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"possuite/internal/models/db_models"
	"possuite/pkg/utils"
)

func activePlan(amount int64) *db_models.Plan {
	plan := &db_models.Plan{
		Code:     "starter",
		Name:     "Starter",
		Amount:   amount,
		Currency: "GHS",
		Interval: db_models.IntervalMonthly,
		IsActive: true,
	}
	plan.ID = uuid.New()
	return plan
}

func TestTrialService_ActivateTrial(t *testing.T) {
	t.Parallel()

	t.Run("grants a one-month active subscription without payment", func(t *testing.T) {
		t.Parallel()
		plan := activePlan(5000)
		subRepo := &fakeSubscriptionRepo{}
		svc := NewTrialService(newFakePlanRepo(plan), subRepo)
		accountID := uuid.New()

		sub, err := svc.ActivateTrial(context.Background(), accountID, plan.ID.String())
		require.NoError(t, err)

		assert.Equal(t, accountID, sub.UserID)
		assert.Equal(t, plan.ID, sub.PlanID)
		assert.Equal(t, string(db_models.SubStatusActive), sub.Status)
		require.Len(t, subRepo.subs, 1)

		start, err := time.Parse(time.RFC3339, sub.StartDate)
		require.NoError(t, err)
		end, err := time.Parse(time.RFC3339, sub.EndDate)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 1, 0), end)
	})

	t.Run("rejects a malformed plan id", func(t *testing.T) {
		t.Parallel()
		svc := NewTrialService(newFakePlanRepo(), &fakeSubscriptionRepo{})

		_, err := svc.ActivateTrial(context.Background(), uuid.New(), "not-a-uuid")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("is one-shot per account regardless of plan", func(t *testing.T) {
		t.Parallel()
		planA := activePlan(5000)
		planB := activePlan(9900)
		subRepo := &fakeSubscriptionRepo{}
		svc := NewTrialService(newFakePlanRepo(planA, planB), subRepo)
		accountID := uuid.New()

		first, err := svc.ActivateTrial(context.Background(), accountID, planA.ID.String())
		require.NoError(t, err)

		_, err = svc.ActivateTrial(context.Background(), accountID, planB.ID.String())
		assert.ErrorIs(t, err, utils.ErrTrialAlreadyUsed)

		// The original grant is untouched.
		require.Len(t, subRepo.subs, 1)
		assert.Equal(t, first.ID, subRepo.subs[0].ID)
		assert.Equal(t, planA.ID, subRepo.subs[0].PlanID)
	})

	t.Run("treats a lost insert race as already used", func(t *testing.T) {
		t.Parallel()
		plan := activePlan(5000)
		accountID := uuid.New()
		// Another request slipped in between the fast-path check and
		// the locked insert.
		other := &db_models.Subscription{AccountID: accountID, PlanID: uuid.New()}
		subRepo := &fakeSubscriptionRepo{countZero: true}
		subRepo.subs = append(subRepo.subs, other)
		svc := NewTrialService(newFakePlanRepo(plan), subRepo)

		_, err := svc.ActivateTrial(context.Background(), accountID, plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrTrialAlreadyUsed)
	})

	t.Run("fails when the plan does not exist", func(t *testing.T) {
		t.Parallel()
		svc := NewTrialService(newFakePlanRepo(), &fakeSubscriptionRepo{})

		_, err := svc.ActivateTrial(context.Background(), uuid.New(), uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("fails when the plan is inactive", func(t *testing.T) {
		t.Parallel()
		plan := activePlan(5000)
		plan.IsActive = false
		svc := NewTrialService(newFakePlanRepo(plan), &fakeSubscriptionRepo{})

		_, err := svc.ActivateTrial(context.Background(), uuid.New(), plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})
}
