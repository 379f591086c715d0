package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"possuite/pkg/utils"
)

func TestPlanService_GetActivePlans(t *testing.T) {
	t.Parallel()

	active := activePlan(5000)
	retired := activePlan(9900)
	retired.IsActive = false

	svc := NewPlanService(newFakePlanRepo(active, retired))
	plans, err := svc.GetActivePlans(context.Background())
	require.NoError(t, err)

	require.Len(t, plans, 1)
	assert.Equal(t, active.ID, plans[0].ID)
	assert.Equal(t, int64(5000), plans[0].Amount)
}

func TestPlanService_GetPlanById(t *testing.T) {
	t.Parallel()

	plan := activePlan(5000)
	svc := NewPlanService(newFakePlanRepo(plan))

	got, err := svc.GetPlanById(context.Background(), plan.ID.String())
	require.NoError(t, err)
	assert.Equal(t, plan.Code, got.Code)

	_, err = svc.GetPlanById(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}
