package request_models

type ActivateTrialRequest struct {
	PlanID string `json:"planId" binding:"required"`
}
