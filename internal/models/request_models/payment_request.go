package request_models

type InitializeCheckoutRequest struct {
	PlanID string `json:"planId" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
}
