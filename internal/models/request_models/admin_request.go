package request_models

type GrantSubscriptionRequest struct {
	UserID         string `json:"userId"`
	PlanID         string `json:"planId"`
	DurationMonths int    `json:"durationMonths"`
}

type SendNotificationRequest struct {
	RecipientEmail string `json:"recipientEmail"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
}
