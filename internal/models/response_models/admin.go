package response_models

import "github.com/google/uuid"

type AdminSubscription struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	UserEmail        string    `json:"user_email"`
	UserCreatedAt    string    `json:"user_created_at"`
	PlanID           uuid.UUID `json:"plan_id"`
	PlanName         string    `json:"plan_name"`
	PlanAmount       int64     `json:"plan_amount"`
	Status           string    `json:"status"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	CreatedAt        string    `json:"created_at"`
}

type AdminPayment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Reference string    `json:"reference"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	PaidAt    string    `json:"paid_at,omitempty"`
	CreatedAt string    `json:"created_at"`
}

type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}

type AdminMetrics struct {
	TotalUsers          int64 `json:"totalUsers"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	TotalRevenue        int64 `json:"totalRevenue"`
	PendingPayments     int64 `json:"pendingPayments"`
}

type AdminDataResponse struct {
	Subscriptions []AdminSubscription `json:"subscriptions"`
	Payments      []AdminPayment      `json:"payments"`
	Plans         []PlanResponse      `json:"plans"`
	Users         []AdminUser         `json:"users"`
	Metrics       AdminMetrics        `json:"metrics"`
}
