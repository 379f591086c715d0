package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Interval    string    `json:"interval"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"is_active"`
}
