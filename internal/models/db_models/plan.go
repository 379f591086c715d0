package db_models

import (
	"github.com/lib/pq"
)

type BillingInterval string

const (
	IntervalMonthly BillingInterval = "monthly"
	IntervalYearly  BillingInterval = "yearly"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "starter", "pro", "enterprise"
	Name        string
	Description *string
	// Amount is in the smallest currency unit (pesewas for GHS).
	Amount   int64
	Currency string          `gorm:"size:3;default:GHS"`
	Interval BillingInterval `gorm:"default:monthly"`
	Features pq.StringArray  `gorm:"type:text[]"`
	IsActive bool            `gorm:"default:true"`
}
