package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusTrial    SubscriptionStatus = "trial"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusInactive SubscriptionStatus = "inactive"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;uniqueIndex:idx_subscriptions_account_plan"`
	PlanID    uuid.UUID `gorm:"uniqueIndex:idx_subscriptions_account_plan"`

	Status SubscriptionStatus `gorm:"index"`
	// Unix seconds. EndDate >= StartDate whenever both are set.
	StartDate int64 `gorm:"not null"`
	EndDate   int64 `gorm:"not null"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}

// EffectiveStatus derives expiry on read: the stored status is never
// flipped to expired by a background job, so every read path goes
// through here instead of trusting the column.
func (s *Subscription) EffectiveStatus(now int64) SubscriptionStatus {
	if (s.Status == SubStatusActive || s.Status == SubStatusTrial) && s.EndDate > 0 && s.EndDate < now {
		return SubStatusExpired
	}
	return s.Status
}

func (s *Subscription) IsActiveAt(now int64) bool {
	return s.EffectiveStatus(now) == SubStatusActive
}
