package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`

	// Reference is the gateway transaction reference; the gateway is the
	// source of truth for the transaction, this row is the audit trail.
	Reference string        `gorm:"uniqueIndex"`
	Amount    int64         // smallest currency unit
	Currency  string        `gorm:"size:3"`
	Status    PaymentStatus `gorm:"index"`
	PaidAt    *int64

	// Raw gateway payloads, plan linkage carried via gateway metadata.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
