package repositories

import (
	"context"

	"gorm.io/gorm"

	"possuite/internal/models/db_models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *db_models.Payment) error
	MarkFailedByReference(ctx context.Context, reference string) error
	MarkSucceededByReference(ctx context.Context, reference string, paidAt int64) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// MarkFailedByReference is a no-op when no payment row carries the
// reference: the gateway is authoritative, the local row is bookkeeping.
func (r *paymentRepository) MarkFailedByReference(ctx context.Context, reference string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("reference = ?", reference).
		Update("status", db_models.PaymentStatusFailed).Error
}

func (r *paymentRepository) MarkSucceededByReference(ctx context.Context, reference string, paidAt int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("reference = ?", reference).
		Updates(map[string]interface{}{
			"status":  db_models.PaymentStatusSuccess,
			"paid_at": paidAt,
		}).Error
}
