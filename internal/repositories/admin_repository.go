package repositories

import (
	"context"

	"gorm.io/gorm"

	"possuite/internal/models/db_models"
)

type AdminRepository interface {
	ListSubscriptionsJoined(ctx context.Context) ([]SubscriptionRow, error)
	ListPayments(ctx context.Context) ([]db_models.Payment, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// SubscriptionRow carries a subscription joined with its plan and the
// owning account's identity for the admin dashboard.
type SubscriptionRow struct {
	ID               string `gorm:"column:id"`
	AccountID        string `gorm:"column:account_id"`
	AccountEmail     string `gorm:"column:account_email"`
	AccountCreatedAt int64  `gorm:"column:account_created_at"`
	PlanID           string `gorm:"column:plan_id"`
	PlanName         string `gorm:"column:plan_name"`
	PlanAmount       int64  `gorm:"column:plan_amount"`
	Status           string `gorm:"column:status"`
	StartDate        int64  `gorm:"column:start_date"`
	EndDate          int64  `gorm:"column:end_date"`
	CreatedAt        int64  `gorm:"column:created_at"`
}

func (r *adminRepository) ListSubscriptionsJoined(ctx context.Context) ([]SubscriptionRow, error) {
	var rows []SubscriptionRow
	err := r.db.WithContext(ctx).
		Table("subscriptions s").
		Select(`s.id, s.account_id, a.email AS account_email, a.created_at AS account_created_at,
			s.plan_id, p.name AS plan_name, p.amount AS plan_amount,
			s.status, s.start_date, s.end_date, s.created_at`).
		Joins("JOIN accounts a ON a.id = s.account_id").
		Joins("JOIN plans p ON p.id = s.plan_id").
		Where("s.deleted_at IS NULL").
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *adminRepository) ListPayments(ctx context.Context) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
