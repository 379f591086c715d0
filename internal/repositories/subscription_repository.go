package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"possuite/internal/models/db_models"
)

type SubscriptionRepository interface {
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	FindByAccountAndPlan(ctx context.Context, accountID, planID uuid.UUID) (*db_models.Subscription, error)
	CreateTrialExclusive(ctx context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error)
	UpsertActive(ctx context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (r *subscriptionRepository) FindByAccountAndPlan(ctx context.Context, accountID, planID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND plan_id = ?", accountID, planID).
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

// CreateTrialExclusive inserts the one-shot trial subscription. The
// eligibility check and the insert run in one transaction with the
// account row locked, so two concurrent first-trial calls serialize
// instead of both passing the check.
func (r *subscriptionRepository) CreateTrialExclusive(ctx context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error) {
	var created *db_models.Subscription

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account db_models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&db_models.Subscription{}).
			Where("account_id = ?", accountID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrSubscriptionExists
		}

		sub := &db_models.Subscription{
			AccountID: accountID,
			PlanID:    planID,
			Status:    db_models.SubStatusActive,
			StartDate: start,
			EndDate:   end,
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		created = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpsertActive activates or renews the (account, plan) subscription in
// one statement. The composite unique index makes the insert-if-absent
// atomic, so the constraint is the arbiter instead of a prior read.
func (r *subscriptionRepository) UpsertActive(ctx context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error) {
	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    planID,
		Status:    db_models.SubStatusActive,
		StartDate: start,
		EndDate:   end,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}, {Name: "plan_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     db_models.SubStatusActive,
				"start_date": start,
				"end_date":   end,
				"updated_at": time.Now().Unix(),
			}),
		}).
		Create(sub).Error
	if err != nil {
		return nil, err
	}

	return r.FindByAccountAndPlan(ctx, accountID, planID)
}
