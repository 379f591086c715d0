package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"possuite/internal/models/db_models"
	"possuite/internal/models/response_models"
	"possuite/internal/repositories"
	"possuite/pkg/utils"
)

// AdminService holds the privileged overrides. Route-level role gating
// keeps non-admin callers out before any of these run.
type AdminService interface {
	GrantSubscription(ctx context.Context, userID, planID string, durationMonths int) (*response_models.SubscriptionResponse, string, error)
	SendNotification(ctx context.Context, recipientEmail, subject, message string) error
	AggregateData(ctx context.Context) (*response_models.AdminDataResponse, error)
}

type adminService struct {
	planRepo    repositories.IPlanRepository
	subRepo     repositories.SubscriptionRepository
	accountRepo repositories.AccountRepository
	adminRepo   repositories.AdminRepository
	mailService IMailService
}

func NewAdminService(
	planRepo repositories.IPlanRepository,
	subRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	adminRepo repositories.AdminRepository,
	mailService IMailService,
) AdminService {
	return &adminService{
		planRepo:    planRepo,
		subRepo:     subRepo,
		accountRepo: accountRepo,
		adminRepo:   adminRepo,
		mailService: mailService,
	}
}

func (a *adminService) GrantSubscription(ctx context.Context, userID, planID string, durationMonths int) (*response_models.SubscriptionResponse, string, error) {

	accountUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, "", utils.ErrInvalidInput
	}
	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, "", utils.ErrInvalidInput
	}
	if durationMonths <= 0 {
		durationMonths = 1
	}

	plan, err := a.planRepo.GetPlanById(ctx, planUUID.String())
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, "", utils.ErrPlanNotFound
	}

	start := utils.NowUnixSeconds()
	end := utils.AddMonths(start, durationMonths)

	// The grant lands on the user's (account, plan) row, updated in
	// place when present and inserted otherwise. Keying on the same
	// composite index the verifier uses keeps re-grants from colliding
	// with rows earlier payments left behind; no eligibility rule
	// applies to the admin path.
	sub, err := a.subRepo.UpsertActive(ctx, accountUUID, plan.ID, start, end)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	log.Printf("Admin granted %s subscription to account %s for %d month(s)", plan.Name, accountUUID, durationMonths)

	message := "Granted " + plan.Name + " subscription"

	return &response_models.SubscriptionResponse{
		ID:        sub.ID,
		UserID:    sub.AccountID,
		PlanID:    sub.PlanID,
		Status:    string(sub.Status),
		StartDate: utils.FormatRFC3339(sub.StartDate),
		EndDate:   utils.FormatRFC3339(sub.EndDate),
	}, message, nil
}

func (a *adminService) SendNotification(ctx context.Context, recipientEmail, subject, message string) error {

	if recipientEmail == "" || subject == "" || message == "" {
		return utils.ErrInvalidInput
	}
	if a.mailService == nil {
		return utils.ErrMailUnavailable
	}

	if err := a.mailService.SendMailToNotifyUser(recipientEmail, subject, message); err != nil {
		log.Printf("Notification to %s failed: %v", recipientEmail, err)
		return utils.ErrMailUnavailable
	}

	return nil
}

func (a *adminService) AggregateData(ctx context.Context) (*response_models.AdminDataResponse, error) {

	now := utils.NowUnixSeconds()

	subRows, err := a.adminRepo.ListSubscriptionsJoined(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	payments, err := a.adminRepo.ListPayments(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	plans, err := a.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	accounts, err := a.accountRepo.GetAllAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.AdminDataResponse{
		Subscriptions: make([]response_models.AdminSubscription, 0, len(subRows)),
		Payments:      make([]response_models.AdminPayment, 0, len(payments)),
		Plans:         make([]response_models.PlanResponse, 0, len(plans)),
		Users:         make([]response_models.AdminUser, 0, len(accounts)),
	}

	var activeSubscriptions int64
	for _, row := range subRows {
		sub := db_models.Subscription{
			Status:  db_models.SubscriptionStatus(row.Status),
			EndDate: row.EndDate,
		}
		effective := sub.EffectiveStatus(now)
		if effective == db_models.SubStatusActive {
			activeSubscriptions++
		}
		out.Subscriptions = append(out.Subscriptions, response_models.AdminSubscription{
			ID:            uuid.MustParse(row.ID),
			UserID:        uuid.MustParse(row.AccountID),
			UserEmail:     row.AccountEmail,
			UserCreatedAt: utils.FormatRFC3339(row.AccountCreatedAt),
			PlanID:        uuid.MustParse(row.PlanID),
			PlanName:      row.PlanName,
			PlanAmount:    row.PlanAmount,
			Status:        string(effective),
			StartDate:     utils.FormatRFC3339(row.StartDate),
			EndDate:       utils.FormatRFC3339(row.EndDate),
			CreatedAt:     utils.FormatRFC3339(row.CreatedAt),
		})
	}

	var totalRevenue, pendingPayments int64
	for i := range payments {
		pay := &payments[i]
		switch pay.Status {
		case db_models.PaymentStatusSuccess:
			totalRevenue += pay.Amount
		case db_models.PaymentStatusPending:
			pendingPayments++
		}
		var paidAt string
		if pay.PaidAt != nil {
			paidAt = utils.FormatRFC3339(*pay.PaidAt)
		}
		out.Payments = append(out.Payments, response_models.AdminPayment{
			ID:        pay.ID,
			UserID:    pay.AccountID,
			Reference: pay.Reference,
			Amount:    pay.Amount,
			Currency:  pay.Currency,
			Status:    string(pay.Status),
			PaidAt:    paidAt,
			CreatedAt: utils.FormatRFC3339(pay.CreatedAt),
		})
	}

	for i := range plans {
		out.Plans = append(out.Plans, toPlanResponse(&plans[i]))
	}

	for i := range accounts {
		out.Users = append(out.Users, response_models.AdminUser{
			ID:        accounts[i].ID,
			Email:     accounts[i].Email,
			CreatedAt: utils.FormatRFC3339(accounts[i].CreatedAt),
		})
	}

	out.Metrics = response_models.AdminMetrics{
		TotalUsers:          int64(len(accounts)),
		ActiveSubscriptions: activeSubscriptions,
		TotalRevenue:        totalRevenue,
		PendingPayments:     pendingPayments,
	}

	return out, nil
}
