package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"possuite/internal/integration/paystack"
	"possuite/internal/models/db_models"
	"possuite/internal/models/response_models"
	"possuite/internal/repositories"
	"possuite/pkg/utils"
)

// References never reach the gateway unless they look like one of its
// own tokens.
var referencePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type CheckoutConfig struct {
	Currency   string // ISO 4217, e.g. "GHS"
	AppBaseURL string // the front-end origin the gateway redirects back to
}

type PaymentService interface {
	InitializeCheckout(ctx context.Context, accountID uuid.UUID, email, planID string) (*response_models.CheckoutResponse, error)
	VerifyPayment(ctx context.Context, accountID uuid.UUID, reference string) error
}

type paymentService struct {
	gateway     paystack.API
	planRepo    repositories.IPlanRepository
	paymentRepo repositories.PaymentRepository
	subRepo     repositories.SubscriptionRepository
	cfg         CheckoutConfig
}

func NewPaymentService(
	gateway paystack.API,
	planRepo repositories.IPlanRepository,
	paymentRepo repositories.PaymentRepository,
	subRepo repositories.SubscriptionRepository,
	cfg CheckoutConfig,
) PaymentService {
	return &paymentService{
		gateway:     gateway,
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		cfg:         cfg,
	}
}

func (p *paymentService) InitializeCheckout(ctx context.Context, accountID uuid.UUID, email, planID string) (*response_models.CheckoutResponse, error) {

	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := p.planRepo.GetPlanById(ctx, planUUID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	// Amount is already in the smallest currency unit; passed through
	// unmodified. Metadata lets the verifier recover the plan from the
	// gateway instead of trusting the client again.
	init, err := p.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       email,
		Amount:      plan.Amount,
		Currency:    p.cfg.Currency,
		CallbackURL: strings.TrimRight(p.cfg.AppBaseURL, "/") + "/pricing?verify=true",
		Metadata: paystack.TransactionMetadata{
			UserID: accountID.String(),
			PlanID: plan.ID.String(),
		},
	})
	if err != nil {
		log.Printf("Paystack initialize failed for plan %s: %v", plan.Code, err)
		return nil, utils.ErrGateway
	}

	// Best-effort bookkeeping: the gateway holds the authoritative
	// transaction, so a failed insert must not fail the checkout.
	meta, _ := json.Marshal(map[string]string{"plan_id": plan.ID.String()})
	payment := &db_models.Payment{
		AccountID: accountID,
		Reference: init.Reference,
		Amount:    plan.Amount,
		Currency:  p.cfg.Currency,
		Status:    db_models.PaymentStatusPending,
		Metadata:  meta,
	}
	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		log.Printf("Payment record error for reference %s: %v", init.Reference, err)
	}

	return &response_models.CheckoutResponse{
		AuthorizationURL: init.AuthorizationURL,
		Reference:        init.Reference,
	}, nil
}

func (p *paymentService) VerifyPayment(ctx context.Context, accountID uuid.UUID, reference string) error {

	if !referencePattern.MatchString(reference) {
		return utils.ErrInvalidInput
	}

	// A transport failure says nothing about the transaction outcome;
	// the local row keeps its state so a settled payment is never
	// recorded failed off a network blip.
	data, err := p.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		log.Printf("Paystack verify unreachable for reference %s: %v", reference, err)
		return utils.ErrGateway
	}

	if data.Status != "success" {
		if markErr := p.paymentRepo.MarkFailedByReference(ctx, reference); markErr != nil {
			log.Printf("Failed to mark payment %s failed: %v", reference, markErr)
		}
		return utils.ErrVerificationFailed
	}

	now := utils.NowUnixSeconds()
	if err := p.paymentRepo.MarkSucceededByReference(ctx, reference, now); err != nil {
		log.Printf("Failed to mark payment %s succeeded: %v", reference, err)
	}

	// The plan comes from the metadata stored at initialization; it is
	// immutable at the gateway once submitted.
	planUUID, err := uuid.Parse(data.Metadata.PlanID)
	if err != nil {
		log.Printf("Verified transaction %s carries no usable plan metadata", reference)
		return utils.ErrVerificationFailed
	}

	// Re-verifying a settled reference lands on the update branch of
	// the upsert and re-applies the same window.
	if _, err := p.subRepo.UpsertActive(ctx, accountID, planUUID, now, utils.AddMonths(now, 1)); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
