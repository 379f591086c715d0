package services

import (
	"context"

	"github.com/google/uuid"

	"possuite/internal/integration/paystack"
	"possuite/internal/models/db_models"
	"possuite/internal/repositories"
)

type fakePlanRepo struct {
	plans map[uuid.UUID]*db_models.Plan
	err   error
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	m := make(map[uuid.UUID]*db_models.Plan, len(plans))
	for _, p := range plans {
		m[p.ID] = p
	}
	return &fakePlanRepo{plans: m}
}

func (f *fakePlanRepo) GetPlanById(_ context.Context, planID string) (*db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, nil
	}
	return f.plans[id], nil
}

func (f *fakePlanRepo) GetActivePlans(_ context.Context) ([]db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Plan
	for _, p := range f.plans {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) GetAllPlans(_ context.Context) ([]db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Plan
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

type upsertCall struct {
	accountID uuid.UUID
	planID    uuid.UUID
	start     int64
	end       int64
}

type fakeSubscriptionRepo struct {
	subs        []*db_models.Subscription
	upsertCalls []upsertCall
	countErr    error
	countZero   bool // simulate a stale fast-path read
}

func (f *fakeSubscriptionRepo) CountByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if f.countZero {
		return 0, nil
	}
	var n int64
	for _, s := range f.subs {
		if s.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionRepo) FindByAccountAndPlan(_ context.Context, accountID, planID uuid.UUID) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.AccountID == accountID && s.PlanID == planID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) CreateTrialExclusive(_ context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.AccountID == accountID {
			return nil, repositories.ErrSubscriptionExists
		}
	}
	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    planID,
		Status:    db_models.SubStatusActive,
		StartDate: start,
		EndDate:   end,
	}
	sub.ID = uuid.New()
	f.subs = append(f.subs, sub)
	return sub, nil
}

func (f *fakeSubscriptionRepo) UpsertActive(_ context.Context, accountID, planID uuid.UUID, start, end int64) (*db_models.Subscription, error) {
	f.upsertCalls = append(f.upsertCalls, upsertCall{accountID: accountID, planID: planID, start: start, end: end})
	for _, s := range f.subs {
		if s.AccountID == accountID && s.PlanID == planID {
			s.Status = db_models.SubStatusActive
			s.StartDate = start
			s.EndDate = end
			return s, nil
		}
	}
	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    planID,
		Status:    db_models.SubStatusActive,
		StartDate: start,
		EndDate:   end,
	}
	sub.ID = uuid.New()
	f.subs = append(f.subs, sub)
	return sub, nil
}

type fakePaymentRepo struct {
	payments  map[string]*db_models.Payment
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*db_models.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *db_models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.Reference] = payment
	return nil
}

func (f *fakePaymentRepo) MarkFailedByReference(_ context.Context, reference string) error {
	if p, ok := f.payments[reference]; ok {
		p.Status = db_models.PaymentStatusFailed
	}
	return nil
}

func (f *fakePaymentRepo) MarkSucceededByReference(_ context.Context, reference string, paidAt int64) error {
	if p, ok := f.payments[reference]; ok {
		p.Status = db_models.PaymentStatusSuccess
		p.PaidAt = &paidAt
	}
	return nil
}

type fakeGateway struct {
	initData    *paystack.InitializeData
	initErr     error
	initReqs    []paystack.InitializeRequest
	verifyData  *paystack.VerifyData
	verifyErr   error
	verifyCalls []string
}

func (f *fakeGateway) InitializeTransaction(_ context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error) {
	f.initReqs = append(f.initReqs, req)
	if f.initErr != nil {
		return nil, f.initErr
	}
	return f.initData, nil
}

func (f *fakeGateway) VerifyTransaction(_ context.Context, reference string) (*paystack.VerifyData, error) {
	f.verifyCalls = append(f.verifyCalls, reference)
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyData, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailService struct {
	sent []sentMail
	err  error
}

func (f *fakeMailService) SendMailToNotifyUser(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeAccountRepo struct {
	accounts []*db_models.Account
	err      error
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetAllAccounts(_ context.Context) ([]db_models.Account, error) {
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

type fakeAdminRepo struct {
	rows     []repositories.SubscriptionRow
	payments []db_models.Payment
}

func (f *fakeAdminRepo) ListSubscriptionsJoined(_ context.Context) ([]repositories.SubscriptionRow, error) {
	return f.rows, nil
}

func (f *fakeAdminRepo) ListPayments(_ context.Context) ([]db_models.Payment, error) {
	return f.payments, nil
}
