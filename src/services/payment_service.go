package services

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/notify"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/utils"

	"github.com/sirupsen/logrus"
)

type PaymentServiceI interface {
	SchedulePayment(ctx context.Context, req *schemas.CreatePaymentRequest) (*models.ScheduledPayment, error)
	GetDuePayments(ctx context.Context, within time.Duration) ([]models.ScheduledPayment, error)
	MarkPaid(ctx context.Context, id string) (*models.ScheduledPayment, error)
	RunOverdueSweep(ctx context.Context) (int, error)
}

// PaymentService manages scheduled payments and the overdue sweep that flips
// late payments and dispatches webhook reminders.
type PaymentService struct {
	payments     repositories.PaymentRepository
	settings     repositories.SettingsRepository
	dispatcher   *notify.WebhookDispatcher
	operatorUser string
	logger       *logrus.Logger
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	settings repositories.SettingsRepository,
	dispatcher *notify.WebhookDispatcher,
	operatorUser string,
	logger *logrus.Logger,
) *PaymentService {
	return &PaymentService{
		payments:     payments,
		settings:     settings,
		dispatcher:   dispatcher,
		operatorUser: operatorUser,
		logger:       logger,
	}
}

func (ps *PaymentService) SchedulePayment(ctx context.Context, req *schemas.CreatePaymentRequest) (*models.ScheduledPayment, error) {
	dueDate, err := time.Parse(utils.ShortDashDateLayout, req.DueDate)
	if err != nil {
		return nil, utils.UnprocessableEntity("dueDate must be YYYY-MM-DD")
	}

	payment := &models.ScheduledPayment{
		PropertyID: req.PropertyID,
		Payee:      req.Payee,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Reference:  req.Reference,
	}
	if err := ps.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (ps *PaymentService) GetDuePayments(ctx context.Context, within time.Duration) ([]models.ScheduledPayment, error) {
	return ps.payments.GetDueBefore(ctx, time.Now().UTC().Add(within))
}

func (ps *PaymentService) MarkPaid(ctx context.Context, id string) (*models.ScheduledPayment, error) {
	return ps.payments.MarkPaid(ctx, id, time.Now().UTC())
}

// RunOverdueSweep flips pending payments past their due date to overdue and
// sends one reminder per flipped payment. Reminder failures are logged, not
// propagated: the status change has already committed.
func (ps *PaymentService) RunOverdueSweep(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	flipped, err := ps.payments.MarkOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(flipped) == 0 {
		return 0, nil
	}

	settings, err := ps.settings.Get(ctx, ps.operatorUser)
	if err != nil {
		ps.logger.WithError(err).Warn("could not load operator settings for payment reminders")
		return len(flipped), nil
	}
	if settings.WebhookURL == "" || !settings.NotifyPaymentsDue {
		return len(flipped), nil
	}

	for _, payment := range flipped {
		reminder := schemas.PaymentReminder{
			PaymentID:  payment.ID,
			PropertyID: payment.PropertyID,
			Payee:      payment.Payee,
			Amount:     payment.Amount,
			DueDate:    payment.DueDate.Format(utils.ShortDashDateLayout),
			DaysLate:   utils.DaysBetween(payment.DueDate, now),
		}
		if err := ps.dispatcher.Send(ctx, settings.WebhookURL, reminder); err != nil {
			ps.logger.WithError(err).WithField("payment", payment.ID).Warn("payment reminder delivery failed")
		}
	}
	return len(flipped), nil
}
