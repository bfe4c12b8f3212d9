package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency/src/models"
	"agency/src/notify"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments []models.ScheduledPayment
	seq      int
}

func (f *fakePaymentRepo) Create(_ context.Context, p *models.ScheduledPayment) error {
	f.seq++
	p.ID = fmt.Sprintf("pay-%d", f.seq)
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id string) (*models.ScheduledPayment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			return &f.payments[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePaymentRepo) GetDueBefore(_ context.Context, cutoff time.Time) ([]models.ScheduledPayment, error) {
	var out []models.ScheduledPayment
	for _, p := range f.payments {
		if p.Status == models.PaymentPending && p.DueDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetByStatus(_ context.Context, status models.PaymentStatus) ([]models.ScheduledPayment, error) {
	var out []models.ScheduledPayment
	for _, p := range f.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) (*models.ScheduledPayment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			f.payments[i].Status = models.PaymentPaid
			f.payments[i].PaidAt = &paidAt
			return &f.payments[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePaymentRepo) MarkOverdue(_ context.Context, cutoff time.Time) ([]models.ScheduledPayment, error) {
	var flipped []models.ScheduledPayment
	for i := range f.payments {
		if f.payments[i].Status == models.PaymentPending && f.payments[i].DueDate.Before(cutoff) {
			f.payments[i].Status = models.PaymentOverdue
			flipped = append(flipped, f.payments[i])
		}
	}
	return flipped, nil
}

type fakeSettingsRepo struct {
	settings map[string]*models.UserSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context, userID string) (*models.UserSettings, error) {
	if s, ok := f.settings[userID]; ok {
		return s, nil
	}
	return &models.UserSettings{UserID: userID, Currency: "PKR"}, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *models.UserSettings) error {
	f.settings[settings.UserID] = settings
	return nil
}

func newPaymentFixture(webhookURL string) (*services.PaymentService, *fakePaymentRepo) {
	logger := logrus.New()
	repo := &fakePaymentRepo{}
	settings := &fakeSettingsRepo{settings: map[string]*models.UserSettings{
		"operations": {
			UserID:            "operations",
			Currency:          "PKR",
			NotifyPaymentsDue: true,
			WebhookURL:        webhookURL,
		},
	}}
	svc := services.NewPaymentService(repo, settings, notify.NewWebhookDispatcher(logger), "operations", logger)
	return svc, repo
}

func TestSchedulePayment(t *testing.T) {
	svc, _ := newPaymentFixture("")

	payment, err := svc.SchedulePayment(context.Background(), &schemas.CreatePaymentRequest{
		PropertyID: "prop-1",
		Payee:      "LESCO",
		Amount:     15_000,
		DueDate:    "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, "2026-09-15", payment.DueDate.Format("2006-01-02"))

	t.Run("malformed due date", func(t *testing.T) {
		_, err := svc.SchedulePayment(context.Background(), &schemas.CreatePaymentRequest{
			Payee:   "LESCO",
			Amount:  100,
			DueDate: "15/09/2026",
		})
		requireHTTPStatus(t, err, 422)
	})
}

func TestRunOverdueSweepSendsReminders(t *testing.T) {
	var received []schemas.PaymentReminder
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reminder schemas.PaymentReminder
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reminder))
		received = append(received, reminder)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc, repo := newPaymentFixture(server.URL)
	ctx := context.Background()

	_, err := svc.SchedulePayment(ctx, &schemas.CreatePaymentRequest{
		PropertyID: "prop-1", Payee: "LESCO", Amount: 15_000, DueDate: "2020-01-01",
	})
	require.NoError(t, err)
	_, err = svc.SchedulePayment(ctx, &schemas.CreatePaymentRequest{
		Payee: "Future bill", Amount: 1_000, DueDate: "2099-01-01",
	})
	require.NoError(t, err)

	flipped, err := svc.RunOverdueSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	require.Len(t, received, 1)
	assert.Equal(t, "LESCO", received[0].Payee)
	assert.Equal(t, "2020-01-01", received[0].DueDate)
	assert.Greater(t, received[0].DaysLate, 0)

	overdue, err := repo.GetByStatus(ctx, models.PaymentOverdue)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "LESCO", overdue[0].Payee)
}

func TestRunOverdueSweepWithoutWebhook(t *testing.T) {
	svc, _ := newPaymentFixture("")
	ctx := context.Background()

	_, err := svc.SchedulePayment(ctx, &schemas.CreatePaymentRequest{
		Payee: "PTCL", Amount: 3_000, DueDate: "2020-01-01",
	})
	require.NoError(t, err)

	// No webhook configured: the sweep still flips statuses.
	flipped, err := svc.RunOverdueSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)
}
