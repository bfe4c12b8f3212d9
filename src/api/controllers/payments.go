package controllers

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/schemas"
	"agency/src/services"
)

type PaymentsControllerI interface {
	SchedulePayment(ctx context.Context, req *schemas.CreatePaymentRequest) (*models.ScheduledPayment, error)
	GetDuePayments(ctx context.Context, within time.Duration) ([]models.ScheduledPayment, error)
	MarkPaid(ctx context.Context, id string) (*models.ScheduledPayment, error)
}

type PaymentsController struct {
	payments services.PaymentServiceI
}

func NewPaymentsController(payments services.PaymentServiceI) *PaymentsController {
	return &PaymentsController{payments: payments}
}

func (c *PaymentsController) SchedulePayment(ctx context.Context, req *schemas.CreatePaymentRequest) (*models.ScheduledPayment, error) {
	return c.payments.SchedulePayment(ctx, req)
}

func (c *PaymentsController) GetDuePayments(ctx context.Context, within time.Duration) ([]models.ScheduledPayment, error) {
	return c.payments.GetDuePayments(ctx, within)
}

func (c *PaymentsController) MarkPaid(ctx context.Context, id string) (*models.ScheduledPayment, error) {
	return c.payments.MarkPaid(ctx, id)
}
