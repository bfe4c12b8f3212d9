package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

type ScheduledPayment struct {
	ID         string        `db:"id"`
	PropertyID string        `db:"property_id"`
	Payee      string        `db:"payee"`
	Amount     float64       `db:"amount"`
	DueDate    time.Time     `db:"due_date"`
	Status     PaymentStatus `db:"status"`
	Reference  string        `db:"reference"`
	PaidAt     *time.Time    `db:"paid_at"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func (ScheduledPayment) TableName() string {
	return "scheduled_payments"
}
