package schemas

type CreatePaymentRequest struct {
	PropertyID string  `json:"propertyId,omitempty"`
	Payee      string  `json:"payee"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
	Reference  string  `json:"reference,omitempty"`
}

// PaymentReminder is the webhook payload sent for overdue payments.
type PaymentReminder struct {
	PaymentID  string  `json:"paymentId"`
	PropertyID string  `json:"propertyId,omitempty"`
	Payee      string  `json:"payee"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
	DaysLate   int     `json:"daysLate"`
}
