package models

import (
	"time"
)

type TransactionCategory string

const (
	CategoryAcquisition TransactionCategory = "acquisition"
	CategoryIncome      TransactionCategory = "income"
	CategoryExpense     TransactionCategory = "expense"
	CategorySale        TransactionCategory = "sale"
)

// TypeCategories is the fixed mapping from fine-grained transaction types to
// their coarse category. A transaction's category must always match this table.
var TypeCategories = map[string]TransactionCategory{
	"purchase_price":     CategoryAcquisition,
	"renovation":         CategoryAcquisition,
	"legal_fees":         CategoryAcquisition,
	"transfer_tax":       CategoryAcquisition,
	"registration_fees":  CategoryAcquisition,
	"rental_income":      CategoryIncome,
	"parking_income":     CategoryIncome,
	"other_income":       CategoryIncome,
	"property_tax":       CategoryExpense,
	"maintenance":        CategoryExpense,
	"insurance":          CategoryExpense,
	"utilities":          CategoryExpense,
	"management_fees":    CategoryExpense,
	"marketing":          CategoryExpense,
	"other_expense":      CategoryExpense,
	"sale_price":         CategorySale,
	"sale_commission":    CategorySale,
	"sale_closing_costs": CategorySale,
}

// CategoryForType returns the category a transaction type belongs to.
func CategoryForType(transactionType string) (TransactionCategory, bool) {
	category, ok := TypeCategories[transactionType]
	return category, ok
}

type Transaction struct {
	ID            string              `db:"id"`
	PropertyID    string              `db:"property_id"`
	Category      TransactionCategory `db:"category"`
	Type          string              `db:"transaction_type"`
	Amount        float64             `db:"amount"`
	Date          time.Time           `db:"date"`
	Description   string              `db:"description"`
	Notes         string              `db:"notes"`
	ReceiptNumber string              `db:"receipt_number"`
	ReceiptURL    string              `db:"receipt_url"`
	RecordedBy    string              `db:"recorded_by"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
