package models

import (
	"time"
)

type Investor struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (Investor) TableName() string {
	return "investors"
}

// InvestorStake is an investor's percentage share in a property.
type InvestorStake struct {
	ID              string    `db:"id"`
	InvestorID      string    `db:"investor_id"`
	PropertyID      string    `db:"property_id"`
	SharePercentage float64   `db:"share_percentage"`
	PurchasePrice   float64   `db:"purchase_price"`
	AcquisitionDate time.Time `db:"acquisition_date"`
	CreatedAt       time.Time `db:"created_at"`
}

func (InvestorStake) TableName() string {
	return "investor_stakes"
}
