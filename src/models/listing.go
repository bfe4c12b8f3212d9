package models

import (
	"time"
)

type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingSold     ListingStatus = "sold"
	ListingDelisted ListingStatus = "delisted"
)

type Listing struct {
	ID           string        `db:"id"`
	Title        string        `db:"title"`
	PropertyType string        `db:"property_type"`
	City         string        `db:"city"`
	Location     string        `db:"location"`
	Price        float64       `db:"price"`
	Area         float64       `db:"area"`
	AreaUnit     string        `db:"area_unit"`
	Bedrooms     int           `db:"bedrooms"`
	Bathrooms    int           `db:"bathrooms"`
	Status       ListingStatus `db:"status"`
	ListedAt     time.Time     `db:"listed_at"`
	SoldAt       *time.Time    `db:"sold_at"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// DaysOnMarket returns the listed-to-sold span in days, or the span up to now
// for listings that have not sold yet.
func (l *Listing) DaysOnMarket(now time.Time) float64 {
	end := now
	if l.SoldAt != nil {
		end = *l.SoldAt
	}
	return end.Sub(l.ListedAt).Hours() / 24
}
