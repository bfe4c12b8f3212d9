package schemas

import (
	"time"

	"agency/src/models"
)

type CreateListingRequest struct {
	Title        string  `json:"title"`
	PropertyType string  `json:"propertyType"`
	City         string  `json:"city"`
	Location     string  `json:"location,omitempty"`
	Price        float64 `json:"price"`
	Area         float64 `json:"area"`
	AreaUnit     string  `json:"areaUnit"`
	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"`
	ListedAt     string  `json:"listedAt,omitempty"`
}

func (r *CreateListingRequest) ToModel() (*models.Listing, error) {
	listedAt := time.Now().UTC()
	if r.ListedAt != "" {
		parsed, err := time.Parse("2006-01-02", r.ListedAt)
		if err != nil {
			return nil, err
		}
		listedAt = parsed
	}
	return &models.Listing{
		Title:        r.Title,
		PropertyType: r.PropertyType,
		City:         r.City,
		Location:     r.Location,
		Price:        r.Price,
		Area:         r.Area,
		AreaUnit:     r.AreaUnit,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Status:       models.ListingActive,
		ListedAt:     listedAt,
	}, nil
}

type UpdateListingRequest struct {
	Title    *string  `json:"title,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Status   *string  `json:"status,omitempty"`
	SoldAt   *string  `json:"soldAt,omitempty"`
	Location *string  `json:"location,omitempty"`
}
