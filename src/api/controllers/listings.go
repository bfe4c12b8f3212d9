package controllers

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/services"
	"agency/src/utils"
)

type ListingsControllerI interface {
	CreateListing(ctx context.Context, req *schemas.CreateListingRequest) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	GetListings(ctx context.Context, filter repositories.ListingFilter) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id string, req *schemas.UpdateListingRequest) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

type ListingsController struct {
	listings repositories.ListingRepository
	market   services.MarketServiceI
}

func NewListingsController(listings repositories.ListingRepository, market services.MarketServiceI) *ListingsController {
	return &ListingsController{listings: listings, market: market}
}

func (c *ListingsController) CreateListing(ctx context.Context, req *schemas.CreateListingRequest) (*models.Listing, error) {
	listing, err := req.ToModel()
	if err != nil {
		return nil, utils.UnprocessableEntity("listedAt must be YYYY-MM-DD")
	}
	if err := c.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	c.market.InvalidateCache()
	return listing, nil
}

func (c *ListingsController) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	return c.listings.GetByID(ctx, id)
}

func (c *ListingsController) GetListings(ctx context.Context, filter repositories.ListingFilter) ([]models.Listing, error) {
	return c.listings.GetAll(ctx, filter)
}

func (c *ListingsController) UpdateListing(ctx context.Context, id string, req *schemas.UpdateListingRequest) (*models.Listing, error) {
	var parseErr error
	listing, err := c.listings.Update(ctx, id, func(l *models.Listing) {
		if req.Title != nil {
			l.Title = *req.Title
		}
		if req.Price != nil {
			l.Price = *req.Price
		}
		if req.Location != nil {
			l.Location = *req.Location
		}
		if req.Status != nil {
			l.Status = models.ListingStatus(*req.Status)
		}
		if req.SoldAt != nil {
			soldAt, err := time.Parse(utils.ShortDashDateLayout, *req.SoldAt)
			if err != nil {
				parseErr = utils.UnprocessableEntity("soldAt must be YYYY-MM-DD")
				return
			}
			l.SoldAt = &soldAt
			l.Status = models.ListingSold
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if err != nil {
		return nil, err
	}
	c.market.InvalidateCache()
	return listing, nil
}

func (c *ListingsController) DeleteListing(ctx context.Context, id string) error {
	found, err := c.listings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return utils.NotFound("listing " + id + " not found")
	}
	c.market.InvalidateCache()
	return nil
}
