package controllers

import (
	"context"

	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/services"
)

type MarketControllerI interface {
	PricePerUnit(ctx context.Context, propertyType, city, areaUnit string) (*schemas.PricePerUnitStats, error)
	PriceTrends(ctx context.Context, months int, propertyType, city string) ([]schemas.PriceTrendBucket, error)
	Velocity(ctx context.Context, propertyType, city string) (*schemas.MarketVelocity, error)
	PriceDistribution(ctx context.Context, propertyType, city string) ([]schemas.PriceBucket, error)
	TrendDirection(ctx context.Context, months int, propertyType, city string) (*schemas.TrendDirection, error)
}

type MarketController struct {
	market services.MarketServiceI
}

func NewMarketController(market services.MarketServiceI) *MarketController {
	return &MarketController{market: market}
}

func (c *MarketController) PricePerUnit(ctx context.Context, propertyType, city, areaUnit string) (*schemas.PricePerUnitStats, error) {
	return c.market.PricePerUnit(ctx, repositories.ListingFilter{
		PropertyType: propertyType,
		City:         city,
		AreaUnit:     areaUnit,
	})
}

func (c *MarketController) PriceTrends(ctx context.Context, months int, propertyType, city string) ([]schemas.PriceTrendBucket, error) {
	return c.market.PriceTrends(ctx, months, propertyType, city)
}

func (c *MarketController) Velocity(ctx context.Context, propertyType, city string) (*schemas.MarketVelocity, error) {
	return c.market.Velocity(ctx, propertyType, city)
}

func (c *MarketController) PriceDistribution(ctx context.Context, propertyType, city string) ([]schemas.PriceBucket, error) {
	return c.market.PriceDistribution(ctx, propertyType, city)
}

func (c *MarketController) TrendDirection(ctx context.Context, months int, propertyType, city string) (*schemas.TrendDirection, error) {
	return c.market.TrendDirection(ctx, months, propertyType, city)
}
