package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/utils"
	redis_utils "agency/src/utils/redis"
)

const marketCachePrefix = "market:"
const marketCacheTTL = 10 * time.Minute

type MarketServiceI interface {
	PricePerUnit(ctx context.Context, filter repositories.ListingFilter) (*schemas.PricePerUnitStats, error)
	PriceTrends(ctx context.Context, months int, propertyType, city string) ([]schemas.PriceTrendBucket, error)
	Velocity(ctx context.Context, propertyType, city string) (*schemas.MarketVelocity, error)
	PriceDistribution(ctx context.Context, propertyType, city string) ([]schemas.PriceBucket, error)
	TrendDirection(ctx context.Context, months int, propertyType, city string) (*schemas.TrendDirection, error)
	InvalidateCache()
}

// MarketService computes descriptive statistics over the current listings
// snapshot. The computations are pure; results are cached per filter and
// invalidated whenever a listing mutates.
type MarketService struct {
	listings repositories.ListingRepository
	cache    *utils.Cache[any]
	redis    *redis_utils.RedisHandler
	now      func() time.Time
}

func NewMarketService(listings repositories.ListingRepository, redis *redis_utils.RedisHandler) *MarketService {
	return &MarketService{
		listings: listings,
		cache:    utils.NewCache[any](),
		redis:    redis,
		now:      time.Now,
	}
}

func (ms *MarketService) InvalidateCache() {
	ms.cache.Clear()
	if ms.redis != nil {
		_ = ms.redis.DeleteByPrefix(marketCachePrefix)
	}
}

func (ms *MarketService) PricePerUnit(ctx context.Context, filter repositories.ListingFilter) (*schemas.PricePerUnitStats, error) {
	key := fmt.Sprintf("%sppu:%s:%s:%s", marketCachePrefix, filter.PropertyType, filter.City, filter.AreaUnit)
	if cached, ok := ms.cache.Get(key); ok {
		return cached.(*schemas.PricePerUnitStats), nil
	}

	listings, err := ms.listings.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats := ComputePricePerUnit(listings, filter)
	ms.cache.Set(key, stats, marketCacheTTL)
	if ms.redis != nil {
		_ = ms.redis.Set(key, stats, marketCacheTTL)
	}
	return stats, nil
}

func (ms *MarketService) PriceTrends(ctx context.Context, months int, propertyType, city string) ([]schemas.PriceTrendBucket, error) {
	key := fmt.Sprintf("%strends:%d:%s:%s", marketCachePrefix, months, propertyType, city)
	if cached, ok := ms.cache.Get(key); ok {
		return cached.([]schemas.PriceTrendBucket), nil
	}

	listings, err := ms.listings.GetAll(ctx, repositories.ListingFilter{PropertyType: propertyType, City: city})
	if err != nil {
		return nil, err
	}
	trends := ComputePriceTrends(listings, months, ms.now())
	ms.cache.Set(key, trends, marketCacheTTL)
	return trends, nil
}

func (ms *MarketService) Velocity(ctx context.Context, propertyType, city string) (*schemas.MarketVelocity, error) {
	listings, err := ms.listings.GetAll(ctx, repositories.ListingFilter{PropertyType: propertyType, City: city})
	if err != nil {
		return nil, err
	}
	velocity := ComputeMarketVelocity(listings, ms.now())
	velocity.PropertyType = propertyType
	velocity.City = city
	return velocity, nil
}

func (ms *MarketService) PriceDistribution(ctx context.Context, propertyType, city string) ([]schemas.PriceBucket, error) {
	listings, err := ms.listings.GetAll(ctx, repositories.ListingFilter{PropertyType: propertyType, City: city})
	if err != nil {
		return nil, err
	}
	return ComputePriceDistribution(listings), nil
}

func (ms *MarketService) TrendDirection(ctx context.Context, months int, propertyType, city string) (*schemas.TrendDirection, error) {
	trends, err := ms.PriceTrends(ctx, months, propertyType, city)
	if err != nil {
		return nil, err
	}
	return ComputeTrendDirection(trends), nil
}

// ComputePricePerUnit aggregates price-per-area over the filtered snapshot.
func ComputePricePerUnit(listings []models.Listing, filter repositories.ListingFilter) *schemas.PricePerUnitStats {
	var perUnit []float64
	for _, l := range listings {
		if l.Area <= 0 {
			continue
		}
		perUnit = append(perUnit, l.Price/l.Area)
	}
	return &schemas.PricePerUnitStats{
		PropertyType: filter.PropertyType,
		City:         filter.City,
		AreaUnit:     filter.AreaUnit,
		ListingCount: len(perUnit),
		Average:      mean(perUnit),
		Median:       median(perUnit),
	}
}

// ComputePriceTrends buckets listings by creation month over the trailing
// months window, chronologically ordered. Months without listings are
// dropped, matching the distribution behavior.
func ComputePriceTrends(listings []models.Listing, months int, now time.Time) []schemas.PriceTrendBucket {
	if months <= 0 {
		months = 6
	}
	windowStart := utils.MonthStart(now).AddDate(0, -(months - 1), 0)

	byMonth := map[string][]models.Listing{}
	for _, l := range listings {
		if l.CreatedAt.Before(windowStart) {
			continue
		}
		key := utils.MonthKey(l.CreatedAt)
		byMonth[key] = append(byMonth[key], l)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]schemas.PriceTrendBucket, 0, len(keys))
	for _, key := range keys {
		group := byMonth[key]
		prices := make([]float64, 0, len(group))
		var perUnit []float64
		for _, l := range group {
			prices = append(prices, l.Price)
			if l.Area > 0 {
				perUnit = append(perUnit, l.Price/l.Area)
			}
		}
		buckets = append(buckets, schemas.PriceTrendBucket{
			Month:               key,
			ListingCount:        len(group),
			AveragePrice:        mean(prices),
			MedianPrice:         median(prices),
			AveragePricePerUnit: mean(perUnit),
		})
	}
	return buckets
}

// ComputeMarketVelocity reports how fast the filtered market moves: days on
// market for sold listings, what share of inventory has sold, and the monthly
// absorption rate over the trailing twelve months.
func ComputeMarketVelocity(listings []models.Listing, now time.Time) *schemas.MarketVelocity {
	var daysOnMarket []float64
	soldCount := 0
	trailingYearSales := 0
	yearAgo := now.AddDate(0, -12, 0)

	for _, l := range listings {
		if l.Status != models.ListingSold || l.SoldAt == nil {
			continue
		}
		soldCount++
		daysOnMarket = append(daysOnMarket, l.DaysOnMarket(now))
		if l.SoldAt.After(yearAgo) {
			trailingYearSales++
		}
	}

	turnover := 0.0
	if len(listings) > 0 {
		turnover = float64(soldCount) / float64(len(listings)) * 100
	}

	return &schemas.MarketVelocity{
		MeanDaysOnMarket:   mean(daysOnMarket),
		MedianDaysOnMarket: median(daysOnMarket),
		SoldCount:          soldCount,
		TotalCount:         len(listings),
		InventoryTurnover:  turnover,
		AbsorptionRate:     float64(trailingYearSales) / 12,
	}
}

// priceBands are the fixed PKR distribution bands. Non-overlapping: each price
// lands in exactly one band.
var priceBands = []struct {
	label string
	min   float64
	max   float64 // 0 means unbounded
}{
	{"Under 5M", 0, 5_000_000},
	{"5M - 10M", 5_000_000, 10_000_000},
	{"10M - 25M", 10_000_000, 25_000_000},
	{"25M - 50M", 25_000_000, 50_000_000},
	{"50M - 100M", 50_000_000, 100_000_000},
	{"Over 100M", 100_000_000, 0},
}

// ComputePriceDistribution counts listings per fixed price band. Bands with no
// listings are dropped from the result.
func ComputePriceDistribution(listings []models.Listing) []schemas.PriceBucket {
	counts := make([]int, len(priceBands))
	total := 0
	for _, l := range listings {
		for i, band := range priceBands {
			if l.Price >= band.min && (band.max == 0 || l.Price < band.max) {
				counts[i]++
				total++
				break
			}
		}
	}

	var buckets []schemas.PriceBucket
	for i, band := range priceBands {
		if counts[i] == 0 {
			continue
		}
		percentage := float64(counts[i]) / float64(total) * 100
		buckets = append(buckets, schemas.PriceBucket{
			Label:      band.label,
			Min:        band.min,
			Max:        band.max,
			Count:      counts[i],
			Percentage: math.Round(percentage*100) / 100,
		})
	}
	return buckets
}

// ComputeTrendDirection compares the first and last months of the trend series
// and classifies the market at a ±5% threshold, with strength graded at 5% and
// 15% absolute change.
func ComputeTrendDirection(trends []schemas.PriceTrendBucket) *schemas.TrendDirection {
	if len(trends) < 2 {
		return &schemas.TrendDirection{Trend: "stable", Strength: "weak"}
	}

	first := trends[0]
	last := trends[len(trends)-1]

	change := 0.0
	if first.AveragePrice > 0 {
		change = (last.AveragePrice - first.AveragePrice) / first.AveragePrice * 100
	}

	trend := "stable"
	if change > 5 {
		trend = "rising"
	} else if change < -5 {
		trend = "falling"
	}

	strength := "weak"
	switch {
	case math.Abs(change) >= 15:
		strength = "strong"
	case math.Abs(change) >= 5:
		strength = "moderate"
	}

	return &schemas.TrendDirection{
		Trend:            trend,
		Strength:         strength,
		ChangePercentage: math.Round(change*100) / 100,
		FirstMonth:       first.Month,
		LastMonth:        last.Month,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
