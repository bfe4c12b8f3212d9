package services_test

import (
	"context"
	"testing"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListingRepo struct {
	listings []models.Listing
	getCalls int
}

func (f *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	f.listings = append(f.listings, *l)
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			return &f.listings[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeListingRepo) GetAll(_ context.Context, filter repositories.ListingFilter) ([]models.Listing, error) {
	f.getCalls++
	var out []models.Listing
	for _, l := range f.listings {
		if filter.PropertyType != "" && l.PropertyType != filter.PropertyType {
			continue
		}
		if filter.City != "" && l.City != filter.City {
			continue
		}
		if filter.AreaUnit != "" && l.AreaUnit != filter.AreaUnit {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingRepo) Update(_ context.Context, id string, merge func(*models.Listing)) (*models.Listing, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			merge(&f.listings[i])
			return &f.listings[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func listingPriced(price float64) models.Listing {
	return models.Listing{Price: price, Area: 1, AreaUnit: "marla", Status: models.ListingActive}
}

func TestComputePricePerUnit(t *testing.T) {
	listings := []models.Listing{
		{Price: 1_000_000, Area: 10},
		{Price: 3_000_000, Area: 10},
		{Price: 2_000_000, Area: 0}, // zero area is excluded
	}

	stats := services.ComputePricePerUnit(listings, repositories.ListingFilter{City: "Lahore"})

	assert.Equal(t, 2, stats.ListingCount)
	assert.Equal(t, 200_000.0, stats.Average)
	assert.Equal(t, 200_000.0, stats.Median)
	assert.Equal(t, "Lahore", stats.City)
}

func TestComputePriceDistribution(t *testing.T) {
	listings := []models.Listing{
		listingPriced(1_000_000),
		listingPriced(6_000_000),
		listingPriced(15_000_000),
		listingPriced(25_000_000),
		listingPriced(60_000_000),
		listingPriced(120_000_000),
	}

	buckets := services.ComputePriceDistribution(listings)

	require.Len(t, buckets, 6)
	total := 0
	percentage := 0.0
	for _, b := range buckets {
		assert.Equal(t, 1, b.Count)
		total += b.Count
		percentage += b.Percentage
	}
	assert.Equal(t, 6, total)
	assert.InDelta(t, 100.0, percentage, 0.1)

	// 25M sits on a boundary and must land in exactly one band.
	assert.Equal(t, "25M - 50M", buckets[3].Label)
}

func TestComputePriceDistributionDropsEmptyBands(t *testing.T) {
	buckets := services.ComputePriceDistribution([]models.Listing{
		listingPriced(1_000_000),
		listingPriced(2_000_000),
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, "Under 5M", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 100.0, buckets[0].Percentage)
}

func TestComputePriceTrends(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	listings := []models.Listing{
		{Price: 100, Area: 1, CreatedAt: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
		{Price: 200, Area: 1, CreatedAt: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)},
		{Price: 300, Area: 1, CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		// outside the window
		{Price: 999, Area: 1, CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := services.ComputePriceTrends(listings, 6, now)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-04", buckets[0].Month)
	assert.Equal(t, 2, buckets[0].ListingCount)
	assert.Equal(t, 150.0, buckets[0].AveragePrice)
	assert.Equal(t, "2024-06", buckets[1].Month)
	assert.Equal(t, 300.0, buckets[1].AveragePrice)
}

func TestComputeMarketVelocity(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recentSale := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	oldSale := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	listings := []models.Listing{
		{Status: models.ListingSold, ListedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), SoldAt: &recentSale},
		{Status: models.ListingSold, ListedAt: time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC), SoldAt: &oldSale},
		{Status: models.ListingActive, ListedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Status: models.ListingActive, ListedAt: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
	}

	velocity := services.ComputeMarketVelocity(listings, now)

	assert.Equal(t, 2, velocity.SoldCount)
	assert.Equal(t, 4, velocity.TotalCount)
	assert.Equal(t, 50.0, velocity.InventoryTurnover)
	// only one sale falls inside the trailing twelve months
	assert.InDelta(t, 1.0/12, velocity.AbsorptionRate, 0.0001)
}

func TestComputeTrendDirection(t *testing.T) {
	t.Run("rising moderate", func(t *testing.T) {
		trends := services.ComputePriceTrends([]models.Listing{
			{Price: 100, Area: 1, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			{Price: 110, Area: 1, CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, 6, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

		direction := services.ComputeTrendDirection(trends)
		assert.Equal(t, "rising", direction.Trend)
		assert.Equal(t, "moderate", direction.Strength)
		assert.Equal(t, 10.0, direction.ChangePercentage)
		assert.Equal(t, "2024-01", direction.FirstMonth)
		assert.Equal(t, "2024-03", direction.LastMonth)
	})

	t.Run("falling strong", func(t *testing.T) {
		trends := services.ComputePriceTrends([]models.Listing{
			{Price: 100, Area: 1, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			{Price: 80, Area: 1, CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, 6, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

		direction := services.ComputeTrendDirection(trends)
		assert.Equal(t, "falling", direction.Trend)
		assert.Equal(t, "strong", direction.Strength)
	})

	t.Run("single month is stable", func(t *testing.T) {
		trends := services.ComputePriceTrends([]models.Listing{
			{Price: 100, Area: 1, CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, 6, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

		direction := services.ComputeTrendDirection(trends)
		assert.Equal(t, "stable", direction.Trend)
		assert.Equal(t, "weak", direction.Strength)
	})
}

func TestMarketServiceCachesUntilInvalidated(t *testing.T) {
	repo := &fakeListingRepo{listings: []models.Listing{
		{ID: "l1", Price: 1_000_000, Area: 10, City: "Lahore"},
	}}
	svc := services.NewMarketService(repo, nil)
	filter := repositories.ListingFilter{City: "Lahore"}

	_, err := svc.PricePerUnit(context.Background(), filter)
	require.NoError(t, err)
	_, err = svc.PricePerUnit(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls, "second read should hit the cache")

	svc.InvalidateCache()
	_, err = svc.PricePerUnit(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls, "invalidation should force a re-scan")
}
