package schemas

// PricePerUnitStats summarizes listing prices normalized by area.
type PricePerUnitStats struct {
	PropertyType string  `json:"propertyType,omitempty"`
	City         string  `json:"city,omitempty"`
	AreaUnit     string  `json:"areaUnit,omitempty"`
	ListingCount int     `json:"listingCount"`
	Average      float64 `json:"average"`
	Median       float64 `json:"median"`
}

// PriceTrendBucket is one month of the price-trend series.
type PriceTrendBucket struct {
	Month               string  `json:"month"`
	ListingCount        int     `json:"listingCount"`
	AveragePrice        float64 `json:"averagePrice"`
	MedianPrice         float64 `json:"medianPrice"`
	AveragePricePerUnit float64 `json:"averagePricePerUnit"`
}

type MarketVelocity struct {
	PropertyType       string  `json:"propertyType,omitempty"`
	City               string  `json:"city,omitempty"`
	MeanDaysOnMarket   float64 `json:"meanDaysOnMarket"`
	MedianDaysOnMarket float64 `json:"medianDaysOnMarket"`
	SoldCount          int     `json:"soldCount"`
	TotalCount         int     `json:"totalCount"`
	InventoryTurnover  float64 `json:"inventoryTurnover"`
	AbsorptionRate     float64 `json:"absorptionRate"`
}

// PriceBucket is one band of the fixed PKR price distribution. Empty bands are
// dropped from responses.
type PriceBucket struct {
	Label      string  `json:"label"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max,omitempty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TrendDirection struct {
	Trend            string  `json:"trend"`
	Strength         string  `json:"strength"`
	ChangePercentage float64 `json:"changePercentage"`
	FirstMonth       string  `json:"firstMonth"`
	LastMonth        string  `json:"lastMonth"`
}
