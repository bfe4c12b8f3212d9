package schemas

import (
	"time"
)

// PropertyFinancials is the derived snapshot for one property. It is computed
// from the ledger on every read and never persisted.
type PropertyFinancials struct {
	PropertyID           string       `json:"propertyId"`
	TotalAcquisitionCost float64      `json:"totalAcquisitionCost"`
	TotalIncome          float64      `json:"totalIncome"`
	TotalExpenses        float64      `json:"totalExpenses"`
	NetCashFlow          float64      `json:"netCashFlow"`
	OperatingProfit      float64      `json:"operatingProfit"`
	CurrentValue         *float64     `json:"currentValue,omitempty"`
	UnrealizedGain       *float64     `json:"unrealizedGain,omitempty"`
	Sale                 *SaleSummary `json:"sale,omitempty"`
}

// SaleSummary is present on the snapshot only once sale transactions exist.
type SaleSummary struct {
	SalePrice         float64   `json:"salePrice"`
	Commission        float64   `json:"commission"`
	ClosingCosts      float64   `json:"closingCosts"`
	NetSaleProceeds   float64   `json:"netSaleProceeds"`
	CapitalGain       float64   `json:"capitalGain"`
	TotalProfit       float64   `json:"totalProfit"`
	ROI               float64   `json:"roi"`
	AnnualizedROI     float64   `json:"annualizedRoi"`
	HoldingPeriodDays int       `json:"holdingPeriodDays"`
	SaleDate          time.Time `json:"saleDate"`
}

// ProfitBreakdown splits total profit between the capital gain and operations.
// Percentages are nil when total profit is zero, so callers can render "n/a"
// instead of a misleading 0%.
type ProfitBreakdown struct {
	CapitalGain          float64  `json:"capitalGain"`
	OperatingProfit      float64  `json:"operatingProfit"`
	TotalProfit          float64  `json:"totalProfit"`
	CapitalGainShare     *float64 `json:"capitalGainShare,omitempty"`
	OperatingProfitShare *float64 `json:"operatingProfitShare,omitempty"`
}
