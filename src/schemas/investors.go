package schemas

// InvestorStatement aggregates per-property financials weighted by the
// investor's stake. Derived, never persisted.
type InvestorStatement struct {
	InvestorID   string              `json:"investorId"`
	InvestorName string              `json:"investorName"`
	Positions    []StatementPosition `json:"positions"`
	Totals       StatementTotals     `json:"totals"`
}

type StatementPosition struct {
	PropertyID      string   `json:"propertyId"`
	SharePercentage float64  `json:"sharePercentage"`
	AcquisitionCost float64  `json:"acquisitionCost"`
	Income          float64  `json:"income"`
	Expenses        float64  `json:"expenses"`
	NetCashFlow     float64  `json:"netCashFlow"`
	TotalProfit     *float64 `json:"totalProfit,omitempty"`
	ROI             *float64 `json:"roi,omitempty"`
}

type StatementTotals struct {
	AcquisitionCost float64 `json:"acquisitionCost"`
	Income          float64 `json:"income"`
	Expenses        float64 `json:"expenses"`
	NetCashFlow     float64 `json:"netCashFlow"`
	TotalProfit     float64 `json:"totalProfit"`
}

type CreateInvestorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CreateStakeRequest struct {
	PropertyID      string  `json:"propertyId"`
	SharePercentage float64 `json:"sharePercentage"`
	PurchasePrice   float64 `json:"purchasePrice"`
	AcquisitionDate string  `json:"acquisitionDate"`
}
