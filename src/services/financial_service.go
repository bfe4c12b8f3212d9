package services

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/utils"
)

type FinancialServiceI interface {
	GetPropertyFinancials(ctx context.Context, req FinancialsInput) (*schemas.PropertyFinancials, error)
	GetProfitBreakdown(ctx context.Context, req FinancialsInput) (*schemas.ProfitBreakdown, error)
}

// FinancialsInput identifies a property and the acquisition facts that live
// outside the ledger.
type FinancialsInput struct {
	PropertyID      string
	PurchasePrice   float64
	AcquisitionDate time.Time
	CurrentValue    *float64
}

// FinancialService derives per-property snapshots from the ledger. It holds no
// state: every read re-scans the property's transactions, so results are
// always consistent with the current ledger.
type FinancialService struct {
	transactions repositories.TransactionRepository
}

func NewFinancialService(transactions repositories.TransactionRepository) *FinancialService {
	return &FinancialService{transactions: transactions}
}

func (fs *FinancialService) GetPropertyFinancials(ctx context.Context, req FinancialsInput) (*schemas.PropertyFinancials, error) {
	transactions, err := fs.transactions.GetByProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	return ComputePropertyFinancials(req, transactions), nil
}

func (fs *FinancialService) GetProfitBreakdown(ctx context.Context, req FinancialsInput) (*schemas.ProfitBreakdown, error) {
	snapshot, err := fs.GetPropertyFinancials(ctx, req)
	if err != nil {
		return nil, err
	}
	return ComputeProfitBreakdown(snapshot), nil
}

// ComputePropertyFinancials aggregates a property's transactions into its
// financial snapshot. Pure; deterministic given its inputs.
func ComputePropertyFinancials(req FinancialsInput, transactions []models.Transaction) *schemas.PropertyFinancials {
	var acquisitionExtras, totalIncome, totalExpenses float64
	var salePrice, commission, closingCosts float64
	var saleDate time.Time
	hasSale := false

	for _, t := range transactions {
		switch t.Category {
		case models.CategoryAcquisition:
			acquisitionExtras += t.Amount
		case models.CategoryIncome:
			totalIncome += t.Amount
		case models.CategoryExpense:
			totalExpenses += t.Amount
		case models.CategorySale:
			hasSale = true
			switch t.Type {
			case "sale_price":
				salePrice += t.Amount
				if t.Date.After(saleDate) {
					saleDate = t.Date
				}
			case "sale_commission":
				commission += t.Amount
			case "sale_closing_costs":
				closingCosts += t.Amount
			}
		}
	}

	totalAcquisitionCost := req.PurchasePrice + acquisitionExtras
	netCashFlow := totalIncome - totalExpenses

	snapshot := &schemas.PropertyFinancials{
		PropertyID:           req.PropertyID,
		TotalAcquisitionCost: totalAcquisitionCost,
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		NetCashFlow:          netCashFlow,
		OperatingProfit:      netCashFlow,
		CurrentValue:         req.CurrentValue,
	}

	if req.CurrentValue != nil && !hasSale {
		unrealized := *req.CurrentValue - totalAcquisitionCost
		snapshot.UnrealizedGain = &unrealized
	}

	if hasSale {
		netSaleProceeds := salePrice - (commission + closingCosts)
		capitalGain := netSaleProceeds - totalAcquisitionCost
		totalProfit := capitalGain + snapshot.OperatingProfit

		// Zero cost basis yields 0, never NaN or Inf.
		roi := 0.0
		if totalAcquisitionCost > 0 {
			roi = totalProfit / totalAcquisitionCost * 100
		}

		holdingDays := 0
		if !req.AcquisitionDate.IsZero() && !saleDate.IsZero() {
			holdingDays = utils.DaysBetween(req.AcquisitionDate, saleDate)
		}

		// A same-day flip cannot be annualized; fall back to the plain ROI.
		annualizedROI := roi
		if holdingDays > 0 {
			annualizedROI = roi / (float64(holdingDays) / 365)
		}

		snapshot.Sale = &schemas.SaleSummary{
			SalePrice:         salePrice,
			Commission:        commission,
			ClosingCosts:      closingCosts,
			NetSaleProceeds:   netSaleProceeds,
			CapitalGain:       capitalGain,
			TotalProfit:       totalProfit,
			ROI:               roi,
			AnnualizedROI:     annualizedROI,
			HoldingPeriodDays: holdingDays,
			SaleDate:          saleDate,
		}
	}

	return snapshot
}

// ComputeProfitBreakdown splits total profit between the capital gain and the
// operating result. When total profit is zero the shares are left nil rather
// than substituting a fake denominator.
func ComputeProfitBreakdown(snapshot *schemas.PropertyFinancials) *schemas.ProfitBreakdown {
	breakdown := &schemas.ProfitBreakdown{
		OperatingProfit: snapshot.OperatingProfit,
	}
	if snapshot.Sale != nil {
		breakdown.CapitalGain = snapshot.Sale.CapitalGain
		breakdown.TotalProfit = snapshot.Sale.TotalProfit
	} else {
		breakdown.TotalProfit = snapshot.OperatingProfit
	}

	if breakdown.TotalProfit != 0 {
		capitalShare := breakdown.CapitalGain / breakdown.TotalProfit * 100
		operatingShare := breakdown.OperatingProfit / breakdown.TotalProfit * 100
		breakdown.CapitalGainShare = &capitalShare
		breakdown.OperatingProfitShare = &operatingShare
	}
	return breakdown
}
