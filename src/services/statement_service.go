package services

import (
	"bytes"
	"context"

	"agency/src/repositories"
	"agency/src/schemas"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

type StatementServiceI interface {
	BuildStatement(ctx context.Context, investorID string) (*schemas.InvestorStatement, error)
	ExportCSV(statement *schemas.InvestorStatement) ([]byte, error)
	ExportXLSX(statement *schemas.InvestorStatement) (*excelize.File, error)
}

// StatementService derives investor statements: each property snapshot is
// weighted by the investor's stake and rolled into totals.
type StatementService struct {
	investors  repositories.InvestorRepository
	financials FinancialServiceI
}

func NewStatementService(investors repositories.InvestorRepository, financials FinancialServiceI) *StatementService {
	return &StatementService{investors: investors, financials: financials}
}

func (ss *StatementService) BuildStatement(ctx context.Context, investorID string) (*schemas.InvestorStatement, error) {
	investor, err := ss.investors.GetByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	stakes, err := ss.investors.GetStakes(ctx, investorID)
	if err != nil {
		return nil, err
	}

	statement := &schemas.InvestorStatement{
		InvestorID:   investor.ID,
		InvestorName: investor.Name,
		Positions:    make([]schemas.StatementPosition, 0, len(stakes)),
	}

	for _, stake := range stakes {
		snapshot, err := ss.financials.GetPropertyFinancials(ctx, FinancialsInput{
			PropertyID:      stake.PropertyID,
			PurchasePrice:   stake.PurchasePrice,
			AcquisitionDate: stake.AcquisitionDate,
		})
		if err != nil {
			return nil, err
		}

		share := stake.SharePercentage / 100
		position := schemas.StatementPosition{
			PropertyID:      stake.PropertyID,
			SharePercentage: stake.SharePercentage,
			AcquisitionCost: snapshot.TotalAcquisitionCost * share,
			Income:          snapshot.TotalIncome * share,
			Expenses:        snapshot.TotalExpenses * share,
			NetCashFlow:     snapshot.NetCashFlow * share,
		}
		if snapshot.Sale != nil {
			profit := snapshot.Sale.TotalProfit * share
			roi := snapshot.Sale.ROI
			position.TotalProfit = &profit
			position.ROI = &roi
			statement.Totals.TotalProfit += profit
		}

		statement.Totals.AcquisitionCost += position.AcquisitionCost
		statement.Totals.Income += position.Income
		statement.Totals.Expenses += position.Expenses
		statement.Totals.NetCashFlow += position.NetCashFlow
		statement.Positions = append(statement.Positions, position)
	}

	return statement, nil
}

func (ss *StatementService) statementDataframe(statement *schemas.InvestorStatement) dataframe.DataFrame {
	n := len(statement.Positions)
	propertyIDs := make([]string, n)
	shares := make([]float64, n)
	costs := make([]float64, n)
	income := make([]float64, n)
	expenses := make([]float64, n)
	cashFlow := make([]float64, n)

	for i, p := range statement.Positions {
		propertyIDs[i] = p.PropertyID
		shares[i] = p.SharePercentage
		costs[i] = p.AcquisitionCost
		income[i] = p.Income
		expenses[i] = p.Expenses
		cashFlow[i] = p.NetCashFlow
	}

	return dataframe.New(
		series.New(propertyIDs, series.String, "Property"),
		series.New(shares, series.Float, "Share %"),
		series.New(costs, series.Float, "Acquisition Cost"),
		series.New(income, series.Float, "Income"),
		series.New(expenses, series.Float, "Expenses"),
		series.New(cashFlow, series.Float, "Net Cash Flow"),
	)
}

func (ss *StatementService) ExportCSV(statement *schemas.InvestorStatement) ([]byte, error) {
	df := ss.statementDataframe(statement)
	var buf bytes.Buffer
	if err := df.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ss *StatementService) ExportXLSX(statement *schemas.InvestorStatement) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Statement"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	headers := []string{"Property", "Share %", "Acquisition Cost", "Income", "Expenses", "Net Cash Flow", "Total Profit", "ROI %"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, p := range statement.Positions {
		values := []interface{}{p.PropertyID, p.SharePercentage, p.AcquisitionCost, p.Income, p.Expenses, p.NetCashFlow}
		if p.TotalProfit != nil {
			values = append(values, *p.TotalProfit)
		} else {
			values = append(values, "")
		}
		if p.ROI != nil {
			values = append(values, *p.ROI)
		} else {
			values = append(values, "")
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	totalsRow := len(statement.Positions) + 2
	totals := []interface{}{
		"Totals", "",
		statement.Totals.AcquisitionCost,
		statement.Totals.Income,
		statement.Totals.Expenses,
		statement.Totals.NetCashFlow,
		statement.Totals.TotalProfit,
		"",
	}
	for col, value := range totals {
		cell, _ := excelize.CoordinatesToCellName(col+1, totalsRow)
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return nil, err
		}
	}

	return file, nil
}
