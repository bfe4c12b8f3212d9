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

type fakeTransactionRepo struct {
	transactions []models.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction) error {
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeTransactionRepo) CreateMany(_ context.Context, transactions []*models.Transaction) error {
	for _, t := range transactions {
		f.transactions = append(f.transactions, *t)
	}
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*models.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			return &f.transactions[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTransactionRepo) GetByProperty(_ context.Context, propertyID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetByCategory(_ context.Context, propertyID string, category models.TransactionCategory) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.PropertyID == propertyID && t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetByType(_ context.Context, propertyID string, transactionType string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.PropertyID == propertyID && t.Type == transactionType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetByDateRange(_ context.Context, propertyID string, start, end time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.PropertyID == propertyID && !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, id string, merge func(*models.Transaction)) (*models.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			merge(&f.transactions[i])
			return &f.transactions[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTransactionRepo) DeleteByProperty(_ context.Context, propertyID string) (int64, error) {
	var kept []models.Transaction
	var deleted int64
	for _, t := range f.transactions {
		if t.PropertyID == propertyID {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	f.transactions = kept
	return deleted, nil
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(propertyID, txType string, amount float64, day string) models.Transaction {
	category, _ := models.CategoryForType(txType)
	return models.Transaction{
		PropertyID: propertyID,
		Category:   category,
		Type:       txType,
		Amount:     amount,
		Date:       date(day),
	}
}

func TestComputePropertyFinancials(t *testing.T) {
	t.Run("net cash flow is income minus expenses", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1"},
			[]models.Transaction{
				tx("prop-1", "rental_income", 100, "2024-02-01"),
				tx("prop-1", "maintenance", 40, "2024-02-15"),
			},
		)

		assert.Equal(t, 100.0, snapshot.TotalIncome)
		assert.Equal(t, 40.0, snapshot.TotalExpenses)
		assert.Equal(t, 60.0, snapshot.NetCashFlow)
		assert.Equal(t, 60.0, snapshot.OperatingProfit)
		assert.Nil(t, snapshot.Sale)
	})

	t.Run("acquisition extras add to the cost basis", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1", PurchasePrice: 500_000},
			[]models.Transaction{
				tx("prop-1", "renovation", 50_000, "2023-03-01"),
				tx("prop-1", "legal_fees", 10_000, "2023-03-05"),
			},
		)

		assert.Equal(t, 560_000.0, snapshot.TotalAcquisitionCost)
	})

	t.Run("sale summary and roi", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{
				PropertyID:      "prop-1",
				PurchasePrice:   700_000,
				AcquisitionDate: date("2023-01-01"),
			},
			[]models.Transaction{
				tx("prop-1", "sale_price", 1_000_000, "2024-01-01"),
				tx("prop-1", "sale_commission", 20_000, "2024-01-01"),
				tx("prop-1", "sale_closing_costs", 5_000, "2024-01-01"),
			},
		)

		require.NotNil(t, snapshot.Sale)
		assert.Equal(t, 975_000.0, snapshot.Sale.NetSaleProceeds)
		assert.Equal(t, 275_000.0, snapshot.Sale.CapitalGain)
		assert.Equal(t, 275_000.0, snapshot.Sale.TotalProfit)
		assert.InDelta(t, 39.2857, snapshot.Sale.ROI, 0.001)
		assert.Equal(t, 365, snapshot.Sale.HoldingPeriodDays)
		assert.InDelta(t, 39.2857, snapshot.Sale.AnnualizedROI, 0.001)
	})

	t.Run("zero cost basis yields zero roi", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1"},
			[]models.Transaction{
				tx("prop-1", "sale_price", 100_000, "2024-06-01"),
			},
		)

		require.NotNil(t, snapshot.Sale)
		assert.Equal(t, 0.0, snapshot.Sale.ROI)
		assert.Equal(t, 0.0, snapshot.Sale.AnnualizedROI)
	})

	t.Run("same-day flip falls back to plain roi", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{
				PropertyID:      "prop-1",
				PurchasePrice:   100_000,
				AcquisitionDate: date("2024-05-01"),
			},
			[]models.Transaction{
				tx("prop-1", "sale_price", 110_000, "2024-05-01"),
			},
		)

		require.NotNil(t, snapshot.Sale)
		assert.Equal(t, 0, snapshot.Sale.HoldingPeriodDays)
		assert.Equal(t, snapshot.Sale.ROI, snapshot.Sale.AnnualizedROI)
	})

	t.Run("unrealized gain only while unsold", func(t *testing.T) {
		current := 600_000.0
		unsold := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1", PurchasePrice: 500_000, CurrentValue: &current},
			nil,
		)
		require.NotNil(t, unsold.UnrealizedGain)
		assert.Equal(t, 100_000.0, *unsold.UnrealizedGain)

		sold := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1", PurchasePrice: 500_000, CurrentValue: &current},
			[]models.Transaction{tx("prop-1", "sale_price", 650_000, "2024-04-01")},
		)
		assert.Nil(t, sold.UnrealizedGain)
	})
}

func TestComputeProfitBreakdown(t *testing.T) {
	t.Run("shares split between capital gain and operations", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{
				PropertyID:      "prop-1",
				PurchasePrice:   700_000,
				AcquisitionDate: date("2023-01-01"),
			},
			[]models.Transaction{
				tx("prop-1", "rental_income", 25_000, "2023-06-01"),
				tx("prop-1", "sale_price", 1_000_000, "2024-01-01"),
				tx("prop-1", "sale_commission", 20_000, "2024-01-01"),
				tx("prop-1", "sale_closing_costs", 5_000, "2024-01-01"),
			},
		)
		breakdown := services.ComputeProfitBreakdown(snapshot)

		assert.Equal(t, 275_000.0, breakdown.CapitalGain)
		assert.Equal(t, 25_000.0, breakdown.OperatingProfit)
		assert.Equal(t, 300_000.0, breakdown.TotalProfit)
		require.NotNil(t, breakdown.CapitalGainShare)
		require.NotNil(t, breakdown.OperatingProfitShare)
		assert.InDelta(t, 91.6667, *breakdown.CapitalGainShare, 0.001)
		assert.InDelta(t, 8.3333, *breakdown.OperatingProfitShare, 0.001)
	})

	t.Run("zero total profit leaves shares nil", func(t *testing.T) {
		snapshot := services.ComputePropertyFinancials(
			services.FinancialsInput{PropertyID: "prop-1"},
			nil,
		)
		breakdown := services.ComputeProfitBreakdown(snapshot)

		assert.Equal(t, 0.0, breakdown.TotalProfit)
		assert.Nil(t, breakdown.CapitalGainShare)
		assert.Nil(t, breakdown.OperatingProfitShare)
	})
}

func TestFinancialServiceReadsLedger(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []models.Transaction{
		tx("prop-1", "rental_income", 100, "2024-02-01"),
		tx("prop-1", "maintenance", 40, "2024-02-15"),
		tx("prop-2", "rental_income", 999, "2024-02-01"),
	}}
	svc := services.NewFinancialService(repo)

	snapshot, err := svc.GetPropertyFinancials(context.Background(), services.FinancialsInput{PropertyID: "prop-1"})
	require.NoError(t, err)
	assert.Equal(t, 60.0, snapshot.NetCashFlow)
}
