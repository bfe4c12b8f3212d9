package controllers

import (
	"agency/src/repositories"
	"agency/src/services"
)

// Controllers bundles every API controller behind its interface so handlers
// can be exercised with fakes.
type Controllers struct {
	Ledger      LedgerControllerI
	Financials  FinancialsControllerI
	Market      MarketControllerI
	Listings    ListingsControllerI
	Procurement ProcurementControllerI
	Payments    PaymentsControllerI
	Investors   InvestorsControllerI
	Settings    SettingsControllerI
}

type Dependencies struct {
	Transactions repositories.TransactionRepository
	Listings     repositories.ListingRepository
	Investors    repositories.InvestorRepository
	Settings     repositories.SettingsRepository
	SecurityLogs repositories.SecurityLogRepository
	Financial    services.FinancialServiceI
	Market       services.MarketServiceI
	Statement    services.StatementServiceI
	Procurement  services.ProcurementServiceI
	Payments     services.PaymentServiceI
}

func NewControllers(deps Dependencies) *Controllers {
	return &Controllers{
		Ledger:      NewLedgerController(deps.Transactions),
		Financials:  NewFinancialsController(deps.Financial),
		Market:      NewMarketController(deps.Market),
		Listings:    NewListingsController(deps.Listings, deps.Market),
		Procurement: NewProcurementController(deps.Procurement),
		Payments:    NewPaymentsController(deps.Payments),
		Investors:   NewInvestorsController(deps.Investors, deps.Statement),
		Settings:    NewSettingsController(deps.Settings, deps.SecurityLogs),
	}
}
