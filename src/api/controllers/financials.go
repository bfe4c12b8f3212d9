package controllers

import (
	"context"

	"agency/src/schemas"
	"agency/src/services"
)

type FinancialsControllerI interface {
	GetPropertyFinancials(ctx context.Context, input services.FinancialsInput) (*schemas.PropertyFinancials, error)
	GetProfitBreakdown(ctx context.Context, input services.FinancialsInput) (*schemas.ProfitBreakdown, error)
}

type FinancialsController struct {
	financials services.FinancialServiceI
}

func NewFinancialsController(financials services.FinancialServiceI) *FinancialsController {
	return &FinancialsController{financials: financials}
}

func (c *FinancialsController) GetPropertyFinancials(ctx context.Context, input services.FinancialsInput) (*schemas.PropertyFinancials, error) {
	return c.financials.GetPropertyFinancials(ctx, input)
}

func (c *FinancialsController) GetProfitBreakdown(ctx context.Context, input services.FinancialsInput) (*schemas.ProfitBreakdown, error) {
	return c.financials.GetProfitBreakdown(ctx, input)
}
