package controllers

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/services"
	"agency/src/utils"

	"github.com/xuri/excelize/v2"
)

type InvestorsControllerI interface {
	CreateInvestor(ctx context.Context, req *schemas.CreateInvestorRequest) (*models.Investor, error)
	GetInvestors(ctx context.Context) ([]models.Investor, error)
	AddStake(ctx context.Context, investorID string, req *schemas.CreateStakeRequest) (*models.InvestorStake, error)
	GetStatement(ctx context.Context, investorID string) (*schemas.InvestorStatement, error)
	ExportStatementCSV(ctx context.Context, investorID string) ([]byte, error)
	ExportStatementXLSX(ctx context.Context, investorID string) (*excelize.File, error)
}

type InvestorsController struct {
	investors  repositories.InvestorRepository
	statements services.StatementServiceI
}

func NewInvestorsController(investors repositories.InvestorRepository, statements services.StatementServiceI) *InvestorsController {
	return &InvestorsController{investors: investors, statements: statements}
}

func (c *InvestorsController) CreateInvestor(ctx context.Context, req *schemas.CreateInvestorRequest) (*models.Investor, error) {
	investor := &models.Investor{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := c.investors.Create(ctx, investor); err != nil {
		return nil, err
	}
	return investor, nil
}

func (c *InvestorsController) GetInvestors(ctx context.Context) ([]models.Investor, error) {
	return c.investors.GetAll(ctx)
}

func (c *InvestorsController) AddStake(ctx context.Context, investorID string, req *schemas.CreateStakeRequest) (*models.InvestorStake, error) {
	acquisitionDate, err := time.Parse(utils.ShortDashDateLayout, req.AcquisitionDate)
	if err != nil {
		return nil, utils.UnprocessableEntity("acquisitionDate must be YYYY-MM-DD")
	}

	stake := &models.InvestorStake{
		InvestorID:      investorID,
		PropertyID:      req.PropertyID,
		SharePercentage: req.SharePercentage,
		PurchasePrice:   req.PurchasePrice,
		AcquisitionDate: acquisitionDate,
	}
	if err := c.investors.AddStake(ctx, stake); err != nil {
		return nil, err
	}
	return stake, nil
}

func (c *InvestorsController) GetStatement(ctx context.Context, investorID string) (*schemas.InvestorStatement, error) {
	return c.statements.BuildStatement(ctx, investorID)
}

func (c *InvestorsController) ExportStatementCSV(ctx context.Context, investorID string) ([]byte, error) {
	statement, err := c.statements.BuildStatement(ctx, investorID)
	if err != nil {
		return nil, err
	}
	return c.statements.ExportCSV(statement)
}

func (c *InvestorsController) ExportStatementXLSX(ctx context.Context, investorID string) (*excelize.File, error) {
	statement, err := c.statements.BuildStatement(ctx, investorID)
	if err != nil {
		return nil, err
	}
	return c.statements.ExportXLSX(statement)
}
