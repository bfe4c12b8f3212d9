package api

import (
	"net/http"
	"time"

	"agency/src/api/controllers"
	"agency/src/api/handlers"
	"agency/src/config"
	"agency/src/database"
	"agency/src/notify"
	"agency/src/repositories"
	"agency/src/services"
	"agency/src/utils"
	redis_utils "agency/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler

	// Payments is exposed so the startup code can register the overdue
	// sweep as a scheduled task.
	Payments services.PaymentServiceI

	tokenAuth    *jwtauth.JWTAuth
	securityLogs repositories.SecurityLogRepository
	logger       *logrus.Logger
}

func NewServer(cfg *config.Config) (*Server, error) {
	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	pool, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	var redisHandler *redis_utils.RedisHandler
	if cfg.Databases.Redis.Enabled {
		redisHandler, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
	}

	transactions := repositories.NewTransactionRepository(pool)
	listings := repositories.NewListingRepository(pool)
	orders := repositories.NewPurchaseOrderRepository(pool)
	grns := repositories.NewGRNRepository(pool)
	payments := repositories.NewPaymentRepository(pool)
	investors := repositories.NewInvestorRepository(pool)
	settings := repositories.NewSettingsRepository(pool)
	securityLogs := repositories.NewSecurityLogRepository(pool)

	financialService := services.NewFinancialService(transactions)
	marketService := services.NewMarketService(listings, redisHandler)
	statementService := services.NewStatementService(investors, financialService)
	procurementService := services.NewProcurementService(orders, grns)
	dispatcher := notify.NewWebhookDispatcher(logger)
	paymentService := services.NewPaymentService(payments, settings, dispatcher, cfg.Scheduler.OperatorUser, logger)

	ctrls := controllers.NewControllers(controllers.Dependencies{
		Transactions: transactions,
		Listings:     listings,
		Investors:    investors,
		Settings:     settings,
		SecurityLogs: securityLogs,
		Financial:    financialService,
		Market:       marketService,
		Statement:    statementService,
		Procurement:  procurementService,
		Payments:     paymentService,
	})

	server := &Server{
		Router:       chi.NewRouter(),
		Handler:      handlers.NewHandler(ctrls, logger),
		Payments:     paymentService,
		tokenAuth:    jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil),
		securityLogs: securityLogs,
		logger:       logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api", func(api chi.Router) {
		api.Use(s.verifyToken)

		api.Route("/transactions", func(r chi.Router) {
			r.Post("/", s.Handler.CreateTransaction)
			r.Post("/bulk", s.Handler.CreateTransactionsBulk)
			r.Get("/property/{id}", s.Handler.GetPropertyTransactions)
			r.Put("/{id}", s.Handler.UpdateTransaction)
			r.Delete("/{id}", s.Handler.DeleteTransaction)
			r.Delete("/property/{id}", s.Handler.DeleteTransactionsByProperty)
		})

		api.Route("/financials", func(r chi.Router) {
			r.Get("/property/{id}", s.Handler.GetPropertyFinancials)
			r.Get("/property/{id}/breakdown", s.Handler.GetProfitBreakdown)
		})

		api.Route("/market", func(r chi.Router) {
			r.Get("/price-per-unit", s.Handler.GetPricePerUnit)
			r.Get("/trends", s.Handler.GetPriceTrends)
			r.Get("/velocity", s.Handler.GetMarketVelocity)
			r.Get("/distribution", s.Handler.GetPriceDistribution)
			r.Get("/trend-direction", s.Handler.GetTrendDirection)
		})

		api.Route("/listings", func(r chi.Router) {
			r.Post("/", s.Handler.CreateListing)
			r.Get("/", s.Handler.GetListings)
			r.Get("/{id}", s.Handler.GetListing)
			r.Put("/{id}", s.Handler.UpdateListing)
			r.Delete("/{id}", s.Handler.DeleteListing)
		})

		api.Route("/procurement", func(r chi.Router) {
			r.Post("/orders", s.Handler.CreatePurchaseOrder)
			r.Get("/orders", s.Handler.ListPurchaseOrders)
			r.Get("/orders/{id}", s.Handler.GetPurchaseOrder)
			r.Post("/orders/{id}/issue", s.Handler.IssuePurchaseOrder)
			r.Post("/orders/{id}/cancel", s.Handler.CancelPurchaseOrder)
			r.Post("/grns", s.Handler.ReceiveGoods)
			r.Get("/grns/{id}", s.Handler.GetGRN)
		})

		api.Route("/payments", func(r chi.Router) {
			r.Post("/", s.Handler.SchedulePayment)
			r.Get("/due", s.Handler.GetDuePayments)
			r.Post("/{id}/pay", s.Handler.MarkPaymentPaid)
		})

		api.Route("/investors", func(r chi.Router) {
			r.Post("/", s.Handler.CreateInvestor)
			r.Get("/", s.Handler.GetInvestors)
			r.Post("/{id}/stakes", s.Handler.AddInvestorStake)
			r.Get("/{id}/statement", s.Handler.GetInvestorStatement)
			r.Get("/{id}/statement/export", s.Handler.ExportInvestorStatement)
		})

		api.Route("/settings", func(r chi.Router) {
			r.Get("/{userID}", s.Handler.GetSettings)
			r.Put("/{userID}", s.Handler.UpdateSettings)
			r.Get("/{userID}/security-log", s.Handler.GetSecurityLog)
		})
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
