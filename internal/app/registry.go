package app

import (
	"database/sql"
	"net/http"

	"school-payroll/internal/bankprofile"
	"school-payroll/internal/config"
	"school-payroll/internal/middleware"
	"school-payroll/internal/payrollquery"
	"school-payroll/internal/rbac"
	"school-payroll/internal/salaryperiod"
	"school-payroll/internal/shared/audit"
	"school-payroll/internal/staff"
	"school-payroll/internal/statutory"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	staffRepo := staff.NewRepository(gormDB)
	bankProfileRepo := bankprofile.NewRepository(gormDB)
	salaryPeriodRepo := salaryperiod.NewRepository(gormDB)
	payrollQueryRepo := payrollquery.NewRepository(gormDB)

	// --- Core ---
	calc, err := statutory.NewCalculator(statutory.Rates{
		EPFEmployee: cfg.Payroll.EPFEmployeeRate,
		EPFEmployer: cfg.Payroll.EPFEmployerRate,
		ETF:         cfg.Payroll.ETFRate,
	})
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}
	auditLogger := audit.NewZapLogger(zap.L())
	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	// --- Services ---
	staffService := staff.NewService(staffRepo)
	bankProfileService := bankprofile.NewService(bankProfileRepo)
	salaryPeriodService := salaryperiod.NewService(
		db,
		salaryPeriodRepo,
		calc,
		bankProfileService,
		auditLogger,
		salaryperiod.WithNegativeNetPolicy(salaryperiod.NegativeNetPolicy(cfg.Payroll.NegativeNetPolicy)),
	)
	payrollQueryService := payrollquery.NewService(
		payrollQueryRepo,
		staffService,
		bankProfileService,
		payrollquery.NewPayslipRenderer(cfg.Payroll.SchoolName, cfg.Payroll.CurrencyLabel),
	)

	// --- Handlers ---
	bankProfileHandler := bankprofile.NewHandler(bankProfileService)
	salaryPeriodHandler := salaryperiod.NewHandler(salaryPeriodService)
	payrollQueryHandler := payrollquery.NewHandler(payrollQueryService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		bankprofile.RegisterRoutes(api, bankProfileHandler, rbacService, auth)
		salaryperiod.RegisterRoutes(api, salaryPeriodHandler, rbacService, auth, rdb)
		payrollquery.RegisterRoutes(api, payrollQueryHandler, rbacService, auth)
		rbac.RegisterRoutes(api, rbacHandler, auth)
	}

	return nil
}

// NewRouter returns a gin engine with the request-scoped logger and panic
// recovery installed.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.ContextLogger(logger),
		gin.Recovery(),
		middleware.RateLimitByIP(20, 40),
	)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}
