package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/messaging/kafka"
	"github.com/shilpmis/saral-payroll/internal/payrun"
	"github.com/shilpmis/saral-payroll/internal/rbac"
	"github.com/shilpmis/saral-payroll/internal/rbac/infra"
	"github.com/shilpmis/saral-payroll/internal/template"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	templateRepo := template.NewRepository(gormDB)
	payRunRepo := payrun.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	catalogService := catalog.NewService(db, catalogRepo, rdb)
	templateService := template.NewService(db, templateRepo, catalogService)
	payRunService := payrun.NewServiceWithOutbox(
		db,
		payRunRepo,
		templateRepo,
		catalogService,
		basisComponentIDFromEnv(),
		outboxRepo,
	)

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	templateHandler := template.NewHandler(templateService)
	payRunHandler := payrun.NewHandlerWithRedis(payRunService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler, rbacService)
		template.RegisterRoutes(api, templateHandler, rbacService)
		payrun.RegisterRoutes(api, payRunHandler, rbacService, rdb)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}

// basisComponentIDFromEnv reads the catalog id of the basic-pay component
// used as the base for basic-relative percentages.
func basisComponentIDFromEnv() int64 {
	raw := os.Getenv("BASIC_PAY_COMPONENT_ID")
	if raw == "" {
		return payrun.DefaultBasicPayComponentID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return payrun.DefaultBasicPayComponentID
	}
	return id
}
