package payrun

import (
	"github.com/shilpmis/saral-payroll/internal/middleware"
	"github.com/shilpmis/saral-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payruns := r.Group("/payruns")
	payruns.Use(middleware.AuthMiddleware())
	{
		payruns.GET("", middleware.RBACAuthorize(rbacService, "pay_run", "read"), handler.GetAll)
		payruns.GET("/:id", middleware.RBACAuthorize(rbacService, "pay_run", "read"), handler.GetByID)
		payruns.GET("/:id/summary", middleware.RBACAuthorize(rbacService, "pay_run", "read"), handler.GetSummary)
		payruns.GET("/:id/payslip/download", middleware.RBACAuthorize(rbacService, "pay_run", "read"), handler.DownloadPayslip)
		payruns.GET(
			"/templates/:template_id/components",
			middleware.RBACAuthorize(rbacService, "pay_run", "read"),
			handler.PreviewTemplate,
		)
		if redisClient != nil {
			payruns.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "pay_run", "create"),
				handler.Create,
			)
		} else {
			payruns.POST("", middleware.RBACAuthorize(rbacService, "pay_run", "create"), handler.Create)
		}
		payruns.PATCH("/:id", middleware.RBACAuthorize(rbacService, "pay_run", "update"), handler.Update)
		payruns.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "pay_run", "pay"), handler.MarkAsPaid)
		payruns.DELETE("/:id", middleware.RBACAuthorize(rbacService, "pay_run", "delete"), handler.Delete)
	}
}
