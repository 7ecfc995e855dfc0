package template

import (
	"github.com/shilpmis/saral-payroll/internal/middleware"
	"github.com/shilpmis/saral-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	templates := r.Group("/salary-templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", middleware.RBACAuthorize(rbacService, "salary_template", "read"), handler.GetAll)
		templates.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_template", "read"), handler.GetById)
		templates.GET("/staff/:staff_enrollments_id", middleware.RBACAuthorize(rbacService, "salary_template", "read"), handler.GetByStaff)
		templates.POST("", middleware.RBACAuthorize(rbacService, "salary_template", "create"), handler.Create)
		templates.PUT("/:id", middleware.RBACAuthorize(rbacService, "salary_template", "update"), handler.Update)
		templates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_template", "delete"), handler.Delete)
	}
}
