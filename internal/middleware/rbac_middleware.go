package middleware

import (
	"net/http"

	"github.com/shilpmis/saral-payroll/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextStaffID  ContextKey = "staff_id"
	ContextSchoolID ContextKey = "school_id"
)

// RBACService is a local interface so this package does not import the
// rbac feature directly.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, ok1 := c.Get(string(ContextStaffID))
		schoolID, ok2 := c.Get(string(ContextSchoolID))

		if !ok1 || !ok2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := domain.EnforceRequest{
			StaffID:  staffID.(string),
			SchoolID: schoolID.(string),
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
