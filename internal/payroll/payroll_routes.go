package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/salaries/total",
		middleware.RateLimitByIP(20, 40),
		handler.ComputeTotal,
	)

	admin := r.Group("/admin")
	{
		admin.POST("/schema/reset",
			middleware.RateLimitByIP(0.05, 1),
			handler.ResetSchema,
		)
	}
}
