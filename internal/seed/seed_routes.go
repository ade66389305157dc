package seed

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	loads := r.Group("/loads")
	{
		loads.POST("",
			middleware.RateLimitByIP(0.1, 2),
			handler.Load,
		)
	}
}
