package routes

import (
	"github.com/gin-gonic/gin"

	"campo_direto/internal/adapter/http/handlers"
)

const PathFreight = "/freight"

func addFreightRoutes(rg *gin.RouterGroup, freightHandler *handlers.FreightHandler) {
	freight := rg.Group(PathFreight)
	{
		freight.POST("/quote", freightHandler.Quote)
		freight.POST("/quote-consolidated", freightHandler.QuoteConsolidated)
		freight.POST("/bookings", freightHandler.Schedule)
		freight.PUT("/bookings/:id/reschedule", freightHandler.Reschedule)
		freight.PUT("/bookings/:id/value", freightHandler.UpdateFreightValue)
		freight.POST("/bookings/validate-batch", freightHandler.ValidateBatch)
		freight.DELETE("/bookings/:id", freightHandler.Cancel)
	}
}
