package routes

import (
	"github.com/gin-gonic/gin"

	"campo_direto/internal/adapter/http/handlers"
)

const (
	PathCarts  = "/carts"
	PathOrders = "/orders"
)

func addNegotiationRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, proposalHandler *handlers.ProposalHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:order_id", cartHandler.GetCart)
		carts.POST("/:order_id/items", cartHandler.AddItem)
		carts.DELETE("/:order_id/items/:item_id", cartHandler.RemoveItem)
		carts.PUT("/:order_id/items/:item_id/quantity", cartHandler.UpdateQuantity)
		carts.POST("/:order_id/recalculate-totals", cartHandler.RecalculateTotals)
		carts.PUT("/:order_id/deadline", cartHandler.ExtendDeadline)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/proposals", proposalHandler.SubmitProposal)
		orders.POST("/:order_id/proposals/list", proposalHandler.ListProposals)
		orders.GET("/:order_id/proposals/latest", proposalHandler.GetLatestProposal)
	}
}
