package routes

import (
	"github.com/bushboy/bookingswap-sub016/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuctions = "/auctions"
	PathAlerts   = "/alerts"
)

func addAuctionRoutes(rg *gin.RouterGroup, auctionHandler *handlers.AuctionHandler, proposalHandler *handlers.ProposalHandler) {
	auctions := rg.Group(PathAuctions)
	{
		auctions.POST("", auctionHandler.CreateAuction)
		auctions.GET("/timing", auctionHandler.GetTiming)
		auctions.GET("/swap/:swap_id", auctionHandler.GetAuctionBySwapID)
		auctions.GET("/:id", auctionHandler.GetAuction)
		auctions.GET("/:id/ranking", auctionHandler.GetRanking)

		// owner actions
		auctions.POST("/:id/end", auctionHandler.EndAuction)
		auctions.POST("/:id/cancel", auctionHandler.CancelAuction)
		auctions.POST("/:id/winner", auctionHandler.SelectWinner)
		auctions.POST("/:id/convert", auctionHandler.ConvertToFirstMatch)

		auctions.POST("/:id/proposals", proposalHandler.SubmitProposal)
		auctions.POST("/:id/proposals/validate", proposalHandler.ValidateProposal)
	}
}

func addAlertRoutes(rg *gin.RouterGroup, alertHandler *handlers.AlertHandler) {
	rg.GET(PathAlerts, alertHandler.ListAlerts)
}
