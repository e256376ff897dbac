package server

import (
	bidding "ecobid/internal/biddingService"
	wallet "ecobid/internal/walletService"
	auctionhandler "ecobid/services/auctions/handler"
	reporthandler "ecobid/services/reports/handler"
	wallethandler "ecobid/services/wallet/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, walletService *wallet.WalletService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(biddingService)
	walletHandler := wallethandler.NewWalletHandler(walletService)
	reportHandler := reporthandler.NewReportHandler()

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", auctionHandler.GetBidsByBidderHandler)
		users.GET("/:user_id/wallet", walletHandler.GetWalletHandler)
		users.POST("/:user_id/wallet/deposits", walletHandler.AddFundsHandler)
		users.GET("/:user_id/transactions", walletHandler.GetTransactionsHandler)
		users.GET("/:user_id/notifications", walletHandler.GetNotificationsHandler)
		users.POST("/:user_id/notifications/read", walletHandler.MarkNotificationsReadHandler)
	}

	reportGroup := router.Group("/reports")
	{
		reportGroup.GET("/impact", reportHandler.GetImpactHandler)
	}

	return router
}
