// Package rest exposes the ledger over HTTP.
package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/pokebro/launchpad/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read surface (public)
		v1.GET("/ledger", handler.GetLedgerState)
		v1.GET("/sets", handler.ListSets)
		v1.GET("/sets/:id", handler.GetSet)
		v1.GET("/sets/:id/snapshots", handler.ListSetSnapshots)
		v1.GET("/collectibles/:token_id", handler.GetCollectible)

		// Minting (public; payment is validated by the engine)
		v1.POST("/mint", handler.Mint)

		// Operator surface (requires authentication)
		v1.POST("/sets", middleware.Auth(authCfg), handler.CreateSets)
		v1.PATCH("/sets/:id", middleware.Auth(authCfg), handler.UpdateSet)
		v1.POST("/sets/:id/sale/open", middleware.Auth(authCfg), handler.OpenSale)
		v1.POST("/sets/:id/sale/close", middleware.Auth(authCfg), handler.CloseSale)
		v1.PUT("/ledger/fee", middleware.Auth(authCfg), handler.SetFee)
		v1.PUT("/ledger/contract", middleware.Auth(authCfg), handler.LinkContract)
		v1.POST("/ledger/pause", middleware.Auth(authCfg), handler.Pause)
		v1.POST("/ledger/unpause", middleware.Auth(authCfg), handler.Unpause)
		v1.POST("/sweep", middleware.Auth(authCfg), handler.Sweep)
	}
}
