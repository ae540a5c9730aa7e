package routes

import (
	"restoration_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathDebris    = "/debris"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateDocumentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.ReplaceEstimate)
		estimates.PATCH("/:id/send", estimateHandler.SendEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/decline", estimateHandler.DeclineEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}
}

func addDebrisRoutes(rg *gin.RouterGroup, debrisHandler *handlers.DebrisHandler) {
	debrisRoutes := rg.Group(PathDebris)
	{
		debrisRoutes.POST("/calculations", debrisHandler.Calculate)
	}
}
