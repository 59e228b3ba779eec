package routes

import (
	"sendmo/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all SendMo endpoints.
func RegisterRoutes(
	r *gin.Engine,
	addresses *controllers.AddressController,
	rates *controllers.RateController,
	labels *controllers.LabelController,
) {
	r.POST("/addresses/verify", addresses.Verify)

	r.GET("/rates/estimates", rates.GetEstimates)
	r.POST("/rates/quotes", rates.GetQuotes)

	r.POST("/shipments/:id/buy", labels.BuyLabel)
	r.GET("/shipments", labels.ListShipments)
}
