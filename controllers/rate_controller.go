package controllers

import (
	"net/http"
	"strconv"

	"sendmo/models"
	"sendmo/services"

	"github.com/gin-gonic/gin"
)

// RateController handles HTTP requests for rate estimates and live quotes.
type RateController struct {
	rateService services.RateService
}

// NewRateController creates a new RateController.
func NewRateController(svc services.RateService) *RateController {
	return &RateController{rateService: svc}
}

// GetEstimates handles GET /rates/estimates?weight_oz=N
func (rc *RateController) GetEstimates(ctx *gin.Context) {
	weightOz, err := strconv.Atoi(ctx.Query("weight_oz"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "weight_oz must be an integer number of ounces"})
		return
	}

	estimates, svcErr := rc.rateService.GetEstimates(ctx.Request.Context(), weightOz)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, estimates)
}

// GetQuotes handles POST /rates/quotes
func (rc *RateController) GetQuotes(ctx *gin.Context) {
	var req models.LiveRatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	quotes, svcErr := rc.rateService.GetLiveRates(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	// An empty list is a legitimate answer: nothing survived filtering.
	ctx.JSON(http.StatusOK, gin.H{"rates": quotes})
}
