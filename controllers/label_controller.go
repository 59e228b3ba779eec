package controllers

import (
	"net/http"
	"strconv"

	"sendmo/models"
	"sendmo/services"

	"github.com/gin-gonic/gin"
)

// LabelController handles HTTP requests for label purchase.
type LabelController struct {
	labelService services.LabelService
}

// NewLabelController creates a new LabelController.
func NewLabelController(svc services.LabelService) *LabelController {
	return &LabelController{labelService: svc}
}

// BuyLabel handles POST /shipments/:id/buy
func (lc *LabelController) BuyLabel(ctx *gin.Context) {
	shipmentID := ctx.Param("id")
	if shipmentID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Shipment ID is required"})
		return
	}

	var req models.BuyLabelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	shipment, svcErr := lc.labelService.BuyLabel(ctx.Request.Context(), shipmentID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"shipment": shipment})
}

// ListShipments handles GET /shipments
func (lc *LabelController) ListShipments(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	shipments, total, svcErr := lc.labelService.GetShipments(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"shipments": shipments, "total": total, "page": page, "limit": limit})
}

// parsePaginationParams extracts and validates page/limit query params.
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const maxLimit = 100
	pageInt, limitInt := 1, 10
	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		pageInt = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		if l > maxLimit {
			l = maxLimit
		}
		limitInt = l
	}
	return pageInt, limitInt
}
