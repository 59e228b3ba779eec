package controllers

import (
	"net/http"

	"sendmo/models"
	"sendmo/services"

	"github.com/gin-gonic/gin"
)

// AddressController handles HTTP requests for address verification.
type AddressController struct {
	addressService services.AddressService
}

// NewAddressController creates a new AddressController.
func NewAddressController(svc services.AddressService) *AddressController {
	return &AddressController{addressService: svc}
}

// Verify handles POST /addresses/verify. The payload carries either a
// structured address or a free-text address_string to be parsed first.
func (ac *AddressController) Verify(ctx *gin.Context) {
	var req models.VerifyAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var result *models.VerificationResult
	var svcErr *services.ServiceError
	switch {
	case req.AddressString != "":
		result, svcErr = ac.addressService.ResolveString(ctx.Request.Context(), req.AddressString, req.UserID)
	case req.Address != nil:
		result, svcErr = ac.addressService.Resolve(ctx.Request.Context(), *req.Address, req.UserID)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Either address or address_string is required"})
		return
	}

	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
