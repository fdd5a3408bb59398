package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate/internal/models/request_models"
	"paygate/internal/services"
	"paygate/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Initialize godoc
// @Summary Initialize a payment for a tenant
// @Description Creates a pending transaction and returns the processor's authorization URL
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.InitializePaymentRequest true "Initialize Payment Request"
// @Success 200 {object} utils.APIResponse
// @Router /payments/initialize [post]
func (p *PaymentController) Initialize(c *gin.Context) {
	var request request_models.InitializePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := p.paymentService.InitializePayment(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Payment initialized")
}

// Callback handles the processor redirecting the user's browser back. The
// user always ends up at the tenant's callback URL with status and reference,
// unless the transaction is unknown or the loop guard trips.
func (p *PaymentController) Callback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		utils.RespondError(c, http.StatusBadRequest, "reference query parameter is required")
		return
	}

	redirectTo, err := p.paymentService.ReconcileCallback(c.Request.Context(), reference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, redirectTo)
}

// GetTransaction godoc
// @Summary Fetch a transaction by reference
// @Tags Payments
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 200 {object} utils.APIResponse
// @Router /payments/{reference} [get]
func (p *PaymentController) GetTransaction(c *gin.Context) {
	result, err := p.paymentService.GetTransaction(c.Request.Context(), c.Param("reference"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Transaction found")
}
