package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paygate/internal/models/request_models"
	"paygate/internal/services"
	"paygate/pkg/utils"
)

type TenantController struct {
	tenantService services.TenantService
}

func NewTenantController(tenantService services.TenantService) *TenantController {
	return &TenantController{
		tenantService: tenantService,
	}
}

// Create godoc
// @Summary Onboard a tenant application
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body request_models.CreateTenantRequest true "Create Tenant Request"
// @Success 200 {object} utils.APIResponse
// @Router /tenants [post]
func (t *TenantController) Create(c *gin.Context) {
	var request request_models.CreateTenantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tenantService.CreateTenant(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Tenant created")
}

func (t *TenantController) Get(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tenant_id must be a UUID")
		return
	}

	result, err := t.tenantService.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Tenant found")
}
