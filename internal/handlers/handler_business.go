package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to businesses.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers the business routes and the business-scoped
// expense, revenue and tax routes under /businesses/:business_id.
func registerBusinessRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBusinessHandler(services.Business)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)

		business := businesses.Group("/:business_id")
		{
			business.GET("", h.getBusiness)
			business.PUT("/tax-settings", h.updateTaxSettings)

			registerExpenseRoutes(business, services.Expense)
			registerRevenueRoutes(business, services.Revenue)
			registerBusinessTaxRoutes(business, services.Tax)
		}
	}
}

// createBusiness godoc
// @Summary Create a business
// @Description Creates a business owned by the caller
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create business request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to create business")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// listBusinesses godoc
// @Summary List businesses
// @Description Lists the businesses owned by the caller
// @Tags businesses
// @Produce json
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to list businesses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), c.Param("business_id"), userID)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to retrieve business")
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateTaxSettings godoc
// @Summary Update tax settings
// @Description Replaces the tax opt-in and jurisdiction of a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param settings body dto.UpdateTaxSettingsRequest true "Tax settings"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/tax-settings [put]
func (h *businessHandler) updateTaxSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaxSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.UpdateTaxSettings(c.Request.Context(), c.Param("business_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to update tax settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
