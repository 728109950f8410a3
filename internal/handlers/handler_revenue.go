package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/gin-gonic/gin"
)

// revenueHandler handles HTTP requests related to revenue entries.
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
	now            func() time.Time
}

func newRevenueHandler(rs portssvc.RevenueSvcFacade) *revenueHandler {
	return &revenueHandler{revenueService: rs, now: time.Now}
}

func registerRevenueRoutes(business *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := newRevenueHandler(revenueService)

	revenue := business.Group("/revenue")
	{
		revenue.POST("", h.recordRevenue)
		revenue.GET("", h.listRevenue)
	}
}

// recordRevenue godoc
// @Summary Record revenue
// @Description Records a sale (flowType in, the default) or a customer refund (flowType out)
// @Tags revenue
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param entry body dto.CreateRevenueRequest true "Revenue entry"
// @Success 201 {object} dto.RevenueEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/revenue [post]
func (h *revenueHandler) recordRevenue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.revenueService.RecordRevenue(c.Request.Context(), c.Param("business_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to record revenue")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueEntryResponse(entry))
}

// listRevenue godoc
// @Summary List revenue
// @Description Lists revenue entries in a date range with the net total (sales minus refunds, floored at zero)
// @Tags revenue
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListRevenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/revenue [get]
func (h *revenueHandler) listRevenue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := dto.ParsePeriod(c.Query("fromDate"), c.Query("toDate"), h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.revenueService.ListRevenue(c.Request.Context(), c.Param("business_id"), userID, period)
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to list revenue")
		return
	}

	c.JSON(http.StatusOK, res)
}
