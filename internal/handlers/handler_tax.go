package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/middleware"
	"github.com/SscSPs/sme_tax_estimator/internal/report"
	"github.com/gin-gonic/gin"
)

// taxHandler handles assessment, preview and ruleset requests.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
	now        func() time.Time
}

func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts, now: time.Now}
}

// registerTaxRoutes registers the stateless tax routes.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	tax := rg.Group("/tax")
	{
		tax.POST("/calculate", h.calculate)
		tax.GET("/rulesets", h.listRulesets)
	}
}

// registerBusinessTaxRoutes registers the assessment routes of a stored business.
func registerBusinessTaxRoutes(business *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	tax := business.Group("/tax")
	{
		tax.GET("/assessment", h.getAssessment)
		tax.GET("/assessment.pdf", h.getAssessmentPDF)
	}
}

// getAssessment godoc
// @Summary Assess a business
// @Description Estimates Companies Income Tax from the revenue and expenses recorded in the period
// @Tags tax
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD), defaults to 1 January of toDate's year"
// @Param toDate query string false "End date (YYYY-MM-DD), defaults to today"
// @Param ruleset query string false "Ruleset version, defaults to the configured default"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tax not enabled for this business"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/tax/assessment [get]
func (h *taxHandler) getAssessment(c *gin.Context) {
	assessment, ok := h.assess(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToAssessmentResponse(assessment))
}

// getAssessmentPDF godoc
// @Summary Download an assessment as PDF
// @Tags tax
// @Produce application/pdf
// @Param business_id path string true "Business ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Param ruleset query string false "Ruleset version"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tax not enabled for this business"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/tax/assessment.pdf [get]
func (h *taxHandler) getAssessmentPDF(c *gin.Context) {
	assessment, ok := h.assess(c)
	if !ok {
		return
	}

	pdf, err := report.RenderAssessmentPDF(assessment)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render assessment PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render report"})
		return
	}

	filename := fmt.Sprintf("tax-assessment-%s-%s.pdf",
		assessment.Period.From.Format(dto.DateLayout), assessment.Period.To.Format(dto.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *taxHandler) assess(c *gin.Context) (*domain.BusinessAssessment, bool) {
	userID, ok := requireUserID(c)
	if !ok {
		return nil, false
	}

	var params dto.AssessmentQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return nil, false
	}
	period, err := dto.ParsePeriod(params.FromDate, params.ToDate, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	assessment, err := h.taxService.AssessBusiness(c.Request.Context(), c.Param("business_id"), userID, period, strings.TrimSpace(params.Ruleset))
	if err != nil {
		respondWithError(c, err, "Business not found", "Failed to assess business")
		return nil, false
	}
	return assessment, true
}

// calculate godoc
// @Summary Preview a tax estimate
// @Description Runs the engine on the posted figures without storing anything
// @Tags tax
// @Accept json
// @Produce json
// @Param preview body dto.TaxPreviewRequest true "Revenue, expenses and settings"
// @Success 200 {object} domain.AssessmentResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/calculate [post]
func (h *taxHandler) calculate(c *gin.Context) {
	var req dto.TaxPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.taxService.Preview(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Ruleset not found", "Failed to calculate tax")
		return
	}

	c.JSON(http.StatusOK, result)
}

// listRulesets godoc
// @Summary List tax rulesets
// @Tags tax
// @Produce json
// @Success 200 {object} dto.ListRulesetsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/rulesets [get]
func (h *taxHandler) listRulesets(c *gin.Context) {
	c.JSON(http.StatusOK, h.taxService.ListRulesets(c.Request.Context()))
}
