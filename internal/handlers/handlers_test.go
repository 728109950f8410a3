package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/handlers"
	"github.com/SscSPs/sme_tax_estimator/internal/middleware"
	"github.com/SscSPs/sme_tax_estimator/internal/platform/config"
	"github.com/SscSPs/sme_tax_estimator/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	cfg             *config.Config
	mockUser        *MockUserService
	mockToken       *MockTokenService
	mockBusiness    *MockBusinessService
	mockExpense     *MockExpenseService
	mockRevenue     *MockRevenueService
	mockTax         *MockTaxService
	userID          string
	businessID      string
	authHeaderValue string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:     "test-secret-key-that-is-long-enough",
		IsProduction:  true,
		RateLimit:     "1000-M",
		AuthRateLimit: "3-M",
	}
	suite.mockUser = new(MockUserService)
	suite.mockToken = new(MockTokenService)
	suite.mockBusiness = new(MockBusinessService)
	suite.mockExpense = new(MockExpenseService)
	suite.mockRevenue = new(MockRevenueService)
	suite.mockTax = new(MockTaxService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		User:         suite.mockUser,
		TokenService: suite.mockToken,
		Business:     suite.mockBusiness,
		Expense:      suite.mockExpense,
		Revenue:      suite.mockRevenue,
		Tax:          suite.mockTax,
	}, nil)
	suite.Require().NoError(err)

	suite.userID = uuid.NewString()
	suite.businessID = uuid.NewString()
	suite.authHeaderValue = "Bearer " + suite.generateTestToken(suite.userID)
}

// generateTestToken creates a signed JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sme-tax-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", suite.authHeaderValue)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) businessURL(suffix string) string {
	return fmt.Sprintf("/api/v1/businesses/%s%s", suite.businessID, suffix)
}

// --- Health & auth ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAPIRequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/businesses", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBusiness.AssertNotCalled(suite.T(), "ListBusinesses", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegister() {
	req := dto.CreateUserRequest{Username: "chidi", Password: "password123", Name: "Chidi"}
	created := &domain.User{UserID: suite.userID, Username: "chidi", Name: "Chidi"}
	suite.mockUser.On("CreateUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, false)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(suite.userID, res.UserID)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	req := dto.CreateUserRequest{Username: "taken", Password: "password123", Name: "Taken"}
	suite.mockUser.On("CreateUser", mock.Anything, req).Return(nil, fmt.Errorf("username taken: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, false)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.do(http.MethodPost, "/api/v1/auth/register", dto.CreateUserRequest{Username: "chidi", Password: "short", Name: "Chidi"}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_StoresRefreshTokenHash() {
	user := &domain.User{UserID: suite.userID, Username: "chidi"}
	accessExpiry := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(24 * time.Hour)

	suite.mockUser.On("AuthenticateUser", mock.Anything, "chidi", "password123").Return(user, nil).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("access-token", accessExpiry, nil).Once()
	suite.mockToken.On("GenerateRefreshToken", mock.Anything, user).Return("raw-refresh", refreshExpiry, nil).Once()
	suite.mockUser.On("UpdateRefreshToken", mock.Anything, suite.userID, utils.HashRefreshToken("raw-refresh"), refreshExpiry).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "chidi", Password: "password123"}, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("access-token", res.Token)
	suite.Equal("raw-refresh", res.RefreshToken)
	suite.Equal(suite.userID, res.User.UserID)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "chidi", "wrong-password").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "chidi", Password: "wrong-password"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "chidi", "wrong-password").Return(nil, apperrors.ErrUnauthorized)

	codes := make([]int, 0, 4)
	for range 4 {
		w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "chidi", Password: "wrong-password"}, false)
		codes = append(codes, w.Code)
	}

	suite.Equal([]int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func (suite *HandlerTestSuite) TestRefresh_Expired() {
	suite.mockToken.On("ValidateAndParseRefreshToken", mock.Anything, suite.userID, "raw-refresh").
		Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/refresh", dto.RefreshTokenRequest{UserID: suite.userID, RefreshToken: "raw-refresh"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRefresh_Success() {
	user := &domain.User{UserID: suite.userID}
	expiry := time.Now().Add(time.Hour)
	suite.mockToken.On("ValidateAndParseRefreshToken", mock.Anything, suite.userID, "raw-refresh").Return(user, nil).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("new-access", expiry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/refresh", dto.RefreshTokenRequest{UserID: suite.userID, RefreshToken: "raw-refresh"}, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RefreshTokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("new-access", res.Token)
}

func (suite *HandlerTestSuite) TestLogout() {
	w := suite.do(http.MethodPost, "/api/v1/auth/logout", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockUser.On("ClearRefreshToken", mock.Anything, suite.userID).Return(nil).Once()
	w = suite.do(http.MethodPost, "/api/v1/auth/logout", nil, true)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetMe() {
	suite.mockUser.On("GetUserByID", mock.Anything, suite.userID).Return(&domain.User{UserID: suite.userID, Username: "chidi"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"username":"chidi"`)
}

// --- Businesses ---

func (suite *HandlerTestSuite) TestCreateBusiness() {
	req := dto.CreateBusinessRequest{Name: "Aba Shoes", TaxSettings: dto.TaxSettingsRequest{IsEnabled: true}}
	created := &domain.Business{BusinessID: suite.businessID, OwnerID: suite.userID, Name: "Aba Shoes"}
	suite.mockBusiness.On("CreateBusiness", mock.Anything, req, suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/businesses", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.BusinessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(suite.businessID, res.BusinessID)
}

func (suite *HandlerTestSuite) TestGetBusiness_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: fmt.Errorf("load: %w", apperrors.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "not the owner", err: fmt.Errorf("owner: %w", apperrors.ErrForbidden), wantStatus: http.StatusForbidden},
		{name: "unexpected", err: fmt.Errorf("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockBusiness.On("GetBusiness", mock.Anything, suite.businessID, suite.userID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodGet, suite.businessURL(""), nil, true)

			suite.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestUpdateTaxSettings() {
	req := dto.UpdateTaxSettingsRequest{TaxSettingsRequest: dto.TaxSettingsRequest{IsEnabled: true, Jurisdiction: "NG"}}
	updated := &domain.Business{BusinessID: suite.businessID, BusinessProfile: domain.BusinessProfile{TaxSettings: req.ToDomain()}}
	suite.mockBusiness.On("UpdateTaxSettings", mock.Anything, suite.businessID, req, suite.userID).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, suite.businessURL("/tax-settings"), req, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isEnabled":true`)
}

// --- Expenses ---

func (suite *HandlerTestSuite) TestCreateExpense_RejectsUnknownExpenseType() {
	body := map[string]any{"amount": 1000, "expenseType": "family", "expenseDate": "2026-02-01T00:00:00Z"}

	w := suite.do(http.MethodPost, suite.businessURL("/expenses"), body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpense.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateExpense_LenientAmount() {
	body := map[string]any{"amount": "12,500.75", "expenseType": "business", "flowType": "out", "category": "COST_OF_GOODS", "expenseDate": "2026-02-01T00:00:00Z"}
	created := &domain.Expense{ExpenseID: uuid.NewString(), BusinessID: suite.businessID}
	suite.mockExpense.On("CreateExpense", mock.Anything, suite.businessID, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Amount.Equal(decimal.RequireFromString("12500.75")) && req.Category == "COST_OF_GOODS"
	}), suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, suite.businessURL("/expenses"), body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockExpense.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListExpenses_PassesPagingParams() {
	next := "next-page"
	suite.mockExpense.On("ListExpenses", mock.Anything, suite.businessID, suite.userID, mock.MatchedBy(func(p dto.ListExpensesParams) bool {
		return p.Limit == 50 && p.FromDate == "2026-01-01" && p.NextToken != nil && *p.NextToken == "abc"
	})).Return(&dto.ListExpensesResponse{Expenses: []dto.ExpenseResponse{}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, suite.businessURL("/expenses?fromDate=2026-01-01&nextToken=abc"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"nextToken":"next-page"`)
}

func (suite *HandlerTestSuite) TestListExpenses_LimitTooLarge() {
	w := suite.do(http.MethodGet, suite.businessURL("/expenses?limit=1000"), nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteExpense_NotFound() {
	expenseID := uuid.NewString()
	suite.mockExpense.On("DeleteExpense", mock.Anything, suite.businessID, expenseID, suite.userID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, suite.businessURL("/expenses/"+expenseID), nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Revenue ---

func (suite *HandlerTestSuite) TestListRevenue_InvertedPeriod() {
	w := suite.do(http.MethodGet, suite.businessURL("/revenue?fromDate=2026-05-01&toDate=2026-04-01"), nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRevenue.AssertNotCalled(suite.T(), "ListRevenue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordRevenue() {
	body := map[string]any{"amount": 250000, "entryDate": "2026-04-03T00:00:00Z"}
	entry := &domain.RevenueEntry{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(250000), FlowType: domain.FlowIn}
	suite.mockRevenue.On("RecordRevenue", mock.Anything, suite.businessID, mock.AnythingOfType("dto.CreateRevenueRequest"), suite.userID).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, suite.businessURL("/revenue"), body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"flowType":"in"`)
}

// --- Tax ---

func (suite *HandlerTestSuite) sampleAssessment() *domain.BusinessAssessment {
	period := domain.Period{
		From: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	return &domain.BusinessAssessment{
		BusinessID:   suite.businessID,
		BusinessName: "Aba Shoes",
		Period:       period,
		GeneratedAt:  time.Now().UTC(),
		Result:       taxengine.Calculate(decimal.NewFromInt(70_000_000), nil, domain.BusinessProfile{}),
	}
}

func (suite *HandlerTestSuite) TestGetAssessment() {
	a := suite.sampleAssessment()
	suite.mockTax.On("AssessBusiness", mock.Anything, suite.businessID, suite.userID, a.Period, "ng-cit-v0.9").Return(a, nil).Once()

	w := suite.do(http.MethodGet, suite.businessURL("/tax/assessment?fromDate=2026-01-01&toDate=2026-06-30&ruleset=ng-cit-v0.9"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.AssessmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("2026-01-01", res.FromDate)
	suite.Equal("2026-06-30", res.ToDate)
	suite.Equal(domain.BandMediumCompany, res.Assessment.TaxBand)
}

func (suite *HandlerTestSuite) TestGetAssessment_TaxNotEnabled() {
	suite.mockTax.On("AssessBusiness", mock.Anything, suite.businessID, suite.userID, mock.Anything, "").Return(nil, apperrors.ErrTaxNotEnabled).Once()

	w := suite.do(http.MethodGet, suite.businessURL("/tax/assessment"), nil, true)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAssessmentPDF() {
	a := suite.sampleAssessment()
	suite.mockTax.On("AssessBusiness", mock.Anything, suite.businessID, suite.userID, a.Period, "").Return(a, nil).Once()

	w := suite.do(http.MethodGet, suite.businessURL("/tax/assessment.pdf?fromDate=2026-01-01&toDate=2026-06-30"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "tax-assessment-2026-01-01-2026-06-30.pdf")
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func (suite *HandlerTestSuite) TestCalculate_UnknownRuleset() {
	suite.mockTax.On("Preview", mock.Anything, mock.AnythingOfType("dto.TaxPreviewRequest")).
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, taxengine.ErrUnknownRuleset)).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/calculate", map[string]any{"revenue": 1000, "rulesetVersion": "nope"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalculate() {
	result := taxengine.Calculate(decimal.NewFromInt(10_000_000), nil, domain.BusinessProfile{})
	suite.mockTax.On("Preview", mock.Anything, mock.MatchedBy(func(req dto.TaxPreviewRequest) bool {
		return req.Revenue.Equal(decimal.NewFromInt(10_000_000)) && len(req.Expenses) == 1
	})).Return(&result, nil).Once()

	body := map[string]any{
		"revenue":  "10000000",
		"expenses": []map[string]any{{"amount": "oops", "expenseType": "business", "flowType": "out"}},
	}
	w := suite.do(http.MethodPost, "/api/v1/tax/calculate", body, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"taxBand":"EXEMPT"`)
}

func (suite *HandlerTestSuite) TestListRulesets() {
	suite.mockTax.On("ListRulesets", mock.Anything).Return(dto.ListRulesetsResponse{Default: "ng-cit-v1.0"}).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/rulesets", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"default":"ng-cit-v1.0"`)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
