package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferencesService ---
type MockPreferencesService struct {
	mock.Mock
}

func (m *MockPreferencesService) GetPreferences(ctx context.Context) (*domain.SystemPreferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemPreferences), args.Error(1)
}

func (m *MockPreferencesService) ListPreferencesHistory(ctx context.Context, limit int) ([]domain.PreferencesChange, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PreferencesChange), args.Error(1)
}

func (m *MockPreferencesService) UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest, userID string) (*domain.SystemPreferences, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemPreferences), args.Error(1)
}

func (m *MockPreferencesService) Bootstrap(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPreferencesService) Reload(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PreferencesSvcFacade = (*MockPreferencesService)(nil)

// --- Test Suite ---
type PreferencesHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPreferencesService
	userID      string
	token       string
}

func (suite *PreferencesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockService = new(MockPreferencesService)
	suite.userID = uuid.NewString()
	suite.token = generateTestToken(&suite.Suite, suite.userID)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPreferencesRoutes(v1, suite.mockService)
}

func (suite *PreferencesHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PreferencesHandlerTestSuite) TestGetPreferences_Stored() {
	updated := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	prefs := &domain.SystemPreferences{
		Currency:    "USD",
		Locale:      "en-US",
		AuditFields: domain.AuditFields{LastUpdatedAt: updated, LastUpdatedBy: "editor"},
	}
	suite.mockService.On("GetPreferences", mock.Anything).Return(prefs, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.PreferencesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.CurrencyCode)
	suite.Equal("$", res.Symbol)
	suite.True(res.Stored)
	suite.Require().NotNil(res.LastUpdatedAt)
	suite.True(updated.Equal(*res.LastUpdatedAt))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PreferencesHandlerTestSuite) TestGetPreferences_Defaults() {
	suite.mockService.On("GetPreferences", mock.Anything).Return(&domain.SystemPreferences{Currency: "GBP", Locale: "en-GB"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.PreferencesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Stored)
	suite.Nil(res.LastUpdatedAt)
	suite.Equal("£", res.Symbol)
}

func (suite *PreferencesHandlerTestSuite) TestGetPreferences_ServiceError() {
	suite.mockService.On("GetPreferences", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *PreferencesHandlerTestSuite) TestUpdatePreferences_Success() {
	req := dto.UpdatePreferencesRequest{CurrencyCode: "EUR", Locale: "fr-FR"}
	saved := &domain.SystemPreferences{
		Currency:    "EUR",
		Locale:      "fr-FR",
		AuditFields: domain.AuditFields{LastUpdatedAt: time.Now(), LastUpdatedBy: suite.userID},
	}
	suite.mockService.On("UpdatePreferences", mock.Anything, req, suite.userID).Return(saved, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences", `{"currencyCode": "EUR", "locale": "fr-FR"}`)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.PreferencesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("EUR", res.CurrencyCode)
	suite.Equal("€", res.Symbol)
	suite.Equal(suite.userID, res.LastUpdatedBy)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PreferencesHandlerTestSuite) TestUpdatePreferences_BindingErrors() {
	for _, body := range []string{
		`{}`,
		`{"currencyCode": "usd"}`,
		`{"currencyCode": "DOLLAR"}`,
		`not json`,
	} {
		w := suite.do(http.MethodPut, "/api/v1/preferences", body)
		suite.Equal(http.StatusBadRequest, w.Code, "body %s", body)
	}
	suite.mockService.AssertNotCalled(suite.T(), "UpdatePreferences", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PreferencesHandlerTestSuite) TestUpdatePreferences_ServiceValidationError() {
	suite.mockService.On("UpdatePreferences", mock.Anything, mock.AnythingOfType("dto.UpdatePreferencesRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: invalid locale", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences", `{"currencyCode": "USD", "locale": "!!"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid locale")
}

func (suite *PreferencesHandlerTestSuite) TestUpdatePreferences_ServiceError() {
	suite.mockService.On("UpdatePreferences", mock.Anything, mock.AnythingOfType("dto.UpdatePreferencesRequest"), suite.userID).
		Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences", `{"currencyCode": "USD"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error": "Failed to update preferences"}`, w.Body.String())
}

func (suite *PreferencesHandlerTestSuite) TestListPreferencesHistory() {
	changedAt := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	changes := []domain.PreferencesChange{{Currency: "USD", Locale: "en-US", ChangedAt: changedAt, ChangedBy: "editor"}}
	suite.mockService.On("ListPreferencesHistory", mock.Anything, 5).Return(changes, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences/history?limit=5", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res []dto.PreferencesChangeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("USD", res[0].CurrencyCode)
	suite.Equal("editor", res[0].ChangedBy)
}

func (suite *PreferencesHandlerTestSuite) TestListPreferencesHistory_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/preferences/history?limit=many", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Suite ---
func TestPreferencesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferencesHandlerTestSuite))
}
