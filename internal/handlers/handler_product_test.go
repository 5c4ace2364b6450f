package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
	"github.com/credistore/credistore_backend/internal/handlers"
	"github.com/credistore/credistore_backend/pkg/config"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, productUUID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, productUUID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) DeleteProduct(ctx context.Context, productUUID string) error {
	args := m.Called(ctx, productUUID)
	return args.Error(0)
}
func (m *MockProductService) GetProductByID(ctx context.Context, productUUID string) (*domain.Product, error) {
	args := m.Called(ctx, productUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) FindProductByBarcode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite ---
type ProductHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProductService *MockProductService
	jwtSecret          string
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ProductHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "credistore-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockProductService = new(MockProductService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	container := &portssvc.ServiceContainer{Product: suite.mockProductService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ProductHandlerTestSuite) performRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("operator"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	reqBody := dto.CreateProductRequest{
		Name:      "Arroz",
		Price:     decimal.NewFromInt(50),
		CostPrice: decimal.NewFromInt(0),
		Type:      domain.GranosBasicos,
		Barcode:   "750100200300",
		Stock:     10,
		MinStock:  4,
	}
	expected := &domain.Product{
		UUID:      uuid.NewString(),
		Name:      "Arroz",
		Price:     decimal.NewFromInt(50),
		Type:      domain.GranosBasicos,
		Stock:     10,
		MinStock:  4,
		Barcodes:  []domain.Barcode{{Barcode: "750100200300"}},
		CreatedAt: time.Now().UTC(),
	}
	suite.mockProductService.On("CreateProduct", mock.Anything, reqBody).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.performRequest(http.MethodPost, "/api/v1/products", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.UUID, resp.UUID)
	suite.Equal("Arroz", resp.Name)
	suite.Require().Len(resp.Barcodes, 1)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_ValidationFailure() {
	// Unknown product type is rejected by binding before the service is hit.
	body := []byte(`{"name":"Arroz","price":"50","type":"electronica"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/products", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "CreateProduct")
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	productID := uuid.NewString()
	suite.mockProductService.On("GetProductByID", mock.Anything, productID).
		Return(nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/products/"+productID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestListProducts_Success() {
	expected := []domain.Product{
		{UUID: uuid.NewString(), Name: "Arroz", Type: domain.GranosBasicos},
		{UUID: uuid.NewString(), Name: "Gaseosa", Type: domain.Bebidas},
	}
	suite.mockProductService.On("ListProducts", mock.Anything).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/products", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestFindByBarcode_Success() {
	expected := &domain.Product{
		UUID:     uuid.NewString(),
		Name:     "Avena",
		Type:     domain.GranosBasicos,
		Barcodes: []domain.Barcode{{Barcode: "7501002003004"}},
	}
	suite.mockProductService.On("FindProductByBarcode", mock.Anything, "7501002003004").Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/products/barcode/7501002003004", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Avena", resp.Name)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct_Success() {
	productID := uuid.NewString()
	suite.mockProductService.On("DeleteProduct", mock.Anything, productID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/products/"+productID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestRequestWithoutTokenIsRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "ListProducts")
}
