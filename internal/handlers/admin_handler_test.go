package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shopfront/internal/handlers"
	"shopfront/internal/models"
	"shopfront/internal/notify"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdminClient struct {
	mock.Mock
}

func (m *MockAdminClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

func (m *MockAdminClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAdminClient) AdminOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockAdminClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockAdminClient) CreateProduct(ctx context.Context, req models.NewProductRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAdminClient) UpdateProductStock(ctx context.Context, productID, stockQuantity int) error {
	args := m.Called(ctx, productID, stockQuantity)
	return args.Error(0)
}

func (m *MockAdminClient) DeleteProduct(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type fakeConfirmer struct {
	answer bool
}

func (f fakeConfirmer) Confirm(_ *http.Request, _ string) bool { return f.answer }

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDashboard_RendersAllSections(t *testing.T) {
	client := new(MockAdminClient)
	client.On("AdminStats", mock.Anything).Return(&models.AdminStats{TotalUsers: 5, TotalRevenue: 99.9}, nil)
	client.On("AdminUsers", mock.Anything).Return([]models.User{{ID: 1, Username: "alice"}}, nil)
	client.On("AdminOrders", mock.Anything).Return([]models.Order{}, nil)
	client.On("ListProducts", mock.Anything).Return([]models.Product{{ID: 2, Name: "Mug"}}, nil)

	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{true}, zerolog.Nop())
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "No orders found")
	assert.Contains(t, body, "Mug")
	assert.Contains(t, body, "$99.90")
}

func TestDashboard_TableFailuresAreIndependent(t *testing.T) {
	client := new(MockAdminClient)
	client.On("AdminStats", mock.Anything).Return(nil, errBoom{})
	client.On("AdminUsers", mock.Anything).Return(nil, errBoom{})
	client.On("AdminOrders", mock.Anything).Return([]models.Order{{OrderNumber: "ORD-1"}}, nil)
	client.On("ListProducts", mock.Anything).Return([]models.Product{}, nil)

	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{true}, zerolog.Nop())
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Error loading users")
	assert.Contains(t, body, "ORD-1", "a failed table must not blank the others")
	assert.Contains(t, body, "No products found")
}

func TestDeleteProduct_DeniedConfirmationSkipsCall(t *testing.T) {
	client := new(MockAdminClient)
	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{false}, zerolog.Nop())

	req := mux.SetURLVars(postForm("/admin/products/9/delete", url.Values{}), map[string]string{"id": "9"})
	rec := httptest.NewRecorder()
	h.DeleteProduct(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	client.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
}

func TestDeleteProduct_Confirmed(t *testing.T) {
	client := new(MockAdminClient)
	client.On("DeleteProduct", mock.Anything, 9).Return(nil).Once()

	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{true}, zerolog.Nop())
	req := mux.SetURLVars(postForm("/admin/products/9/delete", url.Values{}), map[string]string{"id": "9"})
	rec := httptest.NewRecorder()
	h.DeleteProduct(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	client.AssertExpectations(t)
}

func TestUpdateStock_LocalValidation(t *testing.T) {
	client := new(MockAdminClient)
	flash := notify.NewFlash()
	h := handlers.NewAdminHandler(client, flash, fakeConfirmer{true}, zerolog.Nop())

	req := mux.SetURLVars(
		postForm("/admin/products/9/stock", url.Values{"stock_quantity": {"-4"}}),
		map[string]string{"id": "9"},
	)
	rec := httptest.NewRecorder()
	h.UpdateStock(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	message, kind, ok := flash.Take()
	require.True(t, ok)
	assert.Equal(t, "Invalid stock quantity!", message)
	assert.Equal(t, notify.KindError, kind)
	client.AssertNotCalled(t, "UpdateProductStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduct_DefaultImage(t *testing.T) {
	client := new(MockAdminClient)
	client.On("CreateProduct", mock.Anything, models.NewProductRequest{
		Name:          "Mug",
		Price:         9.5,
		StockQuantity: 4,
		Category:      "kitchen",
		ImageURL:      "/static/images/default-product.jpg",
	}).Return(nil).Once()

	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{true}, zerolog.Nop())
	req := postForm("/admin/products", url.Values{
		"name":           {"Mug"},
		"price":          {"9.5"},
		"stock_quantity": {"4"},
		"category":       {"kitchen"},
	})
	rec := httptest.NewRecorder()
	h.CreateProduct(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	client.AssertExpectations(t)
}

func TestExports(t *testing.T) {
	client := new(MockAdminClient)
	client.On("AdminStats", mock.Anything).Return(&models.AdminStats{}, nil)
	client.On("AdminUsers", mock.Anything).Return([]models.User{{ID: 1, Username: "alice", Email: "a@example.com", CreatedAt: "2024-05-01T10:00:00"}}, nil)
	client.On("AdminOrders", mock.Anything).Return([]models.Order{}, nil)
	client.On("ListProducts", mock.Anything).Return([]models.Product{}, nil)

	h := handlers.NewAdminHandler(client, notify.NewFlash(), fakeConfirmer{true}, zerolog.Nop())

	// Exports read the tables as last loaded by the dashboard.
	h.Dashboard(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))

	rec := httptest.NewRecorder()
	h.ExportUsers(rec, httptest.NewRequest(http.MethodGet, "/admin/export/users.csv", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="users.csv"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,username,email,full_name,is_admin,created_at\n"))
	assert.Contains(t, rec.Body.String(), `"alice"`)
}

func TestExport_NoDataRedirects(t *testing.T) {
	client := new(MockAdminClient)
	flash := notify.NewFlash()
	h := handlers.NewAdminHandler(client, flash, fakeConfirmer{true}, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ExportOrders(rec, httptest.NewRequest(http.MethodGet, "/admin/export/orders.csv", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	message, _, ok := flash.Take()
	require.True(t, ok)
	assert.Equal(t, "No orders data to export", message)
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
