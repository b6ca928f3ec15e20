package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shopfront/internal/models"

	"github.com/rs/zerolog"
)

// Client performs one round trip per call against the remote storefront
// API. It keeps no cache, retries nothing and leaves deadlines to the
// caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs the request and decodes a successful payload into out.
// A transport failure becomes an ErrNetwork; a non-2xx status becomes
// an ErrRemote carrying the server's error message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload errorPayload
		// Best effort; an undecodable error body still yields ErrRemote.
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		message := payload.Error
		if message == "" {
			message = payload.Message
		}
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("error", message).
			Msg("Remote rejected request")
		return remoteErr(resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return networkErr(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users/register", req, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetCart(ctx context.Context, userID int) (*models.Cart, error) {
	var cart models.Cart
	path := fmt.Sprintf("/cart/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, userID int, req models.AddToCartRequest) (*models.Cart, error) {
	var resp struct {
		Cart *models.Cart `json:"cart"`
	}
	path := fmt.Sprintf("/cart/%d/add", userID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, userID, productID int) (*models.Cart, error) {
	var resp struct {
		Cart *models.Cart `json:"cart"`
	}
	path := fmt.Sprintf("/cart/%d/remove/%d", userID, productID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) error {
	return c.do(ctx, http.MethodPost, "/orders", req, nil)
}

func (c *Client) ListUserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	path := fmt.Sprintf("/orders/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) AdminOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) CreateProduct(ctx context.Context, req models.NewProductRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/products", req, nil)
}

func (c *Client) UpdateProductStock(ctx context.Context, productID, stockQuantity int) error {
	path := fmt.Sprintf("/admin/products/%d", productID)
	return c.do(ctx, http.MethodPut, path, models.UpdateStockRequest{StockQuantity: stockQuantity}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	path := fmt.Sprintf("/admin/products/%d", productID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
