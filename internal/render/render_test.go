package render_test

import (
	"strings"
	"testing"

	"shopfront/internal/models"
	"shopfront/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestProductGrid_Empty(t *testing.T) {
	got := string(render.ProductGrid(nil))
	assert.Equal(t, `<div class="loading">No products found</div>`, got)
}

func TestProductGrid_OutOfStock(t *testing.T) {
	got := string(render.ProductGrid([]models.Product{{
		ID:            1,
		Name:          "Mug",
		Price:         9.5,
		StockQuantity: 0,
	}}))

	assert.Contains(t, got, "Out of Stock")
	assert.Contains(t, got, "disabled")
	assert.NotContains(t, got, "Add to Cart")
}

func TestProductGrid_InStock(t *testing.T) {
	got := string(render.ProductGrid([]models.Product{{
		ID:            1,
		Name:          "Mug",
		Description:   "A fine mug",
		Price:         9.5,
		StockQuantity: 3,
	}}))

	assert.Contains(t, got, "Add to Cart")
	assert.NotContains(t, got, "disabled")
	assert.Contains(t, got, "$9.50")
	assert.Contains(t, got, "Stock: 3")
	assert.Contains(t, got, `max="3"`)
}

func TestProductGrid_MissingDescriptionFallback(t *testing.T) {
	got := string(render.ProductGrid([]models.Product{{ID: 1, Name: "Mug", StockQuantity: 1}}))
	assert.Contains(t, got, "No description")
}

func TestProductGrid_EscapesMarkup(t *testing.T) {
	got := string(render.ProductGrid([]models.Product{{
		ID:            1,
		Name:          `<script>alert("x")</script>`,
		StockQuantity: 1,
	}}))
	assert.NotContains(t, got, "<script>")
}

func TestCartView_Empty(t *testing.T) {
	assert.Equal(t, `<p class="empty-cart">Your cart is empty</p>`, string(render.CartView(nil)))
	assert.Equal(t, `<p class="empty-cart">Your cart is empty</p>`, string(render.CartView(&models.Cart{})))
}

func TestCartView_ServerTotalsVerbatim(t *testing.T) {
	// Totals deliberately inconsistent with the lines: the renderer must
	// show the server's values without recomputation.
	cart := &models.Cart{
		Items: []models.CartItem{
			{Product: models.Product{ID: 1, Name: "Mug", Price: 9.5}, Quantity: 2, Subtotal: 19},
		},
		ItemCount: 7,
		Total:     123.45,
	}
	got := string(render.CartView(cart))

	assert.Contains(t, got, `<span id="summary-items">7</span>`)
	assert.Contains(t, got, `<span id="summary-total">$123.45</span>`)
	assert.Contains(t, got, "$19.00")
	assert.Contains(t, got, "$9.50 x 2")
}

func TestOrderHistory_Empty(t *testing.T) {
	assert.Equal(t, `<p class="empty-orders">No orders yet</p>`, string(render.OrderHistory(nil)))
}

func TestOrderHistory_Card(t *testing.T) {
	got := string(render.OrderHistory([]models.Order{{
		OrderNumber:     "ORD-1001",
		Status:          "pending",
		TotalAmount:     59.97,
		ShippingAddress: "12 Main St",
		CreatedAt:       "2024-06-02T09:30:00",
		Items: []models.OrderItem{
			{ProductName: "Mug", Quantity: 3, Subtotal: 28.5},
		},
	}}))

	assert.Contains(t, got, "Order #ORD-1001")
	assert.Contains(t, got, "PENDING")
	assert.Contains(t, got, "2024-06-02")
	assert.NotContains(t, got, "09:30")
	assert.Contains(t, got, "Mug x3")
	assert.Contains(t, got, "$28.50")
	assert.Contains(t, got, "$59.97")
	assert.Contains(t, got, "12 Main St")
}

func TestUsersTable_Placeholders(t *testing.T) {
	empty := string(render.UsersTable(nil))
	assert.Contains(t, empty, "No users found")
	assert.Equal(t, 1, strings.Count(empty, "<tr>"), "empty list renders a single placeholder row")

	got := string(render.UsersTable([]models.User{{
		ID:        1,
		Username:  "alice",
		Email:     "alice@example.com",
		IsAdmin:   true,
		CreatedAt: "2024-05-01T10:00:00",
	}}))
	assert.Contains(t, got, "N/A", "missing full name renders the fallback")
	assert.Contains(t, got, "badge-admin")
}

func TestOrdersTable(t *testing.T) {
	assert.Contains(t, string(render.OrdersTable(nil)), "No orders found")

	got := string(render.OrdersTable([]models.Order{{
		OrderNumber: "ORD-1",
		UserID:      2,
		TotalAmount: 10,
		Status:      "paid",
		Items:       []models.OrderItem{{}, {}},
		CreatedAt:   "2024-06-02T09:30:00",
	}}))
	assert.Contains(t, got, "2 items")
	assert.Contains(t, got, "$10.00")
}

func TestProductsTable(t *testing.T) {
	assert.Contains(t, string(render.ProductsTable(nil)), "No products found")

	got := string(render.ProductsTable([]models.Product{{ID: 3, Name: "Mug", Price: 9.5, StockQuantity: 4, Category: "kitchen"}}))
	assert.Contains(t, got, "/admin/products/3/stock")
	assert.Contains(t, got, "/admin/products/3/delete")
}

func TestStatsCards(t *testing.T) {
	got := string(render.StatsCards(&models.AdminStats{
		TotalUsers:    5,
		TotalProducts: 10,
		TotalOrders:   2,
		TotalRevenue:  99.9,
	}))
	assert.Contains(t, got, `id="statUsers">5<`)
	assert.Contains(t, got, "$99.90")
}

func TestPage_SessionChrome(t *testing.T) {
	loggedOut := string(render.Page(render.Document{Page: "home", Title: "Home"}))
	assert.Contains(t, loggedOut, `id="cart-count">0<`)
	assert.Contains(t, loggedOut, ">Login<")
	assert.NotContains(t, loggedOut, "admin-btn")

	admin := string(render.Page(render.Document{
		Page:      "home",
		Title:     "Home",
		Session:   &models.Session{UserID: 1, Username: "alice", IsAdmin: true},
		CartCount: 3,
	}))
	assert.Contains(t, admin, "Hi, alice!")
	assert.Contains(t, admin, `id="cart-count">3<`)
	assert.Contains(t, admin, "admin-btn")
	assert.Contains(t, admin, ">Logout<")

	user := string(render.Page(render.Document{
		Page:    "home",
		Title:   "Home",
		Session: &models.Session{UserID: 2, Username: "bob"},
	}))
	assert.NotContains(t, user, "admin-btn", "admin affordance hidden for non-admin sessions")
}

func TestPage_Flash(t *testing.T) {
	got := string(render.Page(render.Document{
		Page:      "products",
		Title:     "Products",
		Flash:     "Added to cart!",
		FlashKind: "success",
	}))
	assert.Contains(t, got, `class="toast success show">Added to cart!`)
}
