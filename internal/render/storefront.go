package render

import (
	"html/template"

	"shopfront/internal/models"
)

var productGridTmpl = mustParse("products", `{{if not .}}<div class="loading">No products found</div>{{else}}{{range .}}<div class="product-card">
  <div class="product-image">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{else}}&#128230;{{end}}</div>
  <div class="product-info">
    <div class="product-name">{{.Name}}</div>
    <div class="product-description">{{if .Description}}{{.Description}}{{else}}No description{{end}}</div>
    <div class="product-price">{{price .Price}}</div>
    <div class="product-stock">Stock: {{.StockQuantity}}</div>
    <form class="product-actions" method="post" action="/cart/add">
      <input type="hidden" name="product_id" value="{{.ID}}">
      <input type="number" name="quantity" value="1" min="1" max="{{.StockQuantity}}">
      <button type="submit" class="btn-primary"{{if not .InStock}} disabled{{end}}>{{if not .InStock}}Out of Stock{{else}}Add to Cart{{end}}</button>
    </form>
  </div>
</div>
{{end}}{{end}}`)

// ProductGrid renders the catalog snapshot. A product with no stock has
// its action control disabled and relabeled.
func ProductGrid(products []models.Product) template.HTML {
	return execute(productGridTmpl, products)
}

var cartViewTmpl = mustParse("cart", `{{if .Empty}}<p class="empty-cart">Your cart is empty</p>{{else}}{{range .Items}}<div class="cart-item">
  <div class="cart-item-image">&#128230;</div>
  <div class="cart-item-info">
    <div class="cart-item-name">{{.Product.Name}}</div>
    <div class="cart-item-price">{{price .Product.Price}} x {{.Quantity}}</div>
  </div>
  <div class="cart-item-price">{{price .Subtotal}}</div>
  <form method="post" action="/cart/remove"><input type="hidden" name="product_id" value="{{.Product.ID}}"><button type="submit" class="btn-primary">Remove</button></form>
</div>
{{end}}<div class="cart-summary">
  <div>Items: <span id="summary-items">{{.ItemCount}}</span></div>
  <div>Total: <span id="summary-total">{{price .Total}}</span></div>
  <a href="/checkout" class="btn-primary">Checkout</a>
</div>{{end}}`)

// CartView renders the cart snapshot. Item count and total come from
// the server and are shown as received, never recomputed.
func CartView(cart *models.Cart) template.HTML {
	if cart == nil {
		cart = &models.Cart{}
	}
	return execute(cartViewTmpl, cart)
}

var orderHistoryTmpl = mustParse("orders", `{{if not .}}<p class="empty-orders">No orders yet</p>{{else}}{{range .}}<div class="order-card">
  <div class="order-header">
    <div>
      <div class="order-number">Order #{{.OrderNumber}}</div>
      <div class="order-date">{{date .CreatedAt}}</div>
    </div>
    <span class="order-status {{.Status}}">{{upper .Status}}</span>
  </div>
  <div class="order-items">
  {{range .Items}}<div class="order-item"><span>{{.ProductName}} x{{.Quantity}}</span><span>{{price .Subtotal}}</span></div>
  {{end}}</div>
  <div class="order-total"><span>Total</span><span>{{price .TotalAmount}}</span></div>
  <div class="order-shipping"><strong>Shipping:</strong> {{.ShippingAddress}}</div>
</div>
{{end}}{{end}}`)

// OrderHistory renders the user's past orders, newest layout matching
// the storefront's order cards.
func OrderHistory(orders []models.Order) template.HTML {
	return execute(orderHistoryTmpl, orders)
}

var checkoutTmpl = mustParse("checkout", `<div class="checkout-summary">
  <div>Items: {{.ItemCount}}</div>
  <div>Total: {{price .Total}}</div>
</div>
<form id="checkout-form" method="post" action="/checkout">
  <label>Shipping Address <textarea name="shipping_address" required></textarea></label>
  <label>Payment Method <select name="payment_method">
    <option value="credit_card">Credit Card</option>
    <option value="paypal">PayPal</option>
    <option value="cash_on_delivery">Cash on Delivery</option>
  </select></label>
  <button type="submit" class="btn-primary">Place Order</button>
</form>`)

// CheckoutView renders the checkout form with the cart totals above it.
func CheckoutView(cart *models.Cart) template.HTML {
	if cart == nil {
		cart = &models.Cart{}
	}
	return execute(checkoutTmpl, cart)
}

var authTmpl = mustParse("auth", `<div class="auth-tabs">
  <span class="auth-tab{{if not .RegisterActive}} active{{end}}">Login</span>
  <span class="auth-tab{{if .RegisterActive}} active{{end}}">Register</span>
</div>
<form id="login-form" class="auth-form{{if not .RegisterActive}} active{{end}}" method="post" action="/login">
  <input type="text" name="username" placeholder="Username" value="{{.Username}}" required>
  <input type="password" name="password" placeholder="Password" required>
  <div id="login-error" class="form-error">{{.LoginError}}</div>
  <button type="submit" class="btn-primary">Login</button>
</form>
<form id="register-form" class="auth-form{{if .RegisterActive}} active{{end}}" method="post" action="/register">
  <input type="text" name="full_name" placeholder="Full Name" required>
  <input type="text" name="username" placeholder="Username" required>
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <div id="register-error" class="form-error">{{.RegisterError}}</div>
  <button type="submit" class="btn-primary">Register</button>
</form>`)

// AuthForms carries the login page's inline state: which tab is open,
// any inline error, and a username pre-filled after registration.
type AuthForms struct {
	RegisterActive bool
	Username       string
	LoginError     string
	RegisterError  string
}

func AuthView(forms AuthForms) template.HTML {
	return execute(authTmpl, forms)
}

var documentTmpl = mustParse("document", `<!DOCTYPE html>
<html>
<head><title>Shopfront</title></head>
<body>
<nav class="navbar">
  <a href="/" class="brand">Shopfront</a>
  <a href="/products">Products</a>
  <a href="/cart">Cart <span id="cart-count">{{.CartCount}}</span></a>
  <a href="/orders">Orders</a>
  {{if .Session}}<span id="user-info">Hi, {{.Session.Username}}!</span>{{if .Session.IsAdmin}}<a id="admin-btn" href="/admin">Admin</a>{{end}}<form method="post" action="/logout" class="inline"><button id="auth-btn" type="submit">Logout</button></form>{{else}}<a id="auth-btn" href="/login">Login</a>{{end}}
</nav>
{{if .Flash}}<div class="toast {{.FlashKind}} show">{{.Flash}}</div>{{end}}
<main class="page active" id="{{.Page}}-page">
<h1>{{.Title}}</h1>
{{.Body}}
</main>
</body>
</html>`)

// Document is the full page the web shell serves: chrome, the one
// active page, and the pending flash message if any.
type Document struct {
	Page      string
	Title     string
	Session   *models.Session
	CartCount int
	Flash     string
	FlashKind string
	Body      template.HTML
}

func Page(doc Document) template.HTML {
	return execute(documentTmpl, doc)
}
