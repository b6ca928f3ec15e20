package render

import (
	"html/template"

	"shopfront/internal/models"
)

var statsTmpl = mustParse("stats", `<div class="stats-grid">
  <div class="stat-card"><div class="stat-value" id="statUsers">{{.TotalUsers}}</div><div class="stat-label">Users</div></div>
  <div class="stat-card"><div class="stat-value" id="statProducts">{{.TotalProducts}}</div><div class="stat-label">Products</div></div>
  <div class="stat-card"><div class="stat-value" id="statOrders">{{.TotalOrders}}</div><div class="stat-label">Orders</div></div>
  <div class="stat-card"><div class="stat-value" id="statRevenue">{{price .TotalRevenue}}</div><div class="stat-label">Revenue</div></div>
</div>`)

func StatsCards(stats *models.AdminStats) template.HTML {
	if stats == nil {
		stats = &models.AdminStats{}
	}
	return execute(statsTmpl, stats)
}

var usersTableTmpl = mustParse("users", `{{if not .}}<tr><td colspan="6" class="placeholder">No users found</td></tr>{{else}}{{range .}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Username}}</td>
  <td>{{.Email}}</td>
  <td>{{if .FullName}}{{.FullName}}{{else}}N/A{{end}}</td>
  <td>{{if .IsAdmin}}<span class="badge badge-admin">Admin</span>{{else}}<span class="badge badge-user">User</span>{{end}}</td>
  <td>{{date .CreatedAt}}</td>
</tr>
{{end}}{{end}}`)

// UsersTable renders the admin user listing. A missing full name shows
// the N/A placeholder, never a blank cell.
func UsersTable(users []models.User) template.HTML {
	return execute(usersTableTmpl, users)
}

var ordersTableTmpl = mustParse("adminOrders", `{{if not .}}<tr><td colspan="6" class="placeholder">No orders found</td></tr>{{else}}{{range .}}<tr>
  <td>{{.OrderNumber}}</td>
  <td>{{.UserID}}</td>
  <td>{{price .TotalAmount}}</td>
  <td>{{.Status}}</td>
  <td>{{len .Items}} items</td>
  <td>{{date .CreatedAt}}</td>
</tr>
{{end}}{{end}}`)

func OrdersTable(orders []models.Order) template.HTML {
	return execute(ordersTableTmpl, orders)
}

var productsTableTmpl = mustParse("adminProducts", `{{if not .}}<tr><td colspan="6" class="placeholder">No products found</td></tr>{{else}}{{range .}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Name}}</td>
  <td>{{price .Price}}</td>
  <td>{{.StockQuantity}}</td>
  <td>{{.Category}}</td>
  <td>
    <form method="post" action="/admin/products/{{.ID}}/stock" class="inline"><input type="number" name="stock_quantity" min="0" value="{{.StockQuantity}}"><button type="submit" class="btn-action btn-edit">Update</button></form>
    <form method="post" action="/admin/products/{{.ID}}/delete" class="inline"><input type="hidden" name="confirm" value="yes"><button type="submit" class="btn-action btn-delete">Delete</button></form>
  </td>
</tr>
{{end}}{{end}}`)

func ProductsTable(products []models.Product) template.HTML {
	return execute(productsTableTmpl, products)
}

// TableError is the placeholder row shown when one table's load failed;
// the rest of the dashboard still renders.
func TableError(what string) template.HTML {
	return execute(tableErrorTmpl, what)
}

var tableErrorTmpl = mustParse("tableError", `<tr><td colspan="6" class="placeholder">Error loading {{.}}</td></tr>`)

var adminDocumentTmpl = mustParse("adminDocument", `<!DOCTYPE html>
<html>
<head><title>Admin Dashboard</title></head>
<body>
<nav class="navbar">
  <span class="brand">Admin Dashboard</span>
  <a href="/">Storefront</a>
  <form method="post" action="/logout" class="inline"><button type="submit">Logout</button></form>
</nav>
{{if .Flash}}<div class="toast {{.FlashKind}} show">{{.Flash}}</div>{{end}}
{{.Stats}}
<section><h2>Users <a class="btn-export" href="/admin/export/users.csv">Export CSV</a></h2>
<table><thead><tr><th>ID</th><th>Username</th><th>Email</th><th>Full Name</th><th>Role</th><th>Created</th></tr></thead>
<tbody id="usersTableBody">{{.Users}}</tbody></table></section>
<section><h2>Orders <a class="btn-export" href="/admin/export/orders.csv">Export CSV</a></h2>
<table><thead><tr><th>Order #</th><th>User</th><th>Total</th><th>Status</th><th>Items</th><th>Created</th></tr></thead>
<tbody id="ordersTableBody">{{.Orders}}</tbody></table></section>
<section><h2>Products <a class="btn-export" href="/admin/export/products.csv">Export CSV</a></h2>
<form method="post" action="/admin/products" class="add-product">
  <input type="text" name="name" placeholder="Name" required>
  <input type="number" name="price" step="0.01" min="0" placeholder="Price" required>
  <input type="number" name="stock_quantity" min="0" placeholder="Stock" required>
  <input type="text" name="category" placeholder="Category" required>
  <input type="text" name="description" placeholder="Description">
  <input type="text" name="image_url" placeholder="Image URL">
  <button type="submit" class="btn-primary">Add Product</button>
</form>
<table><thead><tr><th>ID</th><th>Name</th><th>Price</th><th>Stock</th><th>Category</th><th>Actions</th></tr></thead>
<tbody id="productsTableBody">{{.Products}}</tbody></table></section>
</body>
</html>`)

// AdminDocument is the whole dashboard: stats cards plus the three
// tables, each section rendered independently so one failed load does
// not blank the others.
type AdminDocument struct {
	Flash     string
	FlashKind string
	Stats     template.HTML
	Users     template.HTML
	Orders    template.HTML
	Products  template.HTML
}

func AdminPage(doc AdminDocument) template.HTML {
	return execute(adminDocumentTmpl, doc)
}
