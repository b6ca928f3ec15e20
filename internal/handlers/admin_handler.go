package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"shopfront/internal/export"
	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/render"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// AdminClient is the slice of the remote client the dashboard uses.
type AdminClient interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminOrders(ctx context.Context) ([]models.Order, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req models.NewProductRequest) error
	UpdateProductStock(ctx context.Context, productID, stockQuantity int) error
	DeleteProduct(ctx context.Context, productID int) error
}

// Confirmer gates destructive actions. The HTTP surface satisfies it
// with an explicit confirmation form field; tests inject a fake.
type Confirmer interface {
	Confirm(r *http.Request, prompt string) bool
}

// FormConfirmer confirms when the request carries confirm=yes.
type FormConfirmer struct{}

func (FormConfirmer) Confirm(r *http.Request, _ string) bool {
	return r.PostFormValue("confirm") == "yes"
}

const defaultProductImage = "/static/images/default-product.jpg"

// AdminHandler drives the dashboard: statistics, the three tables with
// their CSV exports, and product management. Each table load fails
// independently, rendering its own error row instead of taking the
// whole page down. Exports read the tables as last loaded.
type AdminHandler struct {
	client    AdminClient
	flash     *notify.Flash
	confirmer Confirmer
	logger    zerolog.Logger

	mu       sync.Mutex
	users    []models.User
	orders   []models.Order
	products []models.Product
}

func NewAdminHandler(client AdminClient, flash *notify.Flash, confirmer Confirmer, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		client:    client,
		flash:     flash,
		confirmer: confirmer,
		logger:    logger,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc := render.AdminDocument{}

	stats, err := h.client.AdminStats(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Stats load failed")
	}
	doc.Stats = render.StatsCards(stats)

	users, err := h.client.AdminUsers(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Users load failed")
		doc.Users = render.TableError("users")
	} else {
		doc.Users = render.UsersTable(users)
		h.setUsers(users)
	}

	orders, err := h.client.AdminOrders(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Orders load failed")
		doc.Orders = render.TableError("orders")
	} else {
		doc.Orders = render.OrdersTable(orders)
		h.setOrders(orders)
	}

	products, err := h.client.ListProducts(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Products load failed")
		doc.Products = render.TableError("products")
	} else {
		doc.Products = render.ProductsTable(products)
		h.setProducts(products)
	}

	doc.Flash, doc.FlashKind, _ = h.flash.Take()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(render.AdminPage(doc)))
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
	if err != nil || price < 0 {
		h.flash.Error("Invalid price")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	stock, ok := formInt(r, "stock_quantity")
	if !ok {
		h.flash.Error("Invalid stock quantity!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	imageURL := r.PostFormValue("image_url")
	if imageURL == "" {
		imageURL = defaultProductImage
	}

	req := models.NewProductRequest{
		Name:          r.PostFormValue("name"),
		Price:         price,
		StockQuantity: stock,
		Category:      r.PostFormValue("category"),
		Description:   r.PostFormValue("description"),
		ImageURL:      imageURL,
	}
	if err := h.client.CreateProduct(r.Context(), req); err != nil {
		h.logger.Warn().Err(err).Msg("Product create failed")
		h.flash.Error("Failed to create product: " + err.Error())
	} else {
		h.flash.Success("Product created successfully!")
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	stock, ok := formInt(r, "stock_quantity")
	if !ok {
		// Rejected before any call, just like the prompt validation.
		h.flash.Error("Invalid stock quantity!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.client.UpdateProductStock(r.Context(), productID, stock); err != nil {
		h.logger.Warn().Err(err).Msg("Stock update failed")
		h.flash.Error("Failed to update product")
	} else {
		h.flash.Success("Product updated successfully!")
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !h.confirmer.Confirm(r, "Are you sure you want to delete this product?") {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.client.DeleteProduct(r.Context(), productID); err != nil {
		h.logger.Warn().Err(err).Msg("Product delete failed")
		h.flash.Error("Failed to delete product")
	} else {
		h.flash.Success("Product deleted successfully!")
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	users := h.getUsers()
	if len(users) == 0 {
		h.flash.Error("No users data to export")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	writeCSV(w, "users.csv", export.ToDelimitedText(export.UserRecords(users), export.UserFields))
}

func (h *AdminHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.getOrders()
	if len(orders) == 0 {
		h.flash.Error("No orders data to export")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	writeCSV(w, "orders.csv", export.ToDelimitedText(export.OrderRecords(orders), export.OrderFields))
}

func (h *AdminHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	products := h.getProducts()
	if len(products) == 0 {
		h.flash.Error("No products data to export")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	writeCSV(w, "products.csv", export.ToDelimitedText(export.ProductRecords(products), export.ProductFields))
}

func writeCSV(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write([]byte(content))
}

func (h *AdminHandler) setUsers(users []models.User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.users = users
}

func (h *AdminHandler) setOrders(orders []models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = orders
}

func (h *AdminHandler) setProducts(products []models.Product) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.products = products
}

func (h *AdminHandler) getUsers() []models.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.users
}

func (h *AdminHandler) getOrders() []models.Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.orders
}

func (h *AdminHandler) getProducts() []models.Product {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.products
}
