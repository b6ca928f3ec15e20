// Package state holds the client's view-models: the session, the product
// catalog, the cart and the order history, each an in-memory snapshot of
// remote state. Snapshots are replaced wholesale on confirmed success and
// never merged. Every resource carries a generation counter so that a
// load completing after a newer load (or a direct mutation) has begun is
// discarded instead of overwriting fresher data.
package state

import (
	"sync"

	"shopfront/internal/models"
)

type Resource int

const (
	Catalog Resource = iota
	CartView
	OrderHistory
	numResources
)

// Token identifies one load attempt for one resource. The result of a
// load is applied only while its token is still the latest issued.
type Token struct {
	resource Resource
	gen      uint64
}

type Store struct {
	mu      sync.Mutex
	session *models.Session
	catalog []models.Product
	cart    *models.Cart
	orders  []models.Order
	gens    [numResources]uint64
}

func NewStore() *Store {
	return &Store{}
}

// Session returns the active session or nil.
func (s *Store) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) SetSession(sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &sess
}

// ClearSession removes the session and cascade-clears everything that
// only exists while a user is logged in.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.cart = nil
	s.orders = nil
	s.gens[CartView]++
	s.gens[OrderHistory]++
}

// BeginLoad marks the start of a load for the resource and returns the
// token its result must present to be applied.
func (s *Store) BeginLoad(r Resource) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[r]++
	return Token{resource: r, gen: s.gens[r]}
}

func (s *Store) current(t Token) bool {
	return s.gens[t.resource] == t.gen
}

// ApplyCatalog installs the catalog snapshot if the token is still
// current. It reports whether the snapshot was applied.
func (s *Store) ApplyCatalog(t Token, products []models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.resource != Catalog || !s.current(t) {
		return false
	}
	s.catalog = products
	return true
}

func (s *Store) ApplyCart(t Token, cart *models.Cart) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.resource != CartView || !s.current(t) {
		return false
	}
	s.cart = cart
	return true
}

func (s *Store) ApplyOrders(t Token, orders []models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.resource != OrderHistory || !s.current(t) {
		return false
	}
	s.orders = orders
	return true
}

// ReplaceCart installs the cart returned by a mutating call. It bumps
// the cart generation so any load still in flight is discarded.
func (s *Store) ReplaceCart(cart *models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[CartView]++
	s.cart = cart
}

// ClearCart drops the cart snapshot, used after a successful checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[CartView]++
	s.cart = nil
}

func (s *Store) Catalog() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// ProductByID looks a product up in the catalog snapshot. The result is
// advisory only, the server remains authoritative for stock.
func (s *Store) ProductByID(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Cart() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// CartCount is the badge number: the server's item count, or zero when
// no cart snapshot exists.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.ItemCount
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders
}
