package storage

import (
	"sort"
	"sync"
	"time"

	"venue-market/market-svc/internal/domain"
)

// CatalogStore keeps venues and products in memory. Ids come from per-collection
// counters and are never handed out twice, even after a delete.
type CatalogStore struct {
	mu            sync.RWMutex
	venues        []domain.Venue
	products      []domain.Product
	lastVenueID   int
	lastProductID int
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

func (s *CatalogStore) CreateVenue(venue *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastVenueID++
	venue.ID = s.lastVenueID
	s.venues = append(s.venues, *venue)
	return nil
}

func (s *CatalogStore) ListVenues() ([]domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]domain.Venue, len(s.venues))
	copy(venues, s.venues)
	return venues, nil
}

func (s *CatalogStore) GetVenue(id int) (*domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.venues {
		if v.ID == id {
			venue := v
			return &venue, nil
		}
	}
	return nil, domain.NotFound("Venue not found")
}

// CreateProduct stores product, defaulting VenueID to the first venue when it is zero.
func (s *CatalogStore) CreateProduct(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.VenueID == 0 {
		if len(s.venues) == 0 {
			return domain.Invalid("No venue exists")
		}
		product.VenueID = s.venues[0].ID
	}

	s.lastProductID++
	product.ID = s.lastProductID
	s.products = append(s.products, *product)
	return nil
}

func (s *CatalogStore) ListProducts(venueID int) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []domain.Product{}
	for _, p := range s.products {
		if p.VenueID == venueID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *CatalogStore) ListAllProducts() ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (s *CatalogStore) GetProduct(id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.productIndex(id); i >= 0 {
		product := s.products[i]
		return &product, nil
	}
	return nil, domain.NotFound("Product %d not found", id)
}

func (s *CatalogStore) UpdateProduct(id int, fields domain.ProductFields) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return nil, domain.NotFound("Product not found")
	}

	p := &s.products[i]
	p.Name = fields.Name
	p.Price = fields.Price
	p.Description = fields.Description
	p.Image = fields.Image
	if fields.VenueID != 0 {
		p.VenueID = fields.VenueID
	}

	updated := *p
	return &updated, nil
}

func (s *CatalogStore) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return domain.NotFound("Product not found")
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// productIndex must be called with mu held.
func (s *CatalogStore) productIndex(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// OrderStore keeps orders in memory in insertion order.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []domain.Order
	lastID  int
	nowFunc func() time.Time
}

func NewOrderStore() *OrderStore {
	return &OrderStore{nowFunc: time.Now}
}

// NewOrderStoreWithClock is NewOrderStore with an injected clock.
func NewOrderStoreWithClock(now func() time.Time) *OrderStore {
	return &OrderStore{nowFunc: now}
}

// CreateOrder assigns the next id, its order code and a UTC creation time, then appends.
func (s *OrderStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	order.ID = s.lastID
	order.QRCode = domain.OrderCode(order.ID)
	order.CreatedAt = s.nowFunc().UTC()
	s.orders = append(s.orders, order.Clone())
	return nil
}

func (s *OrderStore) GetOrder(id int) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			order := o.Clone()
			return &order, nil
		}
	}
	return nil, domain.NotFound("Order not found")
}

func (s *OrderStore) UpdateStatus(id int, status string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			order := s.orders[i].Clone()
			return &order, nil
		}
	}
	return nil, domain.NotFound("Order not found")
}

// ListOrders returns every order, newest first. Orders created at the same instant
// keep their insertion order.
func (s *OrderStore) ListOrders() ([]domain.Order, error) {
	s.mu.RLock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
