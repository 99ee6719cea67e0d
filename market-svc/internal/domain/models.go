package domain

import (
	"strconv"
	"time"
)

const (
	StatusPaid      = "paid"
	DefaultCustomer = "Гость"
)

type Venue struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Deal        string  `json:"deal"`
}

type Product struct {
	ID          int     `json:"id"`
	VenueID     int     `json:"venue_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"qty"`
}

type Order struct {
	ID        int         `json:"id"`
	VenueID   int         `json:"venue_id"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	QRCode    string      `json:"qr_code"`
	CreatedAt time.Time   `json:"created_at"`
	Customer  string      `json:"-"`
}

// OrderCode is the string customers present at pickup; the QR image encodes it.
func OrderCode(orderID int) string {
	return "ORDER-" + strconv.Itoa(orderID)
}

// Clone returns a copy that shares no item storage with o.
func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// VenueFields is the partner payload used to create a venue.
type VenueFields struct {
	Name        string
	City        string
	Description string
	Lat         float64
	Lng         float64
	Deal        string
}

// ProductFields is the partner payload used to create or update a product.
// VenueID of zero means "not supplied".
type ProductFields struct {
	Name        string
	Price       float64
	Description string
	Image       string
	VenueID     int
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   int         `json:"order_id"`
	VenueID   int         `json:"venue_id"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Customer  string      `json:"customer,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
