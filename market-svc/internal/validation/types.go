package validation

import "venue-market/market-svc/internal/domain"

// VenuePayload is the body of POST /api/partner/venues. Every field must be
// present; pointers let an explicit zero or empty string through.
type VenuePayload struct {
	Name        string   `json:"name" validate:"required"`
	City        *string  `json:"city" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng         *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Deal        *string  `json:"deal" validate:"required"`
}

func (p VenuePayload) Fields() domain.VenueFields {
	return domain.VenueFields{
		Name:        p.Name,
		City:        deref(p.City),
		Description: deref(p.Description),
		Lat:         deref(p.Lat),
		Lng:         deref(p.Lng),
		Deal:        deref(p.Deal),
	}
}

// ProductPayload is the body of POST and PUT /api/partner/products.
// A missing or zero venue_id means "use the default".
type ProductPayload struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description *string  `json:"description" validate:"required"`
	Image       *string  `json:"image" validate:"required"`
	VenueID     int      `json:"venue_id" validate:"gte=0"`
}

func (p ProductPayload) Fields() domain.ProductFields {
	return domain.ProductFields{
		Name:        p.Name,
		Price:       deref(p.Price),
		Description: deref(p.Description),
		Image:       deref(p.Image),
		VenueID:     p.VenueID,
	}
}

type OrderItemPayload struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"qty" validate:"min=1"`
}

// CreateOrderPayload is the body of POST /api/orders. An empty item list passes
// validation here and is rejected by the order service with "Cart is empty".
type CreateOrderPayload struct {
	VenueID  int                `json:"venue_id"`
	Items    []OrderItemPayload `json:"items" validate:"dive"`
	Customer string             `json:"customer"`
}

func (p CreateOrderPayload) OrderItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
