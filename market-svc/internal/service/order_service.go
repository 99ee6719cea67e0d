package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"venue-market/market-svc/internal/domain"
	"venue-market/market-svc/internal/metrics"
)

type CreateOrderRequest struct {
	VenueID  int
	Items    []domain.OrderItem
	Customer string
}

type OrderService struct {
	orders    OrderRepository
	catalog   CatalogRepository
	qrEncoder QRGenerator
	qrCache   QRCache
	publisher OrderPublisher
}

// NewOrderService wires the order flow. cache and publisher may be nil.
func NewOrderService(orders OrderRepository, catalog CatalogRepository, qr QRGenerator, cache QRCache, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		qrEncoder: qr,
		qrCache:   cache,
		publisher: publisher,
	}
}

// Create prices the cart against the current catalog and stores a paid order.
// Nothing is stored when any check fails.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	order, err := s.create(ctx, req)
	metrics.RecordOrderOperation("create", err == nil)
	return order, err
}

func (s *OrderService) create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.Invalid("Cart is empty")
	}
	if _, err := s.catalog.GetVenue(req.VenueID); err != nil {
		return nil, err
	}

	var total float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, domain.Invalid("Quantity for product %d must be positive", item.ProductID)
		}
		product, err := s.catalog.GetProduct(item.ProductID)
		if err != nil {
			return nil, err
		}
		total += product.Price * float64(item.Quantity)
	}

	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		customer = domain.DefaultCustomer
	}

	items := make([]domain.OrderItem, len(req.Items))
	copy(items, req.Items)

	order := &domain.Order{
		VenueID:  req.VenueID,
		Items:    items,
		Status:   domain.StatusPaid,
		Total:    roundCents(total),
		Customer: customer,
	}
	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	log.Printf("[market-svc] order %d created: venue=%d items=%d total=%.2f", order.ID, order.VenueID, len(order.Items), order.Total)
	s.publish(ctx, domain.EventOrderCreated, order)
	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

// UpdateStatus stores the trimmed status; any non-empty value is accepted and
// there is no transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		metrics.RecordOrderOperation("update_status", false)
		return nil, domain.Invalid("status is required")
	}

	order, err := s.orders.UpdateStatus(orderID, status)
	metrics.RecordOrderOperation("update_status", err == nil)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventOrderStatusChanged, order)
	return order, nil
}

func (s *OrderService) ListNewestFirst() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

// QRCode renders the PNG for an order's code, going through the cache when one is set.
func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if s.qrCache != nil {
		cached, err := s.qrCache.GetQRCode(ctx, orderID)
		if err != nil {
			log.Printf("[market-svc] qr cache read failed for order %d: %v", orderID, err)
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	png, err := s.qrEncoder.Generate(order.QRCode)
	if err != nil {
		return nil, err
	}

	if s.qrCache != nil {
		if err := s.qrCache.SetQRCode(ctx, orderID, png); err != nil {
			log.Printf("[market-svc] qr cache write failed for order %d: %v", orderID, err)
		}
	}
	return png, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	event := domain.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		VenueID:   order.VenueID,
		Status:    order.Status,
		Total:     order.Total,
		Customer:  order.Customer,
		Timestamp: time.Now().UTC(),
	}
	if eventType == domain.EventOrderCreated {
		event.Items = order.Items
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[market-svc] failed to publish %s for order %d: %v", eventType, order.ID, err)
	}
}

// roundCents rounds the exact binary value to two decimals, ties to even.
func roundCents(amount float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(amount, 'f', 2, 64), 64)
	return rounded
}

var _ OrderServiceInterface = (*OrderService)(nil)
