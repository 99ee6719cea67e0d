package service

import (
	"context"

	"venue-market/market-svc/internal/domain"
	"venue-market/market-svc/internal/storage"
)

type CatalogRepository interface {
	CreateVenue(venue *domain.Venue) error
	ListVenues() ([]domain.Venue, error)
	GetVenue(id int) (*domain.Venue, error)
	CreateProduct(product *domain.Product) error
	ListProducts(venueID int) ([]domain.Product, error)
	ListAllProducts() ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(id int, fields domain.ProductFields) (*domain.Product, error)
	DeleteProduct(id int) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	UpdateStatus(id int, status string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
}

type QRCache interface {
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
	SetQRCode(ctx context.Context, orderID int, png []byte) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	ListVenues() ([]domain.Venue, error)
	CreateVenue(fields domain.VenueFields) (*domain.Venue, error)
	ListProducts(venueID int) ([]domain.Product, error)
	ListAllProducts() ([]domain.Product, error)
	CreateProduct(fields domain.ProductFields) (*domain.Product, error)
	UpdateProduct(id int, fields domain.ProductFields) (*domain.Product, error)
	DeleteProduct(id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
	ListNewestFirst() ([]domain.Order, error)
	QRCode(ctx context.Context, orderID int) ([]byte, error)
}

var (
	_ CatalogRepository = (*storage.CatalogStore)(nil)
	_ OrderRepository   = (*storage.OrderStore)(nil)
	_ QRCache           = (*storage.RedisCache)(nil)
	_ OrderPublisher    = (*storage.KafkaPublisher)(nil)
	_ OrderPublisher    = (*storage.RabbitMQPublisher)(nil)
)
