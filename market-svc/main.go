package main

import (
	"log"

	"venue-market/config"
	httpapi "venue-market/market-svc/internal/api/http"
	"venue-market/market-svc/internal/service"
	"venue-market/market-svc/internal/storage"
)

func main() {
	cfg := config.Load()

	catalog := storage.NewCatalogStore()
	orders := storage.NewOrderStore()

	var qrCache service.QRCache
	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		qrCache = storage.NewRedisCache(rdb, cfg.QRCacheTTL)
		log.Printf("[market-svc] qr cache enabled at %s:%s", cfg.RedisHost, cfg.RedisPort)
	}

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	catalogSvc := service.NewCatalogService(catalog)
	orderSvc := service.NewOrderService(orders, catalog, service.DefaultQRGenerator{Size: 256}, qrCache, publisher)

	handler := httpapi.NewHandler(catalogSvc, orderSvc)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler, cfg.AllowedOrigins))
}

// newPublisher returns a nil publisher when no event bus is configured.
func newPublisher(cfg *config.Config) (service.OrderPublisher, func()) {
	switch cfg.EventBus {
	case config.EventBusKafka:
		writer := config.NewKafkaWriter(cfg)
		log.Printf("[market-svc] publishing order events to kafka topic %s", cfg.OrderEventsTopic)
		return storage.NewKafkaPublisher(writer), func() { writer.Close() }
	case config.EventBusRabbitMQ:
		conn := config.MustDialRabbitMQ(cfg)
		pub, err := storage.NewRabbitMQPublisher(conn)
		if err != nil {
			log.Fatal("Failed to set up RabbitMQ publisher:", err)
		}
		log.Printf("[market-svc] publishing order events to rabbitmq exchange %s", storage.OrderEventsExchange)
		return pub, func() {
			pub.Close()
			conn.Close()
		}
	case "":
		return nil, func() {}
	default:
		log.Printf("[market-svc] unknown EVENT_BUS %q, order events disabled", cfg.EventBus)
		return nil, func() {}
	}
}
