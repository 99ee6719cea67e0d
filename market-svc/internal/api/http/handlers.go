package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"venue-market/market-svc/internal/domain"
	"venue-market/market-svc/internal/service"
	"venue-market/market-svc/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	validate *validatorv10.Validate
}

func NewHandler(catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Catalog:  catalogSvc,
		Orders:   orderSvc,
		validate: validation.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/venues", h.getVenues).Methods("GET")
	r.HandleFunc("/api/venues/{venue_id}/products", h.getVenueProducts).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{order_id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{order_id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{order_id}/status", h.updateOrderStatus).Methods("PATCH")

	r.HandleFunc("/api/partner/orders", h.getPartnerOrders).Methods("GET")
	r.HandleFunc("/api/partner/products", h.getPartnerProducts).Methods("GET")
	r.HandleFunc("/api/partner/venues", h.createVenue).Methods("POST")
	r.HandleFunc("/api/partner/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/partner/products/{product_id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/partner/products/{product_id}", h.deleteProduct).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "market-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.Catalog.ListVenues()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

func (h *Handler) getVenueProducts(w http.ResponseWriter, r *http.Request) {
	venueID, err := pathID(r, "venue_id")
	if err != nil {
		writeError(w, err)
		return
	}
	products, err := h.Catalog.ListProducts(venueID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload validation.CreateOrderPayload
	if err := validation.DecodeAndValidate(r.Body, &payload, h.validate); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), service.CreateOrderRequest{
		VenueID:  payload.VenueID,
		Items:    payload.OrderItems(),
		Customer: payload.Customer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.Get(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeError(w, err)
		return
	}
	png, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeError(w, err)
		return
	}
	status := r.URL.Query().Get("status")
	order, err := h.Orders.UpdateStatus(r.Context(), orderID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "status": order.Status})
}

func (h *Handler) getPartnerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListNewestFirst()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getPartnerProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListAllProducts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	var payload validation.VenuePayload
	if err := validation.DecodeAndValidate(r.Body, &payload, h.validate); err != nil {
		writeError(w, err)
		return
	}
	venue, err := h.Catalog.CreateVenue(payload.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload validation.ProductPayload
	if err := validation.DecodeAndValidate(r.Body, &payload, h.validate); err != nil {
		writeError(w, err)
		return
	}
	product, err := h.Catalog.CreateProduct(payload.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload validation.ProductPayload
	if err := validation.DecodeAndValidate(r.Body, &payload, h.validate); err != nil {
		writeError(w, err)
		return
	}
	product, err := h.Catalog.UpdateProduct(productID, payload.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Catalog.DeleteProduct(productID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, domain.Invalid("Invalid %s", name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[market-svc] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("[market-svc] internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
