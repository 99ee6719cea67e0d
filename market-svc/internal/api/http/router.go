package httpapi

import (
	"log"
	"net/http"

	"venue-market/market-svc/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogger, metrics.Middleware)
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Market Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
