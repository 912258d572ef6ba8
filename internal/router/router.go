package router

import (
	"net/http"

	"github.com/aayushkuntal/piepay-server/internal/handler"
	"github.com/aayushkuntal/piepay-server/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	offerHandler *handler.OfferHandler,
	discountHandler *handler.DiscountHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "OK", "message": "Server is running"}`))
	})

	mux.HandleFunc("/api/v1/offer", offerHandler.Process)
	mux.HandleFunc("/api/v1/offer/", offerHandler.Process)

	mux.HandleFunc("/api/v1/highest-discount", discountHandler.GetHighest)
	mux.HandleFunc("/api/v1/highest-discount/", discountHandler.GetHighest)

	// Middleware order: Recovery -> CorrelationID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
