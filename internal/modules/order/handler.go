package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)                             // POST /api/v1/orders
		r.Get("/{id}", h.getOrder)                             // GET  /api/v1/orders/{id}
		r.Get("/customer/{customer_id}", h.listCustomerOrders) // GET  /api/v1/orders/customer/{customer_id}
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")
	orders, err := h.service.ListCustomerOrders(r.Context(), customerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

// statusFor maps the order error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var notFound *ProductNotFoundError
	var stock *InsufficientStockError
	switch {
	case errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrProductsNotFound),
		errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &stock):
		return http.StatusUnprocessableEntity
	}
	msg := err.Error()
	if strings.Contains(msg, "required") || strings.Contains(msg, "must") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
