package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/safar/go-storefront/internal/database"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

// Store is the persistence surface the handlers need.
type Store interface {
	Ping(ctx context.Context) error
	ListProducts(ctx context.Context, filter store.ProductFilter, page int) (*store.OffsetPage[models.Product], error)
	SaveCart(ctx context.Context, items []store.CartItemInput) (*store.SavedCart, error)
	ListCarts(ctx context.Context, filter store.CartFilter, page int) (*store.OffsetPage[models.Cart], error)
	GetCart(ctx context.Context, id int64) (*models.Cart, error)
	DeleteCart(ctx context.Context, id int64) error
}

type Handler struct {
	store        Store
	timeout      time.Duration
	maxBodyBytes int64
}

func NewHandler(s Store, timeout time.Duration, maxBodyBytes int64) *Handler {
	return &Handler{
		store:        s,
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
	}
}

// GET /products/
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	result, err := h.store.ListProducts(ctx, store.ParseProductFilter(q), store.ParsePage(q.Get("page")))
	if err != nil {
		h.internalError(w, "list products", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// POST /save-cart/
func (h *Handler) SaveCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req saveCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.store.SaveCart(ctx, req.toInputs())
	if err != nil {
		if errors.Is(err, database.ErrEmptyCart) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(w, "save cart", err)
		return
	}

	log.Printf("Saved cart %d as %s with %d item(s), total %s",
		saved.CartID, saved.OrderNumber, len(saved.Products), saved.TotalPrice)

	respondJSON(w, http.StatusOK, saved)
}

// GET /carts/
func (h *Handler) ListCarts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	result, err := h.store.ListCarts(ctx, store.ParseCartFilter(q), store.ParsePage(q.Get("page")))
	if err != nil {
		h.internalError(w, "list carts", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GET /carts/{id}/
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := cartIDParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, database.ErrCartNotFound.Error())
		return
	}

	cart, err := h.store.GetCart(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrCartNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.internalError(w, "get cart", err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// DELETE /carts/{id}/
func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := cartIDParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, database.ErrCartNotFound.Error())
		return
	}

	if err := h.store.DeleteCart(ctx, id); err != nil {
		if errors.Is(err, database.ErrCartNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.internalError(w, "delete cart", err)
		return
	}

	log.Printf("Deleted cart %d", id)
	w.WriteHeader(http.StatusNoContent)
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Printf("Health check failed: %v", err)
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("Error in %s: %v", op, err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// A path id that is not a positive integer can never name a cart.
func cartIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
