package order

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront-api/internal/common"
)

// Handler exposes order retrieval.
type Handler struct {
	Store Store
}

type orderResponse struct {
	ID            string    `json:"orderId"`
	Customer      Customer  `json:"customer"`
	Items         []Item    `json:"items"`
	Subtotal      string    `json:"subtotal"`
	Discount      string    `json:"totalDiscount"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResponse(o Order) orderResponse {
	items := o.Items
	if items == nil {
		items = []Item{}
	}
	return orderResponse{
		ID:            o.ID,
		Customer:      o.Customer,
		Items:         items,
		Subtotal:      o.Subtotal.StringFixed(2),
		Discount:      o.Discount.StringFixed(2),
		Total:         o.Total.StringFixed(2),
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}

// Get handles GET /api/v1/orders/{orderId}?token=. The token is a
// capability: a missing or mismatched token reads the same as an unknown
// order.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "orderId"))
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if id == "" || token == "" {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "orderId and token are required", nil)
		return
	}
	o, err := h.Store.Retrieve(r.Context(), id, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, common.CodeNotFound, "order not found", nil)
			return
		}
		common.JSONError(w, http.StatusBadGateway, common.CodeUpstream, "order store unavailable", nil)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(o))
}
