package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront-api/internal/common"
)

// Handler exposes the cart HTTP surface.
type Handler struct {
	Svc *Service
}

type addLineRequest struct {
	Slug    string `json:"slug"`
	Variant string `json:"variant"`
}

type cartResponse struct {
	ID     string `json:"id"`
	Items  []Line `json:"items"`
	IsOpen bool   `json:"isOpen"`
	Totals Totals `json:"totals"`
}

func toResponse(state State) cartResponse {
	items := state.Lines
	if items == nil {
		items = []Line{}
	}
	return cartResponse{
		ID:     state.ID,
		Items:  items,
		IsOpen: state.IsOpen,
		Totals: ComputeTotals(state.Lines),
	}
}

// Create handles POST /api/v1/carts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.Svc.Create(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusCreated, toResponse(State{ID: id}))
}

// Get handles GET /api/v1/carts/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// AddItem handles POST /api/v1/carts/{id}/items.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid payload", nil)
		return
	}
	state, err := h.Svc.AddLine(r.Context(), chi.URLParam(r, "id"), req.Slug, req.Variant)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// IncreaseItem handles POST /api/v1/carts/{id}/items/{itemId}/increase.
func (h *Handler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.IncreaseQuantity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// DecreaseItem handles POST /api/v1/carts/{id}/items/{itemId}/decrease.
func (h *Handler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.DecreaseQuantity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// RemoveItem handles DELETE /api/v1/carts/{id}/items/{itemId}.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.RemoveLine(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// ClearItems handles DELETE /api/v1/carts/{id}/items.
func (h *Handler) ClearItems(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

// Toggle handles POST /api/v1/carts/{id}/toggle.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	state, err := h.Svc.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, toResponse(state))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = common.CodeInternal
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "unexpected error", nil)
}
