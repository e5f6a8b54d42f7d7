package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tavolaworks/trattoria-manager/internal/apisrv/admin"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/auth"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/frontend"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	"github.com/tavolaworks/trattoria-manager/internal/ratelimit"
)

type handlers struct {
	auth     *auth.Server
	admin    *admin.Server
	frontend *frontend.Server
	limiter  *ratelimit.MultiKeyLimiter
}

// AUTH

func (h *handlers) authRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", h.login)
	r.Post("/users", h.createUser)
	r.Delete("/users", h.deleteUser)
	r.Post("/password", h.changePassword)
	return r
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}
	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req auth.CreateUserRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}
	resp, err := h.auth.Create(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, resp)
}

func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req auth.DeleteUserRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}
	if err := h.auth.Delete(r.Context(), &req); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) changePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}
	resp, err := h.auth.ChangePassword(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

// FRONTEND

func (h *handlers) frontendRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/menu", h.publicMenu)
	r.Post("/orders", h.submitOrder)
	r.Get("/orders/{uuid}", h.orderByUUID)
	r.Get("/labels/suggestions", h.labelSuggestions)
	return r
}

func (h *handlers) publicMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.frontend.GetMenu(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, items)
}

func (h *handlers) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req entity.OrderNew
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	if err := h.limiter.CheckOrderCreation(remoteIP(r), req.Phone); err != nil {
		respondJSON(w, r, http.StatusTooManyRequests, errResponse{Error: err.Error()})
		return
	}

	of, err := h.frontend.SubmitOrder(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, of)
}

func (h *handlers) orderByUUID(w http.ResponseWriter, r *http.Request) {
	of, err := h.frontend.GetOrderByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, of)
}

func (h *handlers) labelSuggestions(w http.ResponseWriter, r *http.Request) {
	if err := h.limiter.CheckSuggestions(remoteIP(r)); err != nil {
		respondJSON(w, r, http.StatusTooManyRequests, errResponse{Error: err.Error()})
		return
	}

	suggestions, err := h.frontend.GetLabelSuggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	respondJSON(w, r, http.StatusOK, suggestions)
}

// ADMIN

func (h *handlers) adminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/orders", h.listOrders)
	r.Get("/orders/{uuid}", h.adminOrderByUUID)
	r.Put("/orders/{uuid}/status", h.updateOrderStatus)

	r.Get("/menu", h.adminMenu)
	r.Post("/menu", h.addMenuItem)
	r.Put("/menu/{id}", h.updateMenuItem)
	r.Delete("/menu/{id}", h.deleteMenuItem)

	r.Get("/customers", h.listCustomers)

	r.Get("/sales/historical", h.historicalSales)
	r.Post("/sales/historical", h.upsertHistoricalSale)

	r.Get("/analytics", h.dashboard)

	return r
}

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	orders, err := h.admin.ListOrders(r.Context(), entity.OrderStatusName(q.Get("status")), limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, orders)
}

func (h *handlers) adminOrderByUUID(w http.ResponseWriter, r *http.Request) {
	of, err := h.admin.GetOrder(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, of)
}

func (h *handlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status entity.OrderStatusName `json:"status"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	o, err := h.admin.UpdateOrderStatus(r.Context(), chi.URLParam(r, "uuid"), req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, o)
}

func (h *handlers) adminMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.GetMenu(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, items)
}

func (h *handlers) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req entity.MenuItemInsert
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	id, err := h.admin.AddMenuItem(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]int{"id": id})
}

func (h *handlers) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, r, fmt.Errorf("bad menu item id: %w", err))
		return
	}

	var req entity.MenuItemInsert
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	if err := h.admin.UpdateMenuItem(r.Context(), id, &req); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, r, fmt.Errorf("bad menu item id: %w", err))
		return
	}

	if err := h.admin.DeleteMenuItem(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	customers, err := h.admin.ListCustomers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, customers)
}

func (h *handlers) historicalSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.admin.GetHistoricalSales(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sales)
}

func (h *handlers) upsertHistoricalSale(w http.ResponseWriter, r *http.Request) {
	var req entity.HistoricalSale
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	if err := h.admin.UpsertHistoricalSale(r.Context(), &req); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	var rangeDays *int
	if raw := r.URL.Query().Get("range"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || (days != 30 && days != 90) {
			respondBadRequest(w, r, fmt.Errorf("range must be 30 or 90"))
			return
		}
		rangeDays = &days
	}

	resp, err := h.admin.GetDashboard(r.Context(), rangeDays)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}
