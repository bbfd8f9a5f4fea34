package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

// ListCustomers lists customers page by page
// @Summary      List customers
// @Description  Paginated customer listing, newest first.
// @Tags         customers
// @Produce      json
// @Param        page   query     int  false  "Page number, from 1"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Response{data=[]models.Customer,pagination=models.Pagination}
// @Failure      400    {object}  Response{error=string}
// @Router       /api/customers [get]
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	customers, err := h.customers.List(r.Context(), page, limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writePage(w, customers)
}

// GetCustomer retrieves a customer by client ID
// @Summary      Get customer
// @Description  Get a customer by the client ID printed on their bills.
// @Tags         customers
// @Produce      json
// @Param        clientId  path      string  true  "Client ID"
// @Success      200       {object}  Response{data=models.Customer}
// @Failure      404       {object}  Response{error=string}
// @Router       /api/customers/{clientId} [get]
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.GetByClientID(r.Context(), chi.URLParam(r, "clientId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCustomer registers a new customer
// @Summary      Create customer
// @Description  Register a new customer. The client ID must be unused.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      models.CustomerInput  true  "Customer contents"
// @Success      201       {object}  Response{data=models.Customer}
// @Failure      400       {object}  Response{error=string}
// @Failure      409       {object}  Response{error=string}
// @Router       /api/customers [post]
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input models.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	exists, err := h.customers.Exists(r.Context(), input.ClientID)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Customer with this clientId already exists")
		return
	}

	c, err := h.customers.Create(r.Context(), &input)
	if err != nil {
		// Lost a race with a concurrent create.
		if errors.Is(err, store.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Customer with this clientId already exists")
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, c, "Customer created successfully")
}

// UpdateCustomer applies a partial update to a customer
// @Summary      Update customer
// @Description  Change name, address, phone or email. The client ID cannot change.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        clientId  path      string                true  "Client ID"
// @Param        patch     body      models.CustomerPatch  true  "Fields to change"
// @Success      200       {object}  Response{data=models.Customer}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Router       /api/customers/{clientId} [put]
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch models.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := patch.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := h.customers.Update(r.Context(), chi.URLParam(r, "clientId"), &patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, c, "Customer updated successfully")
}

type existsResult struct {
	Exists bool `json:"exists"`
}

// CustomerExists checks whether a client ID is registered
// @Summary      Customer exists
// @Description  Report whether a client ID is registered.
// @Tags         customers
// @Produce      json
// @Param        clientId  path      string  true  "Client ID"
// @Success      200       {object}  Response{data=existsResult}
// @Failure      500       {object}  Response{error=string}
// @Router       /api/customers/{clientId}/exists [get]
func (h *Handler) CustomerExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.customers.Exists(r.Context(), chi.URLParam(r, "clientId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, existsResult{Exists: exists})
}
