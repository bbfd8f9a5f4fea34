package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

// SearchBill looks a bill up by its printed number
// @Summary      Search bill
// @Description  Find a bill by the number printed on it, including the customer snapshot.
// @Tags         bills
// @Produce      json
// @Param        billNumber  query     string  true  "Bill number, e.g. F-2025-02-12345"
// @Success      200         {object}  Response{data=models.Bill}
// @Failure      400         {object}  Response{error=string}
// @Failure      404         {object}  Response{error=string}
// @Router       /api/bills/search [get]
func (h *Handler) SearchBill(w http.ResponseWriter, r *http.Request) {
	billNumber := r.URL.Query().Get("billNumber")
	if billNumber == "" {
		writeError(w, http.StatusBadRequest, "Bill number is required")
		return
	}

	b, err := h.bills.GetByBillNumber(r.Context(), billNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// ListClientBills lists every bill of one customer
// @Summary      List client bills
// @Description  Get all bills of a customer, latest issue date first.
// @Tags         bills
// @Produce      json
// @Param        clientId  path      string  true  "Client ID"
// @Success      200       {object}  Response{data=[]models.Bill}
// @Failure      500       {object}  Response{error=string}
// @Router       /api/bills/client/{clientId} [get]
func (h *Handler) ListClientBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.bills.ListByClientID(r.Context(), chi.URLParam(r, "clientId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

// BillHistory lists bills page by page
// @Summary      Bill history
// @Description  Paginated bill listing filtered by client, status and issue date range.
// @Tags         bills
// @Produce      json
// @Param        clientId   query     string  false  "Filter by client ID"
// @Param        status     query     string  false  "PENDING, PAID, OVERDUE or CANCELLED"
// @Param        startDate  query     string  false  "Earliest issue date (YYYY-MM-DD or RFC 3339)"
// @Param        endDate    query     string  false  "Latest issue date (YYYY-MM-DD or RFC 3339)"
// @Param        page       query     int     false  "Page number, from 1"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  Response{data=[]models.Bill,pagination=models.Pagination}
// @Failure      400        {object}  Response{error=string}
// @Router       /api/bills/history [get]
func (h *Handler) BillHistory(w http.ResponseWriter, r *http.Request) {
	f, err := h.billFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.bills.History(r.Context(), f)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writePage(w, page)
}

// GetBill retrieves a single bill by ID
// @Summary      Get bill
// @Description  Get a bill by its system ID.
// @Tags         bills
// @Produce      json
// @Param        bill  path      string  true  "Bill ID"
// @Success      200   {object}  Response{data=models.Bill}
// @Failure      404   {object}  Response{error=string}
// @Router       /api/bills/{bill} [get]
func (h *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	b, err := h.bills.GetByID(r.Context(), chi.URLParam(r, "bill"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// CreateBill creates a new bill
// @Summary      Create bill
// @Description  Issue a bill to an existing customer. Status defaults to PENDING.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill  body      models.BillInput  true  "Bill contents"
// @Success      201   {object}  Response{data=models.Bill}
// @Failure      400   {object}  Response{error=string}
// @Failure      409   {object}  Response{error=string}
// @Failure      500   {object}  Response{error=string}
// @Router       /api/bills [post]
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var input models.BillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b, err := h.bills.Create(r.Context(), &input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Bill with this billNumber already exists")
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, b, "Bill created successfully")
}

// UpdateBill applies a partial update to a bill
// @Summary      Update bill
// @Description  Update any mutable field of a bill. Status changes outside the normal flow are applied and logged.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill   path      string            true  "Bill ID"
// @Param        patch  body      models.BillPatch  true  "Fields to change"
// @Success      200    {object}  Response{data=models.Bill}
// @Failure      400    {object}  Response{error=string}
// @Failure      404    {object}  Response{error=string}
// @Router       /api/bills/{bill} [put]
func (h *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	var patch models.BillPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := patch.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b, err := h.lifecycle.Update(r.Context(), chi.URLParam(r, "bill"), &patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, b, "Bill updated successfully")
}

// PayBill records a payment
// @Summary      Pay bill
// @Description  Mark a bill as paid with the receipt issued by the payment channel. Payment date is the time of the call.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill     path      string           true  "Bill number"
// @Param        payment  body      models.PayInput  true  "Receipt"
// @Success      200      {object}  Response{data=models.Bill}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Failure      429      {object}  Response{error=string}
// @Router       /api/bills/{bill}/pay [post]
func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	var input models.PayInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b, err := h.lifecycle.MarkPaid(r.Context(), chi.URLParam(r, "bill"), input.ReceiptNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
		} else {
			h.internalError(w, r, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, b, "Bill marked as paid successfully")
}

type sweepResult struct {
	Updated int `json:"updated"`
}

// SweepOverdue runs the overdue sweep now
// @Summary      Sweep overdue bills
// @Description  Move every PENDING bill whose due date has passed to OVERDUE.
// @Tags         bills
// @Produce      json
// @Success      200  {object}  Response{data=sweepResult}
// @Failure      500  {object}  Response{error=string}
// @Router       /api/bills/sweep-overdue [post]
func (h *Handler) SweepOverdue(w http.ResponseWriter, r *http.Request) {
	n, err := h.lifecycle.Sweep(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sweepResult{Updated: n})
}
