package handlers

import (
	"net/http"
)

// BillStats summarizes bills by status
// @Summary      Bill statistics
// @Description  Counts per status and amount totals, optionally for one client. pendingAmount is totalAmount minus paidAmount.
// @Tags         bills
// @Produce      json
// @Param        clientId  query     string  false  "Limit to one client"
// @Success      200       {object}  Response{data=models.BillStats}
// @Failure      500       {object}  Response{error=string}
// @Router       /api/bills/stats [get]
func (h *Handler) BillStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bills.Stats(r.Context(), r.URL.Query().Get("clientId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
