package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/satheeshds/aguapago/models"
)

// pageParams reads page and limit. Both must be positive integers when
// present; limit is capped at the configured maximum.
func (h *Handler) pageParams(r *http.Request) (page, limit int, err error) {
	page, limit = 1, h.cfg.DefaultPageSize
	q := r.URL.Query()

	if s := q.Get("page"); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
	}
	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 1 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
	}
	if limit > h.cfg.MaxPageSize {
		limit = h.cfg.MaxPageSize
	}
	// The row offset (page-1)*limit must fit in an int.
	if page > math.MaxInt/limit {
		return 0, 0, fmt.Errorf("page is out of range")
	}
	return page, limit, nil
}

// billFilter builds the history filter from the query string.
func (h *Handler) billFilter(r *http.Request) (models.BillFilter, error) {
	page, limit, err := h.pageParams(r)
	if err != nil {
		return models.BillFilter{}, err
	}
	f := models.BillFilter{Page: page, Limit: limit}
	q := r.URL.Query()

	if c := q.Get("clientId"); c != "" {
		f.ClientID = &c
	}
	if s := q.Get("status"); s != "" {
		status, err := models.ParseBillStatus(s)
		if err != nil {
			return models.BillFilter{}, err
		}
		f.Status = &status
	}
	if f.StartDate, err = dateParam(q.Get("startDate"), "startDate"); err != nil {
		return models.BillFilter{}, err
	}
	if f.EndDate, err = dateParam(q.Get("endDate"), "endDate"); err != nil {
		return models.BillFilter{}, err
	}
	return f, nil
}

func dateParam(s, name string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}
