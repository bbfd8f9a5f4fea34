package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/satheeshds/aguapago/lifecycle"
	"github.com/satheeshds/aguapago/store"
)

// Config carries the request-level limits the handlers enforce.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	// PayRateLimit is payments per second across all clients; zero disables
	// throttling.
	PayRateLimit float64
	PayBurst     int
}

// Handler serves the billing API.
type Handler struct {
	store     *store.Store
	customers store.CustomerStore
	bills     store.BillStore
	lifecycle *lifecycle.Service
	cfg       Config
	logger    *slog.Logger
}

func New(s *store.Store, svc *lifecycle.Service, cfg Config, logger *slog.Logger) *Handler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:     s,
		customers: s.Customers,
		bills:     s.Bills,
		lifecycle: svc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Routes mounts the API under /api and the health check at /health.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Bills
		r.Get("/bills/search", h.SearchBill)
		r.Get("/bills/history", h.BillHistory)
		r.Get("/bills/stats", h.BillStats)
		r.Get("/bills/client/{clientId}", h.ListClientBills)
		r.Post("/bills", h.CreateBill)
		r.Post("/bills/sweep-overdue", h.SweepOverdue)
		r.Get("/bills/{bill}", h.GetBill)
		r.Put("/bills/{bill}", h.UpdateBill)
		r.With(h.payLimit()).Post("/bills/{bill}/pay", h.PayBill)

		// Customers
		r.Get("/customers", h.ListCustomers)
		r.Post("/customers", h.CreateCustomer)
		r.Get("/customers/{clientId}", h.GetCustomer)
		r.Put("/customers/{clientId}", h.UpdateCustomer)
		r.Get("/customers/{clientId}/exists", h.CustomerExists)
	})
}

func (h *Handler) payLimit() func(http.Handler) http.Handler {
	if h.cfg.PayRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := h.cfg.PayBurst
	if burst <= 0 {
		burst = 1
	}
	return RateLimit(rate.NewLimiter(rate.Limit(h.cfg.PayRateLimit), burst))
}

// internalError logs err and answers 500 with its message.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}
