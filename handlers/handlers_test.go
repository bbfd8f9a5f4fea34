package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/satheeshds/aguapago/lifecycle"
	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
	"github.com/satheeshds/aguapago/store/mocks"
)

var testNow = time.Date(2025, 4, 16, 15, 0, 0, 0, time.UTC)

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      string             `json:"error"`
	Message    string             `json:"message"`
	Pagination *models.Pagination `json:"pagination"`
}

type testServer struct {
	t      *testing.T
	router http.Handler
	store  *store.Store
}

func newTestServer(t *testing.T, cfg Config) *testServer {
	t.Helper()
	s := store.NewMemory(nil)
	ctx := context.Background()
	for _, in := range []models.CustomerInput{
		{ClientID: "1234567", Name: "Juan Pérez", Address: "Calle 123 #45-67, El Pital"},
		{ClientID: "7654321", Name: "María Gómez", Address: "Carrera 89 #12-34, El Pital"},
	} {
		_, err := s.Customers.Create(ctx, &in)
		require.NoError(t, err)
	}
	for _, in := range []*models.BillInput{
		{
			BillNumber: "F-2025-03-12345", ClientID: "1234567", Period: "Marzo 2025", Amount: 47500,
			IssueDate: models.NewDate(date("2025-03-15")), DueDate: models.NewDate(date("2025-04-15")),
		},
		{
			BillNumber: "F-2025-02-12345", ClientID: "1234567", Period: "Febrero 2025", Amount: 43200,
			IssueDate: models.NewDate(date("2025-02-15")), DueDate: models.NewDate(date("2025-03-15")),
			Status: models.BillStatusPaid,
		},
		{
			BillNumber: "F-2025-02-67890", ClientID: "7654321", Period: "Febrero 2025", Amount: 52000,
			IssueDate: models.NewDate(date("2025-02-15")), DueDate: models.NewDate(date("2025-03-15")),
		},
	} {
		_, err := s.Bills.Create(ctx, in)
		require.NoError(t, err)
	}
	return newServerForStore(t, s, cfg)
}

func newServerForStore(t *testing.T, s *store.Store, cfg Config) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := lifecycle.NewService(s.Bills, nil, time.UTC,
		lifecycle.WithClock(func() time.Time { return testNow }), lifecycle.WithLogger(logger))
	h := New(s, svc, cfg, logger)
	r := chi.NewRouter()
	h.Routes(r)
	return &testServer{t: t, router: r, store: s}
}

func date(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (ts *testServer) do(method, path string, body any) (int, envelope) {
	ts.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(ts.t, "application/json", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(ts.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestSearchBill(t *testing.T) {
	ts := newTestServer(t, Config{})

	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing bill number",
			path:           "/api/bills/search",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bill number is required",
		},
		{
			name:           "unknown bill",
			path:           "/api/bills/search?billNumber=F-0000",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Bill not found",
		},
		{
			name:           "found",
			path:           "/api/bills/search?billNumber=F-2025-03-12345",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := ts.do(http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedError, env.Error)
			assert.Equal(t, tc.expectedError == "", env.Success)
			if tc.expectedError == "" {
				b := decode[models.Bill](t, env.Data)
				assert.Equal(t, "F-2025-03-12345", b.BillNumber)
				require.NotNil(t, b.Customer)
				assert.Equal(t, "Juan Pérez", b.Customer.Name)
			}
		})
	}
}

func TestCreateBillScenario(t *testing.T) {
	ts := newTestServer(t, Config{})

	status, env := ts.do(http.MethodPost, "/api/bills", map[string]any{
		"billNumber": "F-2025-05-12345",
		"clientId":   "1234567",
		"period":     "Mayo 2025",
		"amount":     45000,
		"dueDate":    "2025-06-15",
		"issueDate":  "2025-05-15",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.True(t, env.Success)
	assert.Equal(t, "Bill created successfully", env.Message)
	created := decode[models.Bill](t, env.Data)
	assert.Equal(t, models.BillStatusPending, created.Status)

	status, env = ts.do(http.MethodGet, "/api/bills/search?billNumber=F-2025-05-12345", nil)
	require.Equal(t, http.StatusOK, status)
	found := decode[models.Bill](t, env.Data)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.Money(45000), found.Amount)
	require.NotNil(t, found.Customer)
	assert.Equal(t, "1234567", found.Customer.ClientID)
}

func TestCreateBillErrors(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"billNumber": "F-NEW",
			"clientId":   "1234567",
			"period":     "Mayo 2025",
			"amount":     45000,
			"dueDate":    "2025-06-15",
			"issueDate":  "2025-05-15",
		}
	}

	testCases := []struct {
		name           string
		body           any
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON",
		},
		{
			name: "missing period",
			body: func() map[string]any {
				b := valid()
				delete(b, "period")
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field period is required",
		},
		{
			name: "negative amount",
			body: func() map[string]any {
				b := valid()
				b["amount"] = -5
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field amount must be at least 0",
		},
		{
			name: "unknown status",
			body: func() map[string]any {
				b := valid()
				b["status"] = "LATE"
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field status must be one of: PENDING, PAID, OVERDUE, CANCELLED",
		},
		{
			name: "bad date",
			body: func() map[string]any {
				b := valid()
				b["dueDate"] = "15/06/2025"
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON",
		},
		{
			name: "unknown customer",
			body: func() map[string]any {
				b := valid()
				b["clientId"] = "0000000"
				return b
			}(),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Customer with clientId 0000000 not found",
		},
		{
			name: "duplicate bill number",
			body: func() map[string]any {
				b := valid()
				b["billNumber"] = "F-2025-03-12345"
				return b
			}(),
			expectedStatus: http.StatusConflict,
			expectedError:  "Bill with this billNumber already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, Config{})
			status, env := ts.do(http.MethodPost, "/api/bills", tc.body)
			assert.Equal(t, tc.expectedStatus, status)
			assert.False(t, env.Success)
			assert.Equal(t, tc.expectedError, env.Error)

			_, err := ts.store.Bills.GetByBillNumber(context.Background(), "F-NEW")
			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestListClientBills(t *testing.T) {
	ts := newTestServer(t, Config{})

	status, env := ts.do(http.MethodGet, "/api/bills/client/1234567", nil)
	require.Equal(t, http.StatusOK, status)
	bills := decode[[]models.Bill](t, env.Data)
	require.Len(t, bills, 2)
	assert.Equal(t, "F-2025-03-12345", bills[0].BillNumber)

	status, env = ts.do(http.MethodGet, "/api/bills/client/0000000", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestBillHistory(t *testing.T) {
	ts := newTestServer(t, Config{DefaultPageSize: 1, MaxPageSize: 2})

	testCases := []struct {
		name            string
		query           string
		expectedStatus  int
		expectedError   string
		expectedNumbers []string
		expectedPage    *models.Pagination
	}{
		{
			name:            "limit is capped",
			query:           "?limit=50",
			expectedStatus:  http.StatusOK,
			expectedNumbers: []string{"F-2025-03-12345", "F-2025-02-12345"},
			expectedPage:    &models.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2},
		},
		{
			name:            "client and status",
			query:           "?clientId=1234567&status=paid&limit=5",
			expectedStatus:  http.StatusOK,
			expectedNumbers: []string{"F-2025-02-12345"},
			expectedPage:    &models.Pagination{Page: 1, Limit: 2, Total: 1, TotalPages: 1},
		},
		{
			name:            "date range",
			query:           "?startDate=2025-02-01&endDate=2025-02-28&limit=5",
			expectedStatus:  http.StatusOK,
			expectedNumbers: []string{"F-2025-02-12345", "F-2025-02-67890"},
			expectedPage:    &models.Pagination{Page: 1, Limit: 2, Total: 2, TotalPages: 1},
		},
		{
			name:           "bad status",
			query:          "?status=LATE",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "status must be one of: PENDING, PAID, OVERDUE, CANCELLED",
		},
		{
			name:           "bad page",
			query:          "?page=0",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "page must be a positive integer",
		},
		{
			name:           "bad limit",
			query:          "?limit=ten",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "limit must be a positive integer",
		},
		{
			name:           "bad date",
			query:          "?startDate=yesterday",
			expectedStatus: http.StatusBadRequest,
			expectedError:  `startDate: invalid date "yesterday": use YYYY-MM-DD or RFC 3339`,
		},
		{
			name:           "page offset overflows",
			query:          "?page=9223372036854775807",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "page is out of range",
		},
		{
			name:            "page past the end",
			query:           "?page=92233720368547760&limit=2",
			expectedStatus:  http.StatusOK,
			expectedNumbers: []string{},
			expectedPage:    &models.Pagination{Page: 92233720368547760, Limit: 2, Total: 3, TotalPages: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := ts.do(http.MethodGet, "/api/bills/history"+tc.query, nil)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedError, env.Error)
			if tc.expectedError != "" {
				return
			}
			bills := decode[[]models.Bill](t, env.Data)
			numbers := make([]string, len(bills))
			for i, b := range bills {
				numbers[i] = b.BillNumber
			}
			assert.Equal(t, tc.expectedNumbers, numbers)
			assert.Equal(t, tc.expectedPage, env.Pagination)
		})
	}
}

func TestGetAndUpdateBill(t *testing.T) {
	ts := newTestServer(t, Config{})
	b, err := ts.store.Bills.GetByBillNumber(context.Background(), "F-2025-03-12345")
	require.NoError(t, err)

	status, env := ts.do(http.MethodGet, "/api/bills/"+b.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "F-2025-03-12345", decode[models.Bill](t, env.Data).BillNumber)

	status, env = ts.do(http.MethodGet, "/api/bills/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bill not found", env.Error)

	status, env = ts.do(http.MethodPut, "/api/bills/"+b.ID, map[string]any{"status": "CANCELLED", "amount": 40000})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "Bill updated successfully", env.Message)
	updated := decode[models.Bill](t, env.Data)
	assert.Equal(t, models.BillStatusCancelled, updated.Status)
	assert.Equal(t, models.Money(40000), updated.Amount)
	assert.Equal(t, "Marzo 2025", updated.Period)

	status, env = ts.do(http.MethodPut, "/api/bills/missing-id", map[string]any{"period": "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bill not found", env.Error)

	status, env = ts.do(http.MethodPut, "/api/bills/"+b.ID, map[string]any{"status": "LATE"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "Field status must be one of")
}

func TestPayBill(t *testing.T) {
	ts := newTestServer(t, Config{})

	status, env := ts.do(http.MethodPost, "/api/bills/F-2025-03-12345/pay", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Receipt number is required", env.Error)

	status, env = ts.do(http.MethodPost, "/api/bills/F-0000/pay", map[string]any{"receiptNumber": "COMP-1"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bill not found", env.Error)

	status, env = ts.do(http.MethodPost, "/api/bills/F-2025-03-12345/pay", map[string]any{"receiptNumber": "COMP-1"})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "Bill marked as paid successfully", env.Message)
	paid := decode[models.Bill](t, env.Data)
	assert.Equal(t, models.BillStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.True(t, testNow.Equal(*paid.PaymentDate))
	require.NotNil(t, paid.ReceiptNumber)
	assert.Equal(t, "COMP-1", *paid.ReceiptNumber)
}

func TestPayBillRateLimit(t *testing.T) {
	ts := newTestServer(t, Config{PayRateLimit: 0.001, PayBurst: 1})

	status, _ := ts.do(http.MethodPost, "/api/bills/F-2025-03-12345/pay", map[string]any{"receiptNumber": "COMP-1"})
	assert.Equal(t, http.StatusOK, status)

	status, env := ts.do(http.MethodPost, "/api/bills/F-2025-02-67890/pay", map[string]any{"receiptNumber": "COMP-2"})
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.False(t, env.Success)

	// Other endpoints are not throttled.
	status, _ = ts.do(http.MethodGet, "/api/bills/search?billNumber=F-2025-02-67890", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestSweepOverdueEndpoint(t *testing.T) {
	ts := newTestServer(t, Config{})

	status, env := ts.do(http.MethodPost, "/api/bills/sweep-overdue", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"updated": 2}`, string(env.Data))

	status, env = ts.do(http.MethodPost, "/api/bills/sweep-overdue", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"updated": 0}`, string(env.Data))

	b, err := ts.store.Bills.GetByBillNumber(context.Background(), "F-2025-03-12345")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusOverdue, b.Status)
}

func TestBillStats(t *testing.T) {
	ts := newTestServer(t, Config{})

	status, env := ts.do(http.MethodGet, "/api/bills/stats?clientId=1234567", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.BillStats{
		TotalBills:    2,
		PaidBills:     1,
		PendingBills:  1,
		TotalAmount:   90700,
		PaidAmount:    43200,
		PendingAmount: 47500,
	}, decode[models.BillStats](t, env.Data))

	status, env = ts.do(http.MethodGet, "/api/bills/stats", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, decode[models.BillStats](t, env.Data).TotalBills)
}

func TestCustomers(t *testing.T) {
	ts := newTestServer(t, Config{DefaultPageSize: 1, MaxPageSize: 10})

	t.Run("list", func(t *testing.T) {
		status, env := ts.do(http.MethodGet, "/api/customers", nil)
		require.Equal(t, http.StatusOK, status)
		customers := decode[[]models.Customer](t, env.Data)
		require.Len(t, customers, 1)
		assert.Equal(t, &models.Pagination{Page: 1, Limit: 1, Total: 2, TotalPages: 2}, env.Pagination)

		status, env = ts.do(http.MethodGet, "/api/customers?page=-1", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "page must be a positive integer", env.Error)

		status, env = ts.do(http.MethodGet, "/api/customers?page=92233720368547760&limit=100", nil)
		require.Equal(t, http.StatusOK, status, env.Error)
		assert.JSONEq(t, "[]", string(env.Data))

		status, env = ts.do(http.MethodGet, "/api/customers?page=922337203685477581&limit=100", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "page is out of range", env.Error)
	})

	t.Run("get", func(t *testing.T) {
		status, env := ts.do(http.MethodGet, "/api/customers/7654321", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "María Gómez", decode[models.Customer](t, env.Data).Name)

		status, env = ts.do(http.MethodGet, "/api/customers/0000000", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Customer not found", env.Error)
	})

	t.Run("create", func(t *testing.T) {
		status, env := ts.do(http.MethodPost, "/api/customers", map[string]any{
			"clientId": "1357924",
			"name":     "Ana Martínez",
			"address":  "Calle 45 #89-12, El Pital",
			"email":    "ana.martinez@email.com",
		})
		require.Equal(t, http.StatusCreated, status, env.Error)
		assert.Equal(t, "Customer created successfully", env.Message)
		assert.Equal(t, "1357924", decode[models.Customer](t, env.Data).ClientID)

		status, env = ts.do(http.MethodPost, "/api/customers", map[string]any{
			"clientId": "1357924",
			"name":     "Otra Persona",
			"address":  "Otra dirección",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Customer with this clientId already exists", env.Error)

		status, env = ts.do(http.MethodPost, "/api/customers", map[string]any{"clientId": "1", "name": "Sin dirección"})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Field address is required", env.Error)

		status, env = ts.do(http.MethodPost, "/api/customers", map[string]any{
			"clientId": "2", "name": "x", "address": "y", "email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Field email must be a valid email address", env.Error)
	})

	t.Run("update", func(t *testing.T) {
		status, env := ts.do(http.MethodPut, "/api/customers/1234567", map[string]any{"phone": "3001234567"})
		require.Equal(t, http.StatusOK, status, env.Error)
		assert.Equal(t, "Customer updated successfully", env.Message)
		c := decode[models.Customer](t, env.Data)
		assert.Equal(t, "Juan Pérez", c.Name)
		require.NotNil(t, c.Phone)
		assert.Equal(t, "3001234567", *c.Phone)

		status, env = ts.do(http.MethodPut, "/api/customers/0000000", map[string]any{"name": "x"})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Customer not found", env.Error)

		status, env = ts.do(http.MethodPut, "/api/customers/1234567", map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Field name must not be empty", env.Error)
	})

	t.Run("exists", func(t *testing.T) {
		status, env := ts.do(http.MethodGet, "/api/customers/1234567/exists", nil)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"exists": true}`, string(env.Data))

		status, env = ts.do(http.MethodGet, "/api/customers/0000000/exists", nil)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"exists": false}`, string(env.Data))
	})
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Config{})
	status, env := ts.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestInternalErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name   string
		method string
		path   string
		body   any
		setup  func(customers *mocks.MockCustomerStore, bills *mocks.MockBillStore)
	}{
		{
			name:   "client bills",
			method: http.MethodGet,
			path:   "/api/bills/client/1234567",
			setup: func(_ *mocks.MockCustomerStore, bills *mocks.MockBillStore) {
				bills.EXPECT().ListByClientID(gomock.Any(), "1234567").Return(nil, storeErr)
			},
		},
		{
			name:   "history",
			method: http.MethodGet,
			path:   "/api/bills/history",
			setup: func(_ *mocks.MockCustomerStore, bills *mocks.MockBillStore) {
				bills.EXPECT().History(gomock.Any(), models.BillFilter{Page: 1, Limit: 10}).Return(nil, storeErr)
			},
		},
		{
			name:   "search",
			method: http.MethodGet,
			path:   "/api/bills/search?billNumber=F-1",
			setup: func(_ *mocks.MockCustomerStore, bills *mocks.MockBillStore) {
				bills.EXPECT().GetByBillNumber(gomock.Any(), "F-1").Return(nil, storeErr)
			},
		},
		{
			name:   "stats",
			method: http.MethodGet,
			path:   "/api/bills/stats",
			setup: func(_ *mocks.MockCustomerStore, bills *mocks.MockBillStore) {
				bills.EXPECT().Stats(gomock.Any(), "").Return(nil, storeErr)
			},
		},
		{
			name:   "sweep",
			method: http.MethodPost,
			path:   "/api/bills/sweep-overdue",
			setup: func(_ *mocks.MockCustomerStore, bills *mocks.MockBillStore) {
				bills.EXPECT().SweepOverdue(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
		},
		{
			name:   "customer exists",
			method: http.MethodGet,
			path:   "/api/customers/1234567/exists",
			setup: func(customers *mocks.MockCustomerStore, _ *mocks.MockBillStore) {
				customers.EXPECT().Exists(gomock.Any(), "1234567").Return(false, storeErr)
			},
		},
		{
			name:   "create customer",
			method: http.MethodPost,
			path:   "/api/customers",
			body:   map[string]any{"clientId": "1", "name": "n", "address": "a"},
			setup: func(customers *mocks.MockCustomerStore, _ *mocks.MockBillStore) {
				customers.EXPECT().Exists(gomock.Any(), "1").Return(false, nil)
				customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
		},
		{
			name:   "list customers",
			method: http.MethodGet,
			path:   "/api/customers",
			setup: func(customers *mocks.MockCustomerStore, _ *mocks.MockBillStore) {
				customers.EXPECT().List(gomock.Any(), 1, 10).Return(nil, storeErr)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			customers := mocks.NewMockCustomerStore(ctrl)
			bills := mocks.NewMockBillStore(ctrl)
			tc.setup(customers, bills)

			ts := newServerForStore(t, &store.Store{Customers: customers, Bills: bills}, Config{})
			status, env := ts.do(tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.False(t, env.Success)
			assert.Equal(t, "connection refused", env.Error)
		})
	}
}

func TestCreateCustomerRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomerStore(ctrl)
	customers.EXPECT().Exists(gomock.Any(), "1").Return(false, nil)
	customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, store.ErrDuplicateKey)

	ts := newServerForStore(t, &store.Store{Customers: customers, Bills: mocks.NewMockBillStore(ctrl)}, Config{})
	status, env := ts.do(http.MethodPost, "/api/customers", map[string]any{"clientId": "1", "name": "n", "address": "a"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Customer with this clientId already exists", env.Error)
}
