package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/aguapago/models"
)

// testStoreContract runs the behaviour every backend must share against
// stores returned by newStore. Each call to newStore must return an empty store.
func testStoreContract(t *testing.T, newStore func(t *testing.T) *Store) {
	ctx := context.Background()

	seed := func(t *testing.T) *Store {
		t.Helper()
		s := newStore(t)
		for _, in := range []models.CustomerInput{
			{ClientID: "1234567", Name: "Juan Pérez", Address: "Calle 123 #45-67, Bogotá"},
			{ClientID: "7654321", Name: "María Gómez", Address: "Carrera 89 #12-34, Medellín", Email: ptr("maria.gomez@example.com")},
		} {
			in := in
			_, err := s.Customers.Create(ctx, &in)
			require.NoError(t, err)
		}
		return s
	}

	createBills := func(t *testing.T, s *Store) {
		t.Helper()
		for _, in := range []*models.BillInput{
			billInput("F-2025-01-12345", "1234567", 40000, "2025-01-01", "2025-01-15"),
			billInput("F-2025-02-12345", "1234567", 45000, "2025-02-01", "2025-02-15"),
			billInput("F-2025-03-12345", "1234567", 50000, "2025-03-01", "2025-03-15"),
			billInput("F-2025-02-67890", "7654321", 30000, "2025-02-01", "2025-02-15"),
		} {
			_, err := s.Bills.Create(ctx, in)
			require.NoError(t, err)
		}
	}

	numbers := func(bills []models.Bill) []string {
		out := make([]string, len(bills))
		for i, b := range bills {
			out[i] = b.BillNumber
		}
		return out
	}

	t.Run("customers", func(t *testing.T) {
		s := seed(t)

		c, err := s.Customers.GetByClientID(ctx, "7654321")
		require.NoError(t, err)
		assert.Equal(t, "María Gómez", c.Name)
		require.NotNil(t, c.Email)
		assert.Equal(t, "maria.gomez@example.com", *c.Email)
		assert.Nil(t, c.Phone)

		byID, err := s.Customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ClientID, byID.ClientID)

		_, err = s.Customers.GetByClientID(ctx, "0000000")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.Customers.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := s.Customers.Exists(ctx, "1234567")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = s.Customers.Exists(ctx, "0000000")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = s.Customers.Create(ctx, &models.CustomerInput{ClientID: "1234567", Name: "Otro", Address: "Otra"})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		updated, err := s.Customers.Update(ctx, "1234567", &models.CustomerPatch{Phone: ptr("+57 300 123 4567")})
		require.NoError(t, err)
		assert.Equal(t, "Juan Pérez", updated.Name)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "+57 300 123 4567", *updated.Phone)

		_, err = s.Customers.Update(ctx, "0000000", &models.CustomerPatch{Name: ptr("Nadie")})
		assert.ErrorIs(t, err, ErrNotFound)

		page, err := s.Customers.List(ctx, 1, 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, models.Pagination{Page: 1, Limit: 1, Total: 2, TotalPages: 2}, page.Pagination)

		page, err = s.Customers.List(ctx, 3, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 2, page.Pagination.Total)
	})

	t.Run("bill create", func(t *testing.T) {
		s := seed(t)

		b, err := s.Bills.Create(ctx, billInput("F-2025-03-12345", "1234567", 50000, "2025-03-01", "2025-04-15"))
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, models.BillStatusPending, b.Status)
		assert.Equal(t, models.Money(50000), b.Amount)
		assert.True(t, day("2025-04-15").Equal(b.DueDate))
		assert.Nil(t, b.PaymentDate)
		require.NotNil(t, b.Customer)
		assert.Equal(t, "Juan Pérez", b.Customer.Name)

		_, err = s.Bills.Create(ctx, billInput("F-2025-03-12345", "1234567", 1, "2025-03-01", "2025-04-15"))
		assert.ErrorIs(t, err, ErrDuplicateKey)

		_, err = s.Bills.Create(ctx, billInput("F-2025-03-99999", "0000000", 1, "2025-03-01", "2025-04-15"))
		var notFound *CustomerNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "0000000", notFound.ClientID)

		byID, err := s.Bills.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.BillNumber, byID.BillNumber)

		_, err = s.Bills.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.Bills.GetByBillNumber(ctx, "F-0000-00-00000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by client", func(t *testing.T) {
		s := seed(t)
		createBills(t, s)

		bills, err := s.Bills.ListByClientID(ctx, "1234567")
		require.NoError(t, err)
		assert.Equal(t, []string{"F-2025-03-12345", "F-2025-02-12345", "F-2025-01-12345"}, numbers(bills))

		bills, err = s.Bills.ListByClientID(ctx, "0000000")
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("history", func(t *testing.T) {
		s := seed(t)
		createBills(t, s)

		testCases := []struct {
			name               string
			filter             models.BillFilter
			expectedNumbers    []string
			expectedPagination models.Pagination
		}{
			{
				name:               "all, ties broken by bill number",
				filter:             models.BillFilter{Page: 1, Limit: 10},
				expectedNumbers:    []string{"F-2025-03-12345", "F-2025-02-12345", "F-2025-02-67890", "F-2025-01-12345"},
				expectedPagination: models.Pagination{Page: 1, Limit: 10, Total: 4, TotalPages: 1},
			},
			{
				name:               "client",
				filter:             models.BillFilter{ClientID: ptr("7654321"), Page: 1, Limit: 10},
				expectedNumbers:    []string{"F-2025-02-67890"},
				expectedPagination: models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
			},
			{
				name:               "issue date range is inclusive",
				filter:             models.BillFilter{StartDate: ptr(day("2025-02-01")), EndDate: ptr(day("2025-03-01")), Page: 1, Limit: 10},
				expectedNumbers:    []string{"F-2025-03-12345", "F-2025-02-12345", "F-2025-02-67890"},
				expectedPagination: models.Pagination{Page: 1, Limit: 10, Total: 3, TotalPages: 1},
			},
			{
				name:               "second page",
				filter:             models.BillFilter{Page: 2, Limit: 3},
				expectedNumbers:    []string{"F-2025-01-12345"},
				expectedPagination: models.Pagination{Page: 2, Limit: 3, Total: 4, TotalPages: 2},
			},
			{
				name:               "past the end",
				filter:             models.BillFilter{Page: 5, Limit: 3},
				expectedNumbers:    []string{},
				expectedPagination: models.Pagination{Page: 5, Limit: 3, Total: 4, TotalPages: 2},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				page, err := s.Bills.History(ctx, tc.filter)
				require.NoError(t, err)
				assert.Equal(t, tc.expectedNumbers, numbers(page.Items))
				assert.Equal(t, tc.expectedPagination, page.Pagination)
			})
		}

		paid, err := s.Bills.MarkPaid(ctx, "F-2025-01-12345", "REC-1", day("2025-01-10"))
		require.NoError(t, err)
		page, err := s.Bills.History(ctx, models.BillFilter{Status: ptr(models.BillStatusPaid), Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{paid.BillNumber}, numbers(page.Items))
	})

	t.Run("update", func(t *testing.T) {
		s := seed(t)
		b, err := s.Bills.Create(ctx, billInput("F-2025-03-12345", "1234567", 50000, "2025-03-01", "2025-04-15"))
		require.NoError(t, err)

		updated, err := s.Bills.Update(ctx, b.ID, &models.BillPatch{
			Amount:      ptr(models.Money(52000)),
			Status:      ptr(models.BillStatusCancelled),
			Consumption: ptr(18.5),
		})
		require.NoError(t, err)
		assert.Equal(t, models.Money(52000), updated.Amount)
		assert.Equal(t, models.BillStatusCancelled, updated.Status)
		require.NotNil(t, updated.Consumption)
		assert.Equal(t, 18.5, *updated.Consumption)
		assert.Equal(t, "Marzo 2025", updated.Period)

		_, err = s.Bills.Update(ctx, uuid.NewString(), &models.BillPatch{Amount: ptr(models.Money(1))})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("mark paid", func(t *testing.T) {
		s := seed(t)
		createBills(t, s)
		paidAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

		paid, err := s.Bills.MarkPaid(ctx, "F-2025-03-12345", "REC-2025-001", paidAt)
		require.NoError(t, err)
		assert.Equal(t, models.BillStatusPaid, paid.Status)
		require.NotNil(t, paid.PaymentDate)
		assert.True(t, paidAt.Equal(*paid.PaymentDate))
		require.NotNil(t, paid.ReceiptNumber)
		assert.Equal(t, "REC-2025-001", *paid.ReceiptNumber)

		_, err = s.Bills.MarkPaid(ctx, "F-0000-00-00000", "REC", paidAt)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stats", func(t *testing.T) {
		s := seed(t)
		createBills(t, s)
		_, err := s.Bills.MarkPaid(ctx, "F-2025-01-12345", "REC-1", day("2025-01-10"))
		require.NoError(t, err)

		stats, err := s.Bills.Stats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, models.BillStats{
			TotalBills: 4, PaidBills: 1, PendingBills: 3,
			TotalAmount: 165000, PaidAmount: 40000, PendingAmount: 125000,
		}, *stats)

		stats, err = s.Bills.Stats(ctx, "7654321")
		require.NoError(t, err)
		assert.Equal(t, models.BillStats{TotalBills: 1, PendingBills: 1, TotalAmount: 30000, PendingAmount: 30000}, *stats)

		stats, err = s.Bills.Stats(ctx, "0000000")
		require.NoError(t, err)
		assert.Equal(t, models.BillStats{}, *stats)
	})

	t.Run("sweep overdue", func(t *testing.T) {
		s := seed(t)
		createBills(t, s)
		_, err := s.Bills.MarkPaid(ctx, "F-2025-01-12345", "REC-1", day("2025-01-10"))
		require.NoError(t, err)

		// Bills due on the sweep day itself stay pending.
		swept, err := s.Bills.SweepOverdue(ctx, day("2025-03-15"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"F-2025-02-12345", "F-2025-02-67890"}, swept)

		swept, err = s.Bills.SweepOverdue(ctx, day("2025-03-15"))
		require.NoError(t, err)
		assert.Empty(t, swept)

		b, err := s.Bills.GetByBillNumber(ctx, "F-2025-02-67890")
		require.NoError(t, err)
		assert.Equal(t, models.BillStatusOverdue, b.Status)
		b, err = s.Bills.GetByBillNumber(ctx, "F-2025-03-12345")
		require.NoError(t, err)
		assert.Equal(t, models.BillStatusPending, b.Status)
	})
}

func TestMemoryContract(t *testing.T) {
	testStoreContract(t, func(t *testing.T) *Store {
		return NewMemory(fixedClock(day("2025-03-01")))
	})
}
