package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	assert.Len(t, f.Customers, 4)
	assert.Len(t, f.Bills, 8)

	first := f.Bills[0]
	assert.Equal(t, "F-2025-02-12345", first.BillNumber)
	assert.Equal(t, models.Money(43200), first.Amount)
	assert.Equal(t, models.BillStatusPaid, first.Status)
	require.NotNil(t, first.PaymentDate)
	assert.Equal(t, "2025-03-10", first.PaymentDate.Format("2006-01-02"))
	require.NotNil(t, first.Consumption)
	assert.InDelta(t, 15.5, *first.Consumption, 0.0001)
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name: "status defaults to pending",
			body: `
bills:
  - billNumber: F-1
    clientId: "1"
    period: Enero 2025
    amount: 100
    dueDate: "2025-02-15"
    issueDate: "2025-01-15"
`,
		},
		{
			name:          "unknown key",
			body:          "customers:\n  - clientId: \"1\"\n    nombre: Juan\n",
			expectedError: "field nombre not found",
		},
		{
			name:          "missing customer name",
			body:          "customers:\n  - clientId: \"1\"\n    address: Calle 1\n",
			expectedError: "customer #1: Field name is required",
		},
		{
			name: "bad status",
			body: `
bills:
  - billNumber: F-1
    clientId: "1"
    period: Enero 2025
    amount: 100
    dueDate: "2025-02-15"
    issueDate: "2025-01-15"
    status: LATE
`,
			expectedError: "bill #1 (F-1): Field status must be one of",
		},
		{
			name:          "bad date",
			body:          "bills:\n  - billNumber: F-1\n    dueDate: \"15/02/2025\"\n",
			expectedError: "invalid date",
		},
		{
			name: "empty document",
			body: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(tc.body))
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			for _, b := range f.Bills {
				assert.Equal(t, models.BillStatusPending, b.Status)
			}
		})
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(nil)
	f, err := Default()
	require.NoError(t, err)

	res, err := Apply(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, Result{CustomersCreated: 4, BillsCreated: 8}, res)

	res, err = Apply(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, Result{CustomersSkipped: 4, BillsSkipped: 8}, res)

	bills, err := s.Bills.ListByClientID(ctx, "1234567")
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "F-2025-03-12345", bills[0].BillNumber)

	stats, err := s.Bills.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalBills)
	assert.Equal(t, 4, stats.PaidBills)
	assert.Equal(t, 3, stats.PendingBills)
	assert.Equal(t, 1, stats.OverdueBills)
}

func TestApplyMissingCustomer(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(nil)
	f, err := Decode(strings.NewReader(`
bills:
  - billNumber: F-1
    clientId: "404"
    period: Enero 2025
    amount: 100
    dueDate: "2025-02-15"
    issueDate: "2025-01-15"
`))
	require.NoError(t, err)

	_, err = Apply(ctx, s, f)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customers:\n  - clientId: \"42\"\n    name: Ana\n    address: Calle 1\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Customers, 1)
	assert.Equal(t, "42", f.Customers[0].ClientID)

	def, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, def.Customers, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
