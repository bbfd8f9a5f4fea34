// Package seed loads customers and bills from YAML fixtures.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

//go:embed default.yaml
var defaultFixture []byte

// Fixture is the YAML document shape.
type Fixture struct {
	Customers []models.CustomerInput `yaml:"customers"`
	Bills     []models.BillInput     `yaml:"bills"`
}

// Result counts what Apply did.
type Result struct {
	CustomersCreated int
	CustomersSkipped int
	BillsCreated     int
	BillsSkipped     int
}

// Decode reads and validates a fixture. Unknown keys are rejected.
func Decode(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	for i := range f.Customers {
		if msg := f.Customers[i].Validate(); msg != "" {
			return nil, fmt.Errorf("customer #%d: %s", i+1, msg)
		}
	}
	for i := range f.Bills {
		if msg := f.Bills[i].Validate(); msg != "" {
			return nil, fmt.Errorf("bill #%d (%s): %s", i+1, f.Bills[i].BillNumber, msg)
		}
	}
	return &f, nil
}

// Default returns the embedded demo dataset.
func Default() (*Fixture, error) {
	return Decode(bytes.NewReader(defaultFixture))
}

// LoadFile decodes the fixture at path, or the default dataset when path is empty.
func LoadFile(path string) (*Fixture, error) {
	if path == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Apply inserts the fixture into s. Customers and bills whose business keys
// already exist are left untouched, so Apply can run repeatedly.
func Apply(ctx context.Context, s *store.Store, f *Fixture) (Result, error) {
	var res Result

	for i := range f.Customers {
		in := &f.Customers[i]
		exists, err := s.Customers.Exists(ctx, in.ClientID)
		if err != nil {
			return res, err
		}
		if exists {
			res.CustomersSkipped++
			continue
		}
		if _, err := s.Customers.Create(ctx, in); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				res.CustomersSkipped++
				continue
			}
			return res, fmt.Errorf("creating customer %s: %w", in.ClientID, err)
		}
		res.CustomersCreated++
	}

	for i := range f.Bills {
		in := &f.Bills[i]
		_, err := s.Bills.GetByBillNumber(ctx, in.BillNumber)
		switch {
		case err == nil:
			res.BillsSkipped++
			continue
		case !errors.Is(err, store.ErrNotFound):
			return res, err
		}
		if _, err := s.Bills.Create(ctx, in); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				res.BillsSkipped++
				continue
			}
			return res, fmt.Errorf("creating bill %s: %w", in.BillNumber, err)
		}
		res.BillsCreated++
	}

	slog.Info("seed applied",
		"customers_created", res.CustomersCreated, "customers_skipped", res.CustomersSkipped,
		"bills_created", res.BillsCreated, "bills_skipped", res.BillsSkipped)
	return res, nil
}
