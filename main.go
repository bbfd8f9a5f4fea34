package main

//go:generate swag init

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/satheeshds/aguapago/config"
	"github.com/satheeshds/aguapago/db"
	_ "github.com/satheeshds/aguapago/docs"
	"github.com/satheeshds/aguapago/events"
	"github.com/satheeshds/aguapago/export"
	"github.com/satheeshds/aguapago/handlers"
	"github.com/satheeshds/aguapago/lifecycle"
	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/seed"
	"github.com/satheeshds/aguapago/store"
)

//go:embed static/*
var staticFiles embed.FS

const sweepTimeout = 5 * time.Minute

const usage = `Usage: aguapago [command] [flags]

Commands:
  serve    run the HTTP API (default)
  migrate  apply database migrations (postgres)
  sweep    mark past-due pending bills as overdue
  seed     load customers and bills from a YAML fixture (postgres)
  export   write bills to a Parquet or CSV file

Flags:
`

// @title           AguaPago API
// @version         1.0.0
// @description     Bill lookup, payment and administration for the El Pital water utility.
// @host            localhost:8080
// @BasePath        /

func main() {
	cmd, args := splitCommand(os.Args[1:])

	flags := pflag.NewFlagSet("aguapago", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "directory containing config.yaml")
	seedFile := flags.String("file", "", "seed: YAML fixture (default: built-in dataset)")
	out := flags.String("out", "", "export: output file")
	format := flags.String("format", string(export.FormatParquet), "export: parquet or csv")
	client := flags.String("client", "", "export: only bills of this client ID")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stdout, cfg.Logging)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "serve":
		err = serve(ctx, cfg, logger)
	case "migrate":
		err = migrate(ctx, cfg)
	case "sweep":
		err = sweep(ctx, cfg, logger)
	case "seed":
		err = seedData(ctx, cfg, *seedFile)
	case "export":
		err = exportBills(ctx, cfg, *out, *format, *client)
	default:
		flags.Usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

// splitCommand separates a leading subcommand from its flags. No command
// means serve.
func splitCommand(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "serve", args
}

func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openStore connects to the configured backend. The postgres schema is
// migrated on every start; the memory backend is loaded with the built-in
// dataset so the demo has something to show.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		s := store.NewMemory(nil)
		fixture, err := seed.Default()
		if err != nil {
			return nil, nil, err
		}
		if _, err := seed.Apply(ctx, s, fixture); err != nil {
			return nil, nil, fmt.Errorf("seeding memory store: %w", err)
		}
		slog.Warn("using in-memory store, data is lost on exit")
		return s, func() {}, nil
	}

	pool, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store.NewPostgres(pool), pool.Close, nil
}

func newPublisher(cfg config.KafkaConfig) (events.Publisher, error) {
	if !cfg.Enabled {
		return events.Nop{}, nil
	}
	producer, err := events.NewKafkaProducer(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("publishing bill events", "topic", cfg.Topic, "brokers", cfg.Brokers)
	return events.NewKafka(producer, cfg.Topic), nil
}

func newService(cfg *config.Config, s *store.Store, logger *slog.Logger) (*lifecycle.Service, func(), error) {
	publisher, err := newPublisher(cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	svc := lifecycle.NewService(s.Bills, publisher, cfg.Billing.Location(), lifecycle.WithLogger(logger))
	return svc, func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("failed to close event publisher", "error", err)
		}
	}, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, closeService, err := newService(cfg, s, logger)
	if err != nil {
		return err
	}
	defer closeService()

	if cfg.Sweep.Schedule != "" {
		scheduler, err := lifecycle.NewScheduler(cfg.Sweep.Schedule, svc, cfg.Billing.Location(), sweepTimeout, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
		slog.Info("overdue sweep scheduled", "schedule", cfg.Sweep.Schedule, "timezone", cfg.Billing.Timezone)
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			scheduler.Stop(stopCtx)
		}()
	}

	h := handlers.New(s, svc, handlers.Config{
		DefaultPageSize: cfg.Billing.DefaultPageSize,
		MaxPageSize:     cfg.Billing.MaxPageSize,
		PayRateLimit:    cfg.Server.PayRateLimit,
		PayBurst:        cfg.Server.PayBurst,
	}, logger)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	h.Routes(r)

	// Serve static files (UI)
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", srv.Addr, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, cfg *config.Config) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate requires the %s driver, got %s", config.DriverPostgres, cfg.Database.Driver)
	}
	_, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	closeStore()
	return nil
}

func sweep(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, closeService, err := newService(cfg, s, logger)
	if err != nil {
		return err
	}
	defer closeService()

	n, err := svc.Sweep(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d bills marked overdue\n", n)
	return nil
}

func seedData(ctx context.Context, cfg *config.Config, file string) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("seed requires the %s driver, got %s", config.DriverPostgres, cfg.Database.Driver)
	}
	fixture, err := seed.LoadFile(file)
	if err != nil {
		return err
	}
	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := seed.Apply(ctx, s, fixture)
	if err != nil {
		return err
	}
	fmt.Printf("customers: %d created, %d skipped; bills: %d created, %d skipped\n",
		res.CustomersCreated, res.CustomersSkipped, res.BillsCreated, res.BillsSkipped)
	return nil
}

func exportBills(ctx context.Context, cfg *config.Config, out, format, client string) error {
	if out == "" {
		return errors.New("--out is required")
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	filter := models.BillFilter{}
	if client != "" {
		filter.ClientID = &client
	}

	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	n, err := export.NewExporter(s.Bills, cfg.Billing.MaxPageSize).Export(ctx, filter, out, f)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d bills to %s\n", n, out)
	return nil
}
