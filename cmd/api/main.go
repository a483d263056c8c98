package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/liftdesk/internal/app"
	"github.com/MrJamesThe3rd/liftdesk/internal/config"
	liftHttp "github.com/MrJamesThe3rd/liftdesk/internal/http"
	aliasHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/alias"
	amcHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/amc"
	importHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/bulk"
	complaintHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/complaint"
	customerHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/customer"
	exportHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/export"
	invoiceHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/invoice"
	itemHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/item"
	paymentHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/payment"
	quotationHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/quotation"
	referenceHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/reference"
	requisitionHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/requisition"
	historyHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/servicelog"
	sweepHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/sweep"
	"github.com/MrJamesThe3rd/liftdesk/internal/logging"
	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(os.Stdout, logging.Options{
		Level:   cfg.App.LogLevel,
		JSON:    cfg.IsProduction(),
		AppName: cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	router := liftHttp.New(liftHttp.Handlers{
		Customers:    customerHandler.NewHandler(a.Customers),
		History:      historyHandler.NewHandler(a.History),
		Items:        itemHandler.NewHandler(a.Items),
		AMCs:         amcHandler.NewHandler(a.AMCs),
		Invoices:     invoiceHandler.NewHandler(a.Invoices),
		Quotations:   quotationHandler.NewHandler(a.Quotations),
		Requisitions: requisitionHandler.NewHandler(a.Requisitions),
		Payments:     paymentHandler.NewHandler(a.Payments),
		Complaints:   complaintHandler.NewHandler(a.Complaints),
		References:   referenceHandler.NewHandler(a.References),
		Import:       importHandler.NewHandler(a.Import, cfg.Import.MaxUploadBytes),
		Aliases:      aliasHandler.NewHandler(a.Aliases),
		Export:       exportHandler.NewHandler(a.Export, a.Calendar),
		Sweep:        sweepHandler.NewHandler(a.Sweep),
	}, liftHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	})

	if cfg.Sweep.Enabled {
		go sweep.NewRunner(a.Sweep, cfg.Sweep.Interval).Start(ctx)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "sequence_backend", cfg.Sequence.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
