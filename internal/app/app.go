// Package app wires stores, services and the sweep from configuration. The API
// server, the CLI and the console all start from here.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/liftdesk/internal/alias"
	aliasStore "github.com/MrJamesThe3rd/liftdesk/internal/alias/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	amcStore "github.com/MrJamesThe3rd/liftdesk/internal/amc/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/bulk"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	complaintStore "github.com/MrJamesThe3rd/liftdesk/internal/complaint/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/config"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	customerStore "github.com/MrJamesThe3rd/liftdesk/internal/customer/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/export"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/liftdesk/internal/invoice/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
	itemStore "github.com/MrJamesThe3rd/liftdesk/internal/item/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/liftdesk/internal/payment/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
	quotationStore "github.com/MrJamesThe3rd/liftdesk/internal/quotation/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference/redisstore"
	referenceStore "github.com/MrJamesThe3rd/liftdesk/internal/reference/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
	requisitionStore "github.com/MrJamesThe3rd/liftdesk/internal/requisition/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/servicelog"
	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

type App struct {
	Config   *config.Config
	DB       *sql.DB
	Redis    *redis.Client
	Calendar clock.Calendar

	References   *reference.Service
	Customers    *customer.Service
	Items        *item.Service
	AMCs         *amc.Service
	Invoices     *invoice.Service
	Quotations   *quotation.Service
	Requisitions *requisition.Service
	Payments     *payment.Service
	Complaints   *complaint.Service
	History      *servicelog.Service
	Aliases      *alias.Service
	Import       *bulk.Service
	Export       *export.Service
	Sweep        *sweep.Service
}

// New connects to Postgres (and Redis when enabled), applies pending migrations
// and builds every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.ConnectionString(), database.Options{
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	a := &App{
		Config:   cfg,
		DB:       db,
		Calendar: clock.Calendar{Clock: clock.System{}, Location: loc},
	}

	if cfg.Redis.Enabled {
		a.Redis, err = database.NewRedis(ctx, database.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
	}

	a.build()

	return a, nil
}

func (a *App) build() {
	cfg := a.Config
	calc := derive.NewCalculator(cfg.Rounder(), cfg.DuePolicy())

	refs := referenceStore.New(a.DB)

	var refRepo reference.Repository = refs
	if cfg.Sequence.Backend == config.SequenceRedis {
		refRepo = redisstore.New(a.Redis, refs, cfg.Sequence.LockTTL)
	}

	a.References = reference.NewService(refRepo)

	a.Customers = customer.NewService(customerStore.New(a.DB), a.References)
	a.Items = item.NewService(itemStore.New(a.DB), a.References)
	a.AMCs = amc.NewService(amcStore.New(a.DB), a.References, calc, a.Calendar)
	a.Invoices = invoice.NewService(invoiceStore.New(a.DB), a.References, calc, a.Calendar)
	a.Quotations = quotation.NewService(quotationStore.New(a.DB), a.References, calc, a.Calendar)
	a.Requisitions = requisition.NewService(requisitionStore.New(a.DB), a.References, a.Calendar)
	a.Complaints = complaint.NewService(complaintStore.New(a.DB), a.References, a.Calendar)
	a.Payments = payment.NewService(paymentStore.New(a.DB), a.References, a.Calendar, map[payment.TargetKind]payment.Target{
		payment.TargetInvoice: a.Invoices,
		payment.TargetAMC:     a.AMCs,
	})

	a.History = servicelog.NewService(a.Complaints, a.AMCs)
	a.Aliases = alias.NewService(aliasStore.New(a.DB))
	a.Import = bulk.NewService(bulk.Deps{
		Customers:    a.Customers,
		Items:        a.Items,
		AMCs:         a.AMCs,
		Invoices:     a.Invoices,
		Requisitions: a.Requisitions,
		Quotations:   a.Quotations,
		Payments:     a.Payments,
		Aliases:      a.Aliases,
	}, cfg.Import.MaxErrors)
	a.Export = export.NewService(a.AMCs, a.Invoices, a.Customers)

	var locker sweep.Locker = sweep.NewPGLocker(a.DB)
	if a.Redis != nil {
		locker = sweep.NewRedisLocker(a.Redis, cfg.Sweep.LockTTL)
	}

	a.Sweep = sweep.NewService(locker, a.Calendar, a.AMCs, a.Invoices, a.Quotations)
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Warn("closing redis", "error", err)
		}
	}

	if err := a.DB.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}
