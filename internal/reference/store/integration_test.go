//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference/store"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("liftdesk_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(dsn, database.Options{MaxOpenConns: 40})
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	return db
}

func TestIntegration_ConcurrentAllocation(t *testing.T) {
	db := startPostgres(t)
	svc := reference.NewService(store.New(db))

	const workers, perWorker = 20, 25

	var (
		mu   sync.Mutex
		refs []string
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWorker {
				ref, err := svc.Allocate(context.Background(), reference.EntityInvoice)
				assert.NoError(t, err)

				mu.Lock()
				refs = append(refs, ref)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		_, dup := seen[r]
		require.False(t, dup, "duplicate reference %s", r)

		seen[r] = struct{}{}
	}

	assert.Len(t, seen, workers*perWorker)

	counters, err := store.New(db).Counters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), counters[reference.EntityInvoice])
}

func TestIntegration_SeedsFromLegacyRows(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO customers (reference_id, name) VALUES ('CUST041', 'Old'), ('CUST007', 'Newer but lower')`)
	require.NoError(t, err)

	got, err := reference.NewService(store.New(db)).Allocate(ctx, reference.EntityCustomer)
	require.NoError(t, err)
	assert.Equal(t, "CUST008", got)
}
