//go:build integration

package redisstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference/redisstore"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { rdb.Close() })

	return rdb
}

type legacyRefs map[reference.Entity]string

func (l legacyRefs) LastReference(_ context.Context, e reference.Entity) (string, bool, error) {
	ref, ok := l[e]
	return ref, ok, nil
}

func TestIntegration_RedisAllocation(t *testing.T) {
	rdb := startRedis(t)
	svc := reference.NewService(redisstore.New(rdb, legacyRefs{reference.EntityAMC: "AMC41"}, 5*time.Second))
	ctx := context.Background()

	got, err := svc.Allocate(ctx, reference.EntityAMC)
	require.NoError(t, err)
	assert.Equal(t, "AMC42", got)

	got, err = svc.Allocate(ctx, reference.EntityCustomer)
	require.NoError(t, err)
	assert.Equal(t, "CUST001", got)

	peek, err := svc.Peek(ctx, reference.EntityAMC)
	require.NoError(t, err)
	assert.Equal(t, "AMC43", peek)

	counters, err := svc.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[reference.Entity]int64{reference.EntityAMC: 42, reference.EntityCustomer: 1}, counters)
}

func TestIntegration_RedisConcurrentAllocation(t *testing.T) {
	rdb := startRedis(t)
	svc := reference.NewService(redisstore.New(rdb, nil, 5*time.Second))

	const workers, perWorker = 10, 20

	var (
		mu   sync.Mutex
		seen = make(map[string]int)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWorker {
				ref, err := svc.Allocate(context.Background(), reference.EntityPayment)
				if !assert.NoError(t, err) {
					return
				}

				mu.Lock()
				seen[ref]++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Len(t, seen, workers*perWorker)

	for ref, n := range seen {
		assert.Equal(t, 1, n, ref)
	}
}

func TestIntegration_RedisCommitNeedsLiveLock(t *testing.T) {
	type testCase struct {
		name string
		lose func(ctx context.Context, rdb *redis.Client) error
	}

	tests := []testCase{
		{
			name: "Expired",
			lose: func(ctx context.Context, rdb *redis.Client) error {
				return rdb.Del(ctx, "reflock:invoice").Err()
			},
		},
		{
			name: "TakenOver",
			lose: func(ctx context.Context, rdb *redis.Client) error {
				return rdb.Set(ctx, "reflock:invoice", "someone-else", time.Minute).Err()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rdb := startRedis(t)
			ctx := context.Background()

			require.NoError(t, rdb.Set(ctx, "refseq:invoice", 7, 0).Err())

			atx, err := redisstore.New(rdb, nil, 5*time.Second).BeginAllocation(ctx, reference.EntityInvoice)
			require.NoError(t, err)

			require.NoError(t, atx.SetCounter(ctx, 8))
			require.NoError(t, tt.lose(ctx, rdb))

			err = atx.Commit()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expired before commit")

			got, err := rdb.Get(ctx, "refseq:invoice").Int64()
			require.NoError(t, err)
			assert.Equal(t, int64(7), got)
		})
	}
}
