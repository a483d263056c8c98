package sweep

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const lockName = "liftdesk:sweep"

type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb), ttl: ttl}
}

// TryLock does not retry: a held lock means a sweep is already running.
func (l *RedisLocker) TryLock(ctx context.Context) (func(), bool, error) {
	lock, err := l.client.Obtain(ctx, lockName, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("obtaining sweep lock: %w", err)
	}

	return func() { _ = lock.Release(context.WithoutCancel(ctx)) }, true, nil
}

// PGLocker uses a session-level advisory lock, so it pins one pooled connection
// for the duration of the sweep.
type PGLocker struct {
	db *sql.DB
}

func NewPGLocker(db *sql.DB) *PGLocker {
	return &PGLocker{db: db}
}

func advisoryKey() int64 {
	h := fnv.New64a()
	h.Write([]byte(lockName))

	return int64(h.Sum64())
}

func (l *PGLocker) TryLock(ctx context.Context) (func(), bool, error) {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("reserving connection: %w", err)
	}

	key := advisoryKey()

	var ok bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&ok); err != nil {
		conn.Close()
		return nil, false, fmt.Errorf("trying sweep lock: %w", err)
	}

	if !ok {
		conn.Close()
		return nil, false, nil
	}

	release := func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", key)
		conn.Close()
	}

	return release, true, nil
}
