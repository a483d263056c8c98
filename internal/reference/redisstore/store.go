// Package redisstore keeps reference counters in Redis, guarded by a redislock
// per entity. Counters are seeded from the newest Postgres record on first use.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

// LegacySource finds the newest existing reference for an entity.
type LegacySource interface {
	LastReference(ctx context.Context, entity reference.Entity) (string, bool, error)
}

type Store struct {
	rdb     *redis.Client
	locker  *redislock.Client
	legacy  LegacySource
	lockTTL time.Duration
}

func New(rdb *redis.Client, legacy LegacySource, lockTTL time.Duration) *Store {
	if lockTTL <= 0 {
		lockTTL = 5 * time.Second
	}

	return &Store{
		rdb:     rdb,
		locker:  redislock.New(rdb),
		legacy:  legacy,
		lockTTL: lockTTL,
	}
}

func counterKey(entity reference.Entity) string { return "refseq:" + string(entity) }
func lockKey(entity reference.Entity) string    { return "reflock:" + string(entity) }

func (s *Store) BeginAllocation(ctx context.Context, entity reference.Entity) (reference.AllocationTx, error) {
	lock, err := s.locker.Obtain(ctx, lockKey(entity), s.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 100),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("allocation lock for %s is busy: %w", entity, err)
	}

	if err != nil {
		return nil, fmt.Errorf("obtaining allocation lock: %w", err)
	}

	return &allocationTx{store: s, entity: entity, lock: lock, ctx: ctx}, nil
}

// Counters reads every entity's counter in one MGET.
func (s *Store) Counters(ctx context.Context) (map[reference.Entity]int64, error) {
	entities := reference.Entities()

	keys := make([]string, len(entities))
	for i, e := range entities {
		keys[i] = counterKey(e)
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("reading counters: %w", err)
	}

	out := make(map[reference.Entity]int64, len(entities))

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt counter %s=%q: %w", keys[i], raw, err)
		}

		out[entities[i]] = n
	}

	return out, nil
}

type allocationTx struct {
	store   *Store
	entity  reference.Entity
	lock    *redislock.Lock
	ctx     context.Context
	pending *int64
	done    bool
}

func (atx *allocationTx) Counter(ctx context.Context) (int64, bool, error) {
	raw, err := atx.store.rdb.Get(ctx, counterKey(atx.entity)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading counter: %w", err)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt counter %s=%q: %w", counterKey(atx.entity), raw, err)
	}

	return v, true, nil
}

func (atx *allocationTx) LastReference(ctx context.Context) (string, bool, error) {
	if atx.store.legacy == nil {
		return "", false, nil
	}

	return atx.store.legacy.LastReference(ctx, atx.entity)
}

func (atx *allocationTx) SetCounter(_ context.Context, value int64) error {
	atx.pending = &value
	return nil
}

// commitScript stores the counter only while KEYS[1] still holds this
// allocation's lock token, so an expired or stolen lock never writes.
var commitScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) ~= ARGV[1] then
	return false
end
return redis.call("SET", KEYS[2], ARGV[2])
`)

// Commit writes the counter while the lock is still held, then releases it.
// A lock that expired mid-allocation aborts the commit.
func (atx *allocationTx) Commit() error {
	if atx.done {
		return errors.New("allocation already finished")
	}

	defer atx.release()

	if atx.pending == nil {
		return nil
	}

	err := commitScript.Run(atx.ctx, atx.store.rdb,
		[]string{lockKey(atx.entity), counterKey(atx.entity)},
		atx.lock.Token(), *atx.pending,
	).Err()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("allocation lock for %s expired before commit", atx.entity)
	}

	if err != nil {
		return fmt.Errorf("storing counter: %w", err)
	}

	return nil
}

func (atx *allocationTx) Rollback() error {
	if atx.done {
		return nil
	}

	atx.release()

	return nil
}

func (atx *allocationTx) release() {
	atx.done = true
	// A cancelled request context must still free the lock.
	_ = atx.lock.Release(context.WithoutCancel(atx.ctx))
}
