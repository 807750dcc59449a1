package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// ErrCacheMiss is returned when the leaderboard is not cached.
var ErrCacheMiss = errors.New("leaderboard not found in cache")

const leaderboardKey = "leaderboard:top"

// LeaderboardCacheRepository caches the ranked leaderboard in Redis
type LeaderboardCacheRepository struct {
	client      *redis.Client
	exp         time.Duration // expiration duration for the cached leaderboard
	afterCommit AfterCommitFunc
}

// AfterCommitFunc defers hook until the transaction carried by ctx commits.
type AfterCommitFunc func(ctx context.Context, hook func(context.Context))

// LeaderboardCacheOption configures a LeaderboardCacheRepository.
type LeaderboardCacheOption func(*LeaderboardCacheRepository)

// WithAfterCommit makes Invalidate drop the key a second time once the
// surrounding transaction commits, so a read racing the commit cannot keep
// stale counts cached.
func WithAfterCommit(fn AfterCommitFunc) LeaderboardCacheOption {
	return func(r *LeaderboardCacheRepository) {
		r.afterCommit = fn
	}
}

// NewLeaderboardCacheRepository creates a new repository instance with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration, opts ...LeaderboardCacheOption) *LeaderboardCacheRepository {
	r := &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the cached leaderboard or ErrCacheMiss.
func (r *LeaderboardCacheRepository) Get(ctx context.Context) ([]models.LeaderboardEntry, error) {
	val, err := r.client.Get(ctx, leaderboardKey).Bytes()
	logger.Log.Debugw("cache get", "key", leaderboardKey, "size", len(val), "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Set caches the leaderboard with expiration
func (r *LeaderboardCacheRepository) Set(ctx context.Context, entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, leaderboardKey, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", leaderboardKey, "entries", len(entries), "error", err)

	return err
}

// Invalidate drops the cached leaderboard.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	err := r.del(ctx)
	if r.afterCommit != nil {
		r.afterCommit(ctx, func(ctx context.Context) {
			if err := r.del(ctx); err != nil {
				logger.Log.Errorw("failed to invalidate leaderboard cache after commit", "error", err)
			}
		})
	}
	return err
}

func (r *LeaderboardCacheRepository) del(ctx context.Context) error {
	err := r.client.Del(ctx, leaderboardKey).Err()
	logger.Log.Debugw("cache invalidate", "key", leaderboardKey, "error", err)

	return err
}
