package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitResult struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter time.Duration
}

type RateLimitRepository interface {
	Allow(ctx context.Context, clientKey string) (*RateLimitResult, error)
}

type redisRepository struct {
	client    *redis.Client
	cfg       config.RateConfig
	now       func() time.Time
	newMember func() string
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil

}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now, newMember: uuid.NewString}
}

// Allow records one request for clientKey in a sliding window and reports
// whether it fits under the configured limit. Rejected requests are not
// counted against the window.
func (r *redisRepository) Allow(ctx context.Context, clientKey string) (*RateLimitResult, error) {

	key := "rate_limit:" + clientKey

	now := r.now().UnixMilli()
	window := r.cfg.WindowSize.Milliseconds()
	windowStart := now - window
	member := strconv.FormatInt(now, 10) + "-" + r.newMember()

	pipe := r.client.Pipeline()

	// drop requests that fell out of the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.PExpire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	requests := count.Val()

	if requests <= r.cfg.MaxRequests {
		return &RateLimitResult{
			Allowed:   true,
			Limit:     r.cfg.MaxRequests,
			Remaining: r.cfg.MaxRequests - requests,
		}, nil
	}

	if err := r.client.ZRem(ctx, key, member).Err(); err != nil {
		return nil, fmt.Errorf("failed to discard rejected request: %w", err)
	}

	scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest request time: %w", err)
	}

	retryAfter := r.cfg.WindowSize
	if len(scores) > 0 {
		retryAfter = time.Duration(max(int64(scores[0].Score)+window-now, 0)) * time.Millisecond
	}

	return &RateLimitResult{
		Allowed:    false,
		Limit:      r.cfg.MaxRequests,
		RetryAfter: retryAfter,
	}, nil
}
