package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const scoreKeyPattern = "score:%s:%x"

// Config carries the redis connection settings for the score cache.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ScoreCache memoizes per-category classifier scores in redis, keyed by
// a digest of the text. Model inference dominates request latency, so a
// hit skips the classifier entirely. Failures are treated as misses;
// the cache never fails an analysis.
type ScoreCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewScoreCache(cfg Config, ttl time.Duration) *ScoreCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewScoreCacheWithClient(client, ttl)
}

// NewScoreCacheWithClient allows injecting the redis client, used by
// tests with redismock.
func NewScoreCacheWithClient(client redis.Cmdable, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

func (c *ScoreCache) Get(ctx context.Context, category, text string) (float64, bool) {
	raw, err := c.client.Get(ctx, scoreKey(category, text)).Result()
	if err != nil {
		return 0, false
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

func (c *ScoreCache) Set(ctx context.Context, category, text string, score float64) {
	value := strconv.FormatFloat(score, 'f', -1, 64)
	c.client.Set(ctx, scoreKey(category, text), value, c.ttl)
}

func scoreKey(category, text string) string {
	return fmt.Sprintf(scoreKeyPattern, category, sha256.Sum256([]byte(text)))
}
