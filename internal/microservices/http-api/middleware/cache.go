package middleware

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"moviehub/internal/logging"
)

const cachePrefix = "moviehub:resp"

// ResponseCache stores successful GET responses in Redis and drops all of
// them after any successful write. A nil *ResponseCache or nil client is a
// pass-through.
type ResponseCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewResponseCache(rdb *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ResponseCache{rdb: rdb, ttl: ttl, prefix: cachePrefix}
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	TotalCount  string `json:"total_count,omitempty"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Key derives the cache key from method, path and the canonical query.
func (rc *ResponseCache) Key(r *http.Request) string {
	sum := blake2b.Sum256([]byte(r.Method + " " + r.URL.Path + "?" + r.URL.Query().Encode()))
	return rc.prefix + ":" + hex.EncodeToString(sum[:])
}

func (rc *ResponseCache) enabled() bool {
	return rc != nil && rc.rdb != nil
}

// Cache serves GETs from Redis when possible, otherwise records 200s.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rc.enabled() || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rc.Key(c.Request)

		if raw, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				if cached.TotalCount != "" {
					c.Header(HeaderTotalCount, cached.TotalCount)
				}
				c.Header("X-Cache", "HIT")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() != http.StatusOK {
			return
		}
		payload, err := json.Marshal(cachedResponse{
			Status:      cw.Status(),
			ContentType: cw.Header().Get("Content-Type"),
			TotalCount:  cw.Header().Get(HeaderTotalCount),
			Body:        cw.buf.Bytes(),
		})
		if err != nil {
			return
		}
		if err := rc.rdb.Set(context.WithoutCancel(ctx), key, payload, rc.ttl).Err(); err != nil {
			logging.FromContext(ctx).Warn("response not cached", "key", key, "error", err)
		}
	}
}

// Purge drops every cached response once the wrapped write succeeded.
func (rc *ResponseCache) Purge() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !rc.enabled() || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ctx := context.WithoutCancel(c.Request.Context())
		if err := rc.purgeAll(ctx); err != nil {
			logging.FromContext(ctx).Warn("response cache not purged", "error", err)
		}
	}
}

func (rc *ResponseCache) purgeAll(ctx context.Context) error {
	iter := rc.rdb.Scan(ctx, 0, rc.prefix+":*", 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := rc.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return rc.rdb.Del(ctx, batch...).Err()
	}
	return nil
}
