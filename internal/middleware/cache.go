package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/cache"
)

const (
	HeaderCache = "X-Cache"

	generationKey = "generation"
)

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type recordingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves repeated GETs from the cache. Entries are keyed by the
// current generation, the requester and the request URI. Any successful write
// bumps the generation, so stale entries are never read again and simply expire.
// Cache failures are logged and the request is served normally.
func ResponseCache(store cache.Cache, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if c.Request.Method != http.MethodGet {
			c.Next()

			if status := c.Writer.Status(); status >= 200 && status < 300 {
				if _, err := store.Incr(ctx, generationKey); err != nil {
					log.Warn("cache invalidation failed", zap.Error(err))
				}
			}
			return
		}

		gen, err := generation(c, store)
		if err != nil {
			log.Warn("cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		key := "resp:" + gen + ":" + requesterOf(c) + ":" + c.Request.URL.RequestURI()

		if raw, ok, err := store.Get(ctx, key); err != nil {
			log.Warn("cache read failed", zap.Error(err))
		} else if ok {
			var hit cachedResponse
			if err := json.Unmarshal(raw, &hit); err == nil {
				c.Header(HeaderCache, "HIT")
				c.Data(http.StatusOK, hit.ContentType, hit.Body)
				c.Abort()
				return
			}
		}

		rw := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rw
		c.Header(HeaderCache, "MISS")

		c.Next()

		if rw.Status() != http.StatusOK {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			ContentType: rw.Header().Get("Content-Type"),
			Body:        rw.buf.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.Set(ctx, key, raw, ttl); err != nil {
			log.Warn("cache write failed", zap.Error(err))
		}
	}
}

func generation(c *gin.Context, store cache.Cache) (string, error) {
	raw, ok, err := store.Get(c.Request.Context(), generationKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "0", nil
	}

	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return "0", nil
	}
	return strconv.FormatInt(n, 10), nil
}
