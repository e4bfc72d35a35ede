package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel/internal/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a mutating request repeats its Idempotency-Key.
// Keys are scoped to the route so the same key on two endpoints does not collide.
// A key reused with a different body is rejected with 422 and the stored response is not disclosed.
func IdempotencyMiddleware(store redis.IdempotencyStoreInterface, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only apply to mutating methods.
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		requestHash := hashBody(body)

		ctx := c.Request.Context()
		storeKey := c.Request.Method + ":" + c.FullPath() + ":" + key

		cached, err := store.Get(ctx, storeKey)
		if err != nil {
			// Redis error - proceed without idempotency.
			log.WithError(err).Warn("idempotency lookup failed")
			c.Next()
			return
		}

		if cached != nil {
			if cached.RequestHash != requestHash {
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "idempotency key was already used with a different request"})
				return
			}
			for k, v := range cached.Headers {
				for _, val := range v {
					c.Header(k, val)
				}
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Server errors are not stored so the client can retry.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 500 {
			response := redis.StoredResponse{
				RequestHash: requestHash,
				StatusCode:  c.Writer.Status(),
				Body:        w.body.Bytes(),
				Headers:     extractResponseHeaders(c),
			}
			if err := store.Set(ctx, storeKey, &response, idempotencyTTL); err != nil {
				log.WithError(err).Warn("failed to store idempotent response")
			}
		}
	}
}

// extractResponseHeaders extracts headers to cache.
func extractResponseHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	// Only cache Content-Type header.
	if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
		headers.Set("Content-Type", ct)
	}
	return headers
}

func hashBody(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
