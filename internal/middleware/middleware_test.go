package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenCache struct{}

var errDown = errors.New("cache down")

func (brokenCache) Get(context.Context, string) ([]byte, bool, error)          { return nil, false, errDown }
func (brokenCache) Set(context.Context, string, []byte, time.Duration) error { return errDown }
func (brokenCache) Incr(context.Context, string) (int64, error)              { return 0, errDown }

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if id := w.Header().Get(HeaderRequestID); id == "" || id != w.Body.String() {
		t.Fatalf("expected generated id echoed, got header %q body %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Fatalf("expected caller id to be kept, got %q", w.Header().Get(HeaderRequestID))
	}
}

func TestRequester_FallsBackToClientIP(t *testing.T) {
	r := gin.New()
	r.Use(Requester())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, requesterOf(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "ip:10.0.0.7" {
		t.Fatalf("unexpected requester %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequesterID, "alice")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "id:alice" {
		t.Fatalf("unexpected requester %q", w.Body.String())
	}
}

func TestResponseCache_BypassedWhenCacheFails(t *testing.T) {
	r := gin.New()
	r.Use(Requester(), ResponseCache(brokenCache{}, time.Minute, zap.NewNop()))

	calls := 0
	r.GET("/items", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"n": calls})
	})
	r.POST("/items", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler must run for every request, ran %d times", calls)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("write must succeed despite cache failure, got %d", w.Code)
	}
}
