package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func signTestToken(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":   "42",
		"user_name": "ada.byron",
		"role":      "employee",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signTestToken(t, "wrong-secret")})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session token")
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signTestToken(t, "test-secret")})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"42"`)
	assert.Contains(t, w.Body.String(), `"role":"employee"`)
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/sheets:42:abc").SetVal(`{"message":"Saved","internalStatus":"success"}`)

	handlerCalled := false
	r := gin.New()
	r.POST("/sheets", func(c *gin.Context) {
		c.Set("user_id", "42")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		handlerCalled = true
		c.String(http.StatusOK, "fresh")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sheets", nil)
	req.Header.Set("Idempotency-Key", "abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, handlerCalled)
	assert.Contains(t, w.Body.String(), "Saved")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightKeyConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/sheets:42:abc").RedisNil()
	mock.ExpectSetNX("idemp:/sheets:42:abc:lock", "locked", 30*time.Second).SetVal(false)

	r := gin.New()
	r.POST("/sheets", func(c *gin.Context) {
		c.Set("user_id", "42")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		c.String(http.StatusOK, "fresh")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sheets", nil)
	req.Header.Set("Idempotency-Key", "abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/sheets:42:abc").RedisNil()
	mock.ExpectSetNX("idemp:/sheets:42:abc:lock", "locked", 30*time.Second).SetVal(true)

	r := gin.New()
	r.POST("/sheets", func(c *gin.Context) {
		c.Set("user_id", "42")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		assert.Equal(t, "idemp:/sheets:42:abc", c.GetString("idempotency_cache_key"))
		c.String(http.StatusOK, "fresh")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sheets", nil)
	req.Header.Set("Idempotency-Key", "abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fresh", w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeySkipsRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/sheets", Idempotency(rdb), func(c *gin.Context) {
		c.String(http.StatusOK, "fresh")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sheets", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitByUser_BlocksBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/limited", func(c *gin.Context) {
		c.Set("user_id", "42")
		c.Next()
	}, RateLimitByUser(rate.Limit(0.01), 1), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimitByUser_AnonymousPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/limited", RateLimitByUser(rate.Limit(0.01), 1), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ping", RequestID(), func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString("request_id"))
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_EchoesProvidedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ping", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
