package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/infrastructure/ratelimit"
	"github.com/back-informatica/chamados/internal/shared/constants"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockVerifier struct {
	VerifyFunc func(ctx context.Context, rawToken string) (*identity.Claims, error)
	calls      int
}

func (m *mockVerifier) Verify(ctx context.Context, rawToken string) (*identity.Claims, error) {
	m.calls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, rawToken)
	}
	return nil, identity.ErrTokenRejected
}

type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func gatedEngine(v identity.Verifier) (*gin.Engine, *bool) {
	reached := false
	r := gin.New()
	r.GET("/api/tickets", NewAuthMiddleware(v, logger.NewNop()).RequireAuth(), func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, GetClientUID(c))
	})
	return r, &reached
}

func TestRequireAuth_Failures(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verify     func(context.Context, string) (*identity.Claims, error)
		wantStatus int
		wantCode   string
		wantCalls  int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeAuthenticationRequired),
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeTokenFormat),
		},
		{
			name:       "no token segment",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeTokenFormat),
		},
		{
			name:   "unparsable token",
			header: "Bearer garbage",
			verify: func(context.Context, string) (*identity.Claims, error) {
				return nil, fmt.Errorf("parse: %w", identity.ErrTokenMalformed)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeTokenFormat),
			wantCalls:  1,
		},
		{
			name:       "expired token",
			header:     "Bearer expired.jwt.token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeTokenInvalid),
			wantCalls:  1,
		},
		{
			name:   "backend unavailable",
			header: "Bearer a.b.c",
			verify: func(context.Context, string) (*identity.Claims, error) {
				return nil, errors.NewBackendUnavailableError()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   string(errors.ErrorTypeBackendUnavailable),
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &mockVerifier{VerifyFunc: tt.verify}
			r, reached := gatedEngine(v)

			req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.OK)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.False(t, *reached)
			assert.Equal(t, tt.wantCalls, v.calls)
		})
	}
}

func TestRequireAuth_InjectsSubject(t *testing.T) {
	v := &mockVerifier{VerifyFunc: func(_ context.Context, raw string) (*identity.Claims, error) {
		assert.Equal(t, "good.jwt.token", raw)
		return &identity.Claims{UID: "uid-42"}, nil
	}}
	r, reached := gatedEngine(v)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.Header.Set("Authorization", "bearer good.jwt.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Equal(t, "uid-42", w.Body.String())
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	for _, h := range []string{"Bearer ", "Token abc", "Bearer a b", "abc"} {
		_, ok := bearerToken(h)
		assert.False(t, ok, h)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "internal server error", env.Error)
	assert.Equal(t, string(errors.ErrorTypeInternal), env.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func rateLimitedEngine(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/api/login", rl.Limit("login"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_Limit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := ratelimit.NewRedisRateLimiter(client, ratelimit.Config{Requests: 2, Window: time.Minute})
	r := rateLimitedEngine(NewRateLimiter(limiter, logger.NewNop()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, string(errors.ErrorTypeRateLimited), decodeEnvelope(t, w).Code)

	// counter store down: requests pass
	mr.Close()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_NilLimiterAllows(t *testing.T) {
	r := rateLimitedEngine(NewRateLimiter(nil, logger.NewNop()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
