package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsAccessRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], f.err
}

type fakeRBAC struct {
	allow map[string]bool
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.allow[string(req.Role)+":"+req.Resource+":"+req.Action], nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *token.Manager, rev middleware.RevocationChecker, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(tokens, rev)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"user_id": p.UserID.String(), "role": p.Role, "org_id": p.OrgID.String()}})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewManager("middleware-test-secret", time.Minute, time.Hour)
	userID := uuid.New()
	orgID := uuid.New()

	pair, err := tokens.Issue(userID.String(), string(domain.RoleCollege), orgID.String())
	require.NoError(t, err)

	t.Run("valid bearer token", func(t *testing.T) {
		r := newProtectedRouter(tokens, &fakeRevocations{})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), orgID.String())
		assert.Contains(t, w.Body.String(), "COLLEGE")
	})

	t.Run("cookie token", func(t *testing.T) {
		r := newProtectedRouter(tokens, nil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: pair.AccessToken})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r := newProtectedRouter(tokens, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("refresh token rejected as access", func(t *testing.T) {
		r := newProtectedRouter(tokens, nil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		r := newProtectedRouter(tokens, &fakeRevocations{revoked: map[string]bool{pair.AccessJTI: true}})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token revoked", decodeEnvelope(t, w.Body.Bytes()).Error.Message)
	})

	t.Run("revocation store down", func(t *testing.T) {
		r := newProtectedRouter(tokens, &fakeRevocations{err: errors.New("redis down")})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRequireRolesAndRBAC(t *testing.T) {
	tokens := token.NewManager("middleware-test-secret", time.Minute, time.Hour)
	pair, err := tokens.Issue(uuid.NewString(), string(domain.RoleCompany), uuid.NewString())
	require.NoError(t, err)

	call := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call(newProtectedRouter(tokens, nil, middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin))).Code)
	assert.Equal(t, http.StatusForbidden, call(newProtectedRouter(tokens, nil, middleware.RequireRoles(domain.RoleCollege))).Code)

	rbac := &fakeRBAC{allow: map[string]bool{"COMPANY:drive:publish": true}}
	assert.Equal(t, http.StatusOK, call(newProtectedRouter(tokens, nil, middleware.RBACAuthorize(rbac, "drive", "publish"))).Code)

	w := call(newProtectedRouter(tokens, nil, middleware.RBACAuthorize(rbac, "roster", "upload")))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/login", middleware.RateLimitByIP(0.0001, 2), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestIdempotency(t *testing.T) {
	const ttl = time.Hour
	cacheKey := middleware.IdempotencyCacheKey("/confirm", "", "key-1")
	lockKey := cacheKey + ":lock"

	newRouter := func(calls *int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/confirm", middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"inserted": 3}})
		})
		return r, mock
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/confirm", strings.NewReader(`{}`))
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request runs handler and stores response", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", 30*time.Second).SetVal(true)
		mock.Regexp().ExpectSet(cacheKey, `.+`, ttl).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completed request is replayed", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		stored, _ := json.Marshal(map[string]any{"status": 200, "body": []byte(`{"ok":true,"data":{"inserted":3}}`)})
		mock.ExpectGet(cacheKey).SetVal(string(stored))

		w := post(r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "true", w.Header().Get(middleware.HeaderReplayed))
		assert.JSONEq(t, `{"ok":true,"data":{"inserted":3}}`, w.Body.String())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", 30*time.Second).SetVal(false)

		w := post(r)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).SetErr(fmt.Errorf("redis unavailable"))

		w := post(r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
	})
}
