package session_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freshbit/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	refreshCalls   atomic.Int32
	staleSeen      atomic.Int32
	waitFor        int32
	allStale       chan struct{}
	closeOnce      sync.Once
	failRefresh    bool
	currentAccess  string
	currentRefresh string
	mu             sync.Mutex
}

func newFakeAPI(waitFor int32) *fakeAPI {
	return &fakeAPI{
		waitFor:        waitFor,
		allStale:       make(chan struct{}),
		currentAccess:  "access-1",
		currentRefresh: "refresh-1",
	}
}

func writeEnvelope(w http.ResponseWriter, status int, data any, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"ok": status < 300}
	if data != nil {
		body["data"] = data
	}
	if code != "" {
		body["error"] = map[string]string{"code": code, "message": code}
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"user":          map[string]string{"id": "u-1", "role": "COLLEGE"},
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
		}, "")
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		select {
		case <-f.allStale:
		case <-time.After(2 * time.Second):
		}

		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failRefresh || req.RefreshToken != f.currentRefresh {
			writeEnvelope(w, http.StatusUnauthorized, nil, "SESSION_EXPIRED")
			return
		}
		f.currentAccess = "access-2"
		f.currentRefresh = "refresh-2"
		writeEnvelope(w, http.StatusOK, map[string]any{
			"access_token":  f.currentAccess,
			"refresh_token": f.currentRefresh,
		}, "")
	})
	mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		valid := r.Header.Get("Authorization") == "Bearer "+f.currentAccess && f.currentAccess != "access-1"
		f.mu.Unlock()
		if !valid {
			if f.staleSeen.Add(1) == f.waitFor {
				f.closeOnce.Do(func() { close(f.allStale) })
			}
			writeEnvelope(w, http.StatusUnauthorized, nil, "UNAUTHORIZED")
			return
		}
		body, _ := io.ReadAll(r.Body)
		writeEnvelope(w, http.StatusOK, map[string]string{"echo": string(body)}, "")
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]string{"id": "u-1", "email": "tpo@college.edu"}, "")
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]string{"message": "ok"}, "")
	})
	return mux
}

func TestSession_ConcurrentUnauthorizedCoalesce(t *testing.T) {
	const n = 8
	api := newFakeAPI(n)
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	s := session.New(session.Config{BaseURL: srv.URL})
	_, err := s.Login(context.Background(), "tpo@college.edu", "password123")
	require.NoError(t, err)

	var wg sync.WaitGroup
	statuses := make([]int, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/data", bytes.NewReader([]byte("payload")))
			resp, err := s.Do(req)
			if err != nil {
				errs[i] = err
				return
			}
			statuses[i] = resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	for i := 0; i < n; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.Equal(t, "access-2", s.Tokens().AccessToken)
	assert.Equal(t, "refresh-2", s.Tokens().RefreshToken)
}

func TestSession_RefreshFailureExpiresEveryWaiter(t *testing.T) {
	const n = 5
	api := newFakeAPI(n)
	api.failRefresh = true
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	var expired atomic.Int32
	s := session.New(session.Config{BaseURL: srv.URL, OnExpired: func() { expired.Add(1) }})
	_, err := s.Login(context.Background(), "tpo@college.edu", "password123")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/data", nil)
			resp, err := s.Do(req)
			if resp != nil {
				resp.Body.Close()
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(1), expired.Load())
	for _, err := range errs {
		assert.True(t, session.IsSessionExpired(err), "got %v", err)
	}
	assert.Empty(t, s.Tokens().AccessToken)

	_, err = s.Do(httptest.NewRequest(http.MethodGet, srv.URL+"/api/data", nil))
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)
}

func TestSession_NonReplayableBodyReturns401(t *testing.T) {
	api := newFakeAPI(1)
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	s := session.New(session.Config{BaseURL: srv.URL})
	s.SetTokens(session.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/data", io.NopCloser(strings.NewReader("once")))
	resp, err := s.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), api.refreshCalls.Load())
}

func TestSession_CurrentUserAndLogout(t *testing.T) {
	api := newFakeAPI(1)
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	s := session.New(session.Config{BaseURL: srv.URL})
	_, err := s.CurrentUser(context.Background())
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)

	s.SetTokens(session.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	user, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tpo@college.edu", user.Email)

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, session.Tokens{}, s.Tokens())
}
