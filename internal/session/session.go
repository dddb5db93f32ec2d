package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	clientTypeHeader = "X-Client-Type"
	clientTypeAPI    = "API"

	defaultRefreshTimeout = 10 * time.Second
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// OnExpired dipanggil sekali setiap kali refresh gagal (forced logout).
	OnExpired      func()
	RefreshTimeout time.Duration
	Logger         *zap.Logger
}

// Session menyimpan pasangan token satu user. Aman dipakai banyak goroutine.
type Session struct {
	baseURL        string
	client         *http.Client
	onExpired      func()
	refreshTimeout time.Duration
	logger         *zap.Logger

	mu         sync.RWMutex
	tokens     Tokens
	generation uint64

	refreshes singleflight.Group
}

func New(cfg Config) *Session {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	timeout := cfg.RefreshTimeout
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	l := zap.L().Named("session.client")
	if cfg.Logger != nil {
		l = cfg.Logger.Named("session.client")
	}
	return &Session{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		client:         client,
		onExpired:      cfg.OnExpired,
		refreshTimeout: timeout,
		logger:         l,
	}
}

func (s *Session) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// SetTokens mengganti token (mis. hasil login di proses lain) dan memulai generasi baru.
func (s *Session) SetTokens(t Tokens) {
	s.mu.Lock()
	s.tokens = t
	s.generation++
	s.mu.Unlock()
}

func (s *Session) snapshot() (Tokens, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, s.generation
}

func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	var payload sessionPayload
	if err := s.postJSON(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &payload); err != nil {
		return User{}, err
	}
	s.SetTokens(Tokens{AccessToken: payload.AccessToken, RefreshToken: payload.RefreshToken})
	s.logger.Debug("login success", zap.String("user_id", payload.User.ID))
	return payload.User, nil
}

// Refresh memaksa rotasi token. Dipanggil bersamaan tetap hanya satu request ke server.
func (s *Session) Refresh(ctx context.Context) error {
	_, gen := s.snapshot()
	return s.refreshFrom(ctx, gen)
}

func (s *Session) CurrentUser(ctx context.Context) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	resp, err := s.Do(req)
	if err != nil {
		return User{}, err
	}
	var user User
	if err := decodeResponse(resp, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout selalu membersihkan token lokal, error server tetap dikembalikan.
func (s *Session) Logout(ctx context.Context) error {
	tokens := s.Tokens()
	if tokens.AccessToken == "" {
		return nil
	}

	body, _ := json.Marshal(refreshRequest{RefreshToken: tokens.RefreshToken})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/auth/logout", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	req.Header.Set(clientTypeHeader, clientTypeAPI)

	resp, err := s.client.Do(req)
	s.SetTokens(Tokens{})
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// Do mengirim req dengan access token. Respons 401 memicu tepat satu refresh per
// generasi token lalu request diulang sekali. Body harus bisa diulang (GetBody),
// kalau tidak respons 401 dikembalikan apa adanya.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	tokens, gen := s.snapshot()
	if tokens.AccessToken == "" {
		return nil, ErrNotLoggedIn
	}

	resp, err := s.send(req, tokens.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return resp, nil
	}
	drain(resp)

	if err := s.refreshFrom(req.Context(), gen); err != nil {
		return nil, err
	}

	retry, err := rewind(req)
	if err != nil {
		return nil, err
	}
	latest := s.Tokens()
	return s.send(retry, latest.AccessToken)
}

func (s *Session) send(req *http.Request, accessToken string) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+accessToken)
	if out.Header.Get(clientTypeHeader) == "" {
		out.Header.Set(clientTypeHeader, clientTypeAPI)
	}
	return s.client.Do(out)
}

func rewind(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	return retry, nil
}

// refreshFrom menjalankan refresh untuk generasi gen. Pemanggil yang terlambat
// (generasi sudah berganti) langsung memakai hasil refresh sebelumnya.
func (s *Session) refreshFrom(ctx context.Context, gen uint64) error {
	tokens, current := s.snapshot()
	if current != gen {
		if tokens.AccessToken == "" {
			return ErrSessionExpired
		}
		return nil
	}

	_, err, shared := s.refreshes.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		return nil, s.doRefresh(ctx, gen)
	})
	if shared {
		s.logger.Debug("refresh coalesced", zap.Uint64("generation", gen))
	}
	return err
}

func (s *Session) doRefresh(ctx context.Context, gen uint64) error {
	tokens, current := s.snapshot()
	if current != gen {
		if tokens.AccessToken == "" {
			return ErrSessionExpired
		}
		return nil
	}
	if tokens.RefreshToken == "" {
		s.expire(gen)
		return ErrSessionExpired
	}

	// satu refresh dipakai banyak waiter, jadi tidak ikut cancel context pemanggil pertama
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
	defer cancel()

	var payload sessionPayload
	if err := s.postJSON(rctx, "/api/auth/refresh", refreshRequest{RefreshToken: tokens.RefreshToken}, &payload); err != nil {
		s.logger.Warn("token refresh failed", zap.Error(err))
		s.expire(gen)
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	s.mu.Lock()
	if s.generation == gen {
		s.tokens = Tokens{AccessToken: payload.AccessToken, RefreshToken: payload.RefreshToken}
		s.generation++
	}
	s.mu.Unlock()
	s.logger.Debug("token refreshed", zap.Uint64("generation", gen+1))
	return nil
}

func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return
	}
	s.tokens = Tokens{}
	s.generation++
	s.mu.Unlock()

	if s.onExpired != nil {
		s.onExpired()
	}
}

func (s *Session) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(clientTypeHeader, clientTypeAPI)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// decodeResponse menutup body, membuka envelope dan mengisi out dari field data.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Code: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// IsSessionExpired true untuk error refresh gagal dari Do / Refresh.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
