package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PurposeVerifyEmail   = "verify"
	PurposeResetPassword = "reset"

	VerifyTokenTTL = 24 * time.Hour
	ResetTokenTTL  = time.Hour
)

var ErrTokenNotFound = errors.New("token not found")

func RefreshKey(jti string) string { return "auth:refresh:" + jti }

func RevokedAccessKey(jti string) string { return "auth:revoked:" + jti }

func OneTimeKey(purpose, token string) string { return fmt.Sprintf("auth:%s:%s", purpose, token) }

//go:generate mockgen -source=auth_token_store.go -destination=mock/auth_token_store_mock.go -package=mock
type TokenStore interface {
	SaveRefresh(ctx context.Context, jti, userID string, ttl time.Duration) error
	// ConsumeRefresh hanya berhasil sekali per jti (rotasi).
	ConsumeRefresh(ctx context.Context, jti string) (string, error)
	RevokeRefresh(ctx context.Context, jti string) error
	RevokeAccess(ctx context.Context, jti string, ttl time.Duration) error
	IsAccessRevoked(ctx context.Context, jti string) (bool, error)
	SaveOneTime(ctx context.Context, purpose, token, userID string, ttl time.Duration) error
	ConsumeOneTime(ctx context.Context, purpose, token string) (string, error)
}

type redisTokenStore struct {
	rdb redis.Cmdable
}

func NewRedisTokenStore(rdb redis.Cmdable) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) SaveRefresh(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, RefreshKey(jti), userID, ttl).Err()
}

func (s *redisTokenStore) ConsumeRefresh(ctx context.Context, jti string) (string, error) {
	return s.getDel(ctx, RefreshKey(jti))
}

func (s *redisTokenStore) RevokeRefresh(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, RefreshKey(jti)).Err()
}

func (s *redisTokenStore) RevokeAccess(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, RevokedAccessKey(jti), "1", ttl).Err()
}

func (s *redisTokenStore) IsAccessRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, RevokedAccessKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) SaveOneTime(ctx context.Context, purpose, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, OneTimeKey(purpose, token), userID, ttl).Err()
}

func (s *redisTokenStore) ConsumeOneTime(ctx context.Context, purpose, token string) (string, error) {
	return s.getDel(ctx, OneTimeKey(purpose, token))
}

func (s *redisTokenStore) getDel(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}
