package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"freshbit/internal/domain"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/contextutil"
	"freshbit/internal/shared/response"
	"freshbit/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KeyPrincipal    = "principal"
	KeyAccessClaims = "access_claims"
	AccessCookie    = "access_token"
)

// RevocationChecker dipenuhi oleh token store (redis) milik modul auth.
type RevocationChecker interface {
	IsAccessRevoked(ctx context.Context, jti string) (bool, error)
}

func bearerToken(c *gin.Context) string {
	if v, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(v)
	}
	if cookie, err := c.Cookie(AccessCookie); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(tokens *token.Manager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found")
			return
		}

		claims, err := tokens.Parse(raw, token.TypeAccess)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				msg = "Token expired"
			}
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, msg)
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsAccessRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Error("check token revocation failed", zap.Error(err))
				response.Abort(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Unable to verify session")
				return
			}
			if revoked {
				response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token revoked")
				return
			}
		}

		p, err := principalFromClaims(claims)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token claims")
			return
		}

		c.Set(KeyPrincipal, p)
		c.Set(KeyAccessClaims, claims)

		ctx := contextutil.WithPrincipal(c.Request.Context(), p)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", p.UserID.String()),
			zap.String("role", string(p.Role)),
		)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func principalFromClaims(claims *token.Claims) (domain.Principal, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domain.Principal{}, err
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, err
	}

	p := domain.Principal{UserID: userID, Role: role}
	if role != domain.RoleAdmin {
		orgID, err := uuid.Parse(claims.OrgID)
		if err != nil {
			return domain.Principal{}, err
		}
		p.OrgID = orgID
	}
	return p, nil
}

// CurrentPrincipal dibaca handler setelah AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(KeyPrincipal)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

func CurrentClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(KeyAccessClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

// RequireRoles menolak request dari role di luar daftar.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message)
			return
		}
		for _, r := range allowed {
			if p.Role == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message)
	}
}
