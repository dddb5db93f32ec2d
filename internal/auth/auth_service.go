package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	autherrors "freshbit/internal/auth/errors"
	"freshbit/internal/domain"
	"freshbit/internal/events"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/contextutil"
	"freshbit/internal/shared/database"
	"freshbit/internal/shared/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const uniqueUserEmail = "uq_users_email"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Refresh(ctx context.Context, refreshToken string) (SessionResponse, error)
	Me(ctx context.Context, principal domain.Principal) (UserResponse, error)
	Logout(ctx context.Context, access *token.Claims, refreshToken string) error
	VerifyEmail(ctx context.Context, oneTimeToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, principal domain.Principal, req ChangePasswordRequest) error
	SetUserStatus(ctx context.Context, userID uuid.UUID, status UserStatus) (UserResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	tokens *token.Manager
	store  TokenStore
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	tokens *token.Manager,
	store TokenStore,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		tokens: tokens,
		store:  store,
		outbox: outbox,
		now:    time.Now,
		logger: l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := normalizeEmail(req.Email)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", email),
		zap.String("role", req.Role),
	)

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("role")
	}
	if role == domain.RoleAdmin {
		s.logger.Warn("register rejected admin self registration", zap.String("email", email))
		return UserResponse{}, autherrors.ErrAdminSelfRegister
	}
	orgName := strings.TrimSpace(req.OrganizationName)
	if orgName == "" {
		return UserResponse{}, autherrors.ErrOrganizationNameRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	orgID := uuid.New()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		OrgID:        &orgID,
		Status:       UserStatusActive,
		Verified:     false,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err, uniqueUserEmail) {
			s.logger.Warn("register email already registered", zap.String("email", email))
			return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("register persist user failed", zap.Error(err))
		return UserResponse{}, err
	}

	if err := qtx.CreateOrganization(ctx, role, &Organization{
		ID:     orgID,
		UserID: user.ID,
		Name:   orgName,
	}); err != nil {
		s.logger.Error("register persist organization failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return UserResponse{}, err
	}

	if err := s.queueAccountToken(ctx, tx, user, PurposeVerifyEmail); err != nil {
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
	)
	return toUserResponse(user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Debug("login requested", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown email", zap.String("email", email))
			return SessionResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login get user failed", zap.Error(err))
		return SessionResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("user_id", user.ID.String()))
		return SessionResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive() {
		s.logger.Warn("login inactive user", zap.String("user_id", user.ID.String()))
		return SessionResponse{}, autherrors.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return SessionResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return session, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (SessionResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		s.logger.Warn("refresh token rejected", zap.Error(err))
		return SessionResponse{}, autherrors.ErrSessionExpired
	}

	owner, err := s.store.ConsumeRefresh(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			// jti sudah dirotasi atau dicabut
			s.logger.Warn("refresh token reused or revoked",
				zap.String("user_id", claims.UserID),
				zap.String("jti", claims.ID),
			)
			return SessionResponse{}, autherrors.ErrSessionExpired
		}
		s.logger.Error("refresh consume token failed", zap.Error(err))
		return SessionResponse{}, err
	}
	if owner != claims.UserID {
		return SessionResponse{}, autherrors.ErrSessionExpired
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return SessionResponse{}, autherrors.ErrSessionExpired
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, autherrors.ErrSessionExpired
		}
		s.logger.Error("refresh get user failed", zap.Error(err))
		return SessionResponse{}, err
	}
	if !user.IsActive() {
		s.logger.Warn("refresh inactive user", zap.String("user_id", user.ID.String()))
		return SessionResponse{}, autherrors.ErrSessionExpired
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return SessionResponse{}, err
	}
	s.logger.Info("refresh success", zap.String("user_id", user.ID.String()))
	return session, nil
}

func (s *service) Me(ctx context.Context, principal domain.Principal) (UserResponse, error) {
	if principal.UserID == uuid.Nil {
		return UserResponse{}, autherrors.ErrUnauthenticated
	}
	user, err := s.repo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUnauthenticated
		}
		s.logger.Error("me get user failed", zap.Error(err))
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *service) Logout(ctx context.Context, access *token.Claims, refreshToken string) error {
	if access != nil {
		if err := s.store.RevokeAccess(ctx, access.ID, access.Remaining(s.now())); err != nil {
			s.logger.Error("logout revoke access failed", zap.Error(err))
			return err
		}
	}

	if refreshToken != "" {
		claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
		if err == nil && (access == nil || claims.UserID == access.UserID) {
			if err := s.store.RevokeRefresh(ctx, claims.ID); err != nil {
				s.logger.Error("logout revoke refresh failed", zap.Error(err))
				return err
			}
		}
	}

	if access != nil {
		s.logger.Info("logout success", zap.String("user_id", access.UserID))
	}
	return nil
}

func (s *service) VerifyEmail(ctx context.Context, oneTimeToken string) error {
	userID, err := s.consumeOneTime(ctx, PurposeVerifyEmail, oneTimeToken)
	if err != nil {
		return err
	}
	if err := s.repo.MarkVerified(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidOneTimeToken
		}
		s.logger.Error("verify email persist failed", zap.Error(err))
		return err
	}
	s.logger.Info("verify email success", zap.String("user_id", userID.String()))
	return nil
}

// ForgotPassword selalu sukses supaya email terdaftar tidak bisa ditebak.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("forgot password unknown email", zap.String("email", email))
			return nil
		}
		s.logger.Error("forgot password get user failed", zap.Error(err))
		return err
	}
	if !user.IsActive() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("forgot password begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.queueAccountToken(ctx, tx, user, PurposeResetPassword); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("forgot password commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	userID, err := s.consumeOneTime(ctx, PurposeResetPassword, req.Token)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidOneTimeToken
		}
		s.logger.Error("reset password persist failed", zap.Error(err))
		return err
	}
	s.logger.Info("reset password success", zap.String("user_id", userID.String()))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, principal domain.Principal, req ChangePasswordRequest) error {
	user, err := s.repo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password wrong current password", zap.String("user_id", user.ID.String()))
		return autherrors.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.Error(err))
		return err
	}
	s.logger.Info("change password success", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) SetUserStatus(ctx context.Context, userID uuid.UUID, status UserStatus) (UserResponse, error) {
	if status != UserStatusActive && status != UserStatusInactive {
		return UserResponse{}, apperror.InvalidField("status")
	}
	if err := s.repo.UpdateStatus(ctx, userID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		s.logger.Error("set user status failed", zap.Error(err))
		return UserResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("set user status success",
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
	)
	return toUserResponse(user), nil
}

// EnsureAdmin membuat akun admin awal kalau email belum terdaftar.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			s.logger.Warn("bootstrap admin email belongs to non-admin account", zap.String("email", email))
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		Status:       UserStatusActive,
		Verified:     true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if database.IsUniqueViolation(err, uniqueUserEmail) {
			return nil
		}
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("user_id", admin.ID.String()))
	return nil
}

func (s *service) issueSession(ctx context.Context, user *User) (SessionResponse, error) {
	pair, err := s.tokens.Issue(user.ID.String(), string(user.Role), user.OrgIDString())
	if err != nil {
		s.logger.Error("issue token failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return SessionResponse{}, autherrors.ErrTokenGenerationFailed
	}
	if err := s.store.SaveRefresh(ctx, pair.RefreshJTI, user.ID.String(), pair.RefreshTTL); err != nil {
		s.logger.Error("save refresh token failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return SessionResponse{}, err
	}

	now := s.now()
	return SessionResponse{
		User:             toUserResponse(user),
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  now.Add(pair.AccessTTL).UTC(),
		RefreshExpiresAt: now.Add(pair.RefreshTTL).UTC(),
	}, nil
}

func (s *service) consumeOneTime(ctx context.Context, purpose, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, autherrors.ErrInvalidOneTimeToken
	}
	owner, err := s.store.ConsumeOneTime(ctx, purpose, raw)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return uuid.Nil, autherrors.ErrInvalidOneTimeToken
		}
		s.logger.Error("consume one-time token failed", zap.String("purpose", purpose), zap.Error(err))
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(owner)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidOneTimeToken
	}
	return userID, nil
}

// queueAccountToken menyimpan one-time token lalu menulis event outbox dalam tx yang sama.
func (s *service) queueAccountToken(ctx context.Context, tx *sql.Tx, user *User, purpose string) error {
	raw, err := newOneTimeToken()
	if err != nil {
		return err
	}

	ttl, eventType := VerifyTokenTTL, events.EventEmailVerificationRequested
	if purpose == PurposeResetPassword {
		ttl, eventType = ResetTokenTTL, events.EventPasswordResetRequested
	}
	if err := s.store.SaveOneTime(ctx, purpose, raw, user.ID.String(), ttl); err != nil {
		s.logger.Error("save one-time token failed", zap.String("purpose", purpose), zap.Error(err))
		return err
	}

	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewEvent(events.AccountTopic, "user", user.ID.String(), eventType, rid, events.AccountTokenEvent{
		EventType:  eventType,
		RequestID:  rid,
		UserID:     user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Token:      raw,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("account event outbox persist failed",
			zap.String("user_id", user.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func newOneTimeToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
