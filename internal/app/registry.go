package app

import (
	"context"
	"net/http"
	"time"

	"freshbit/internal/analytics"
	"freshbit/internal/application"
	"freshbit/internal/auth"
	"freshbit/internal/college"
	"freshbit/internal/company"
	"freshbit/internal/config"
	"freshbit/internal/drive"
	"freshbit/internal/invitation"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"
	rbacinfra "freshbit/internal/rbac/infra"
	"freshbit/internal/roster"
	"freshbit/internal/shared/counter"
	"freshbit/internal/shared/response"
	"freshbit/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg *config.Config, in *infra, logger *zap.Logger) error {
	db, gormDB, rdb := in.sqlDB, in.gormDB, in.rdb

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger.Named("http")))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	collegeRepo := college.NewRepository(gormDB)
	driveRepo := drive.NewRepository(gormDB)
	invitationRepo := invitation.NewRepository(gormDB)
	rosterRepo := roster.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbacinfra.NewEnforcer(rbac.PolicyRows(rbac.DefaultPermissions))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Auth ---
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	tokenStore := auth.NewRedisTokenStore(rdb)
	authMW := middleware.AuthMiddleware(tokens, tokenStore)

	// --- Services ---
	authService := auth.NewService(db, authRepo, tokens, tokenStore, outboxRepo, logger)
	companyService := company.NewService(companyRepo, logger)
	collegeService := college.NewService(collegeRepo, logger)
	driveService := drive.NewService(db, driveRepo, counterRepo, companyService, invitation.NewStageAuthorizer(invitationRepo), outboxRepo, logger)
	invitationService := invitation.NewService(db, invitationRepo, driveRepo, collegeService, outboxRepo, logger)
	rosterService := roster.NewService(db, rosterRepo, driveRepo, invitationRepo, logger)
	applicationService := application.NewService(db, applicationRepo, driveRepo, invitationRepo, outboxRepo, logger)
	analyticsService := analytics.NewService(analyticsRepo, driveRepo, invitationRepo, rdb, logger)

	if cfg.Auth.AdminEmail != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return err
		}
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.App.IsProduction(), logger)
	companyHandler := company.NewHandler(companyService, logger)
	collegeHandler := college.NewHandler(collegeService, logger)
	driveHandler := drive.NewHandler(driveService, logger)
	invitationHandler := invitation.NewHandler(invitationService, logger)
	rosterHandler := roster.NewHandler(rosterService, logger)
	applicationHandler := application.NewHandler(applicationService, logger)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(in))

		auth.RegisterRoutes(api, authHandler, authMW, rbacService)
		company.RegisterRoutes(api, companyHandler, authMW, rbacService)
		college.RegisterRoutes(api, collegeHandler, authMW, rbacService)
		drive.RegisterRoutes(api, driveHandler, authMW, rbacService)
		invitation.RegisterRoutes(api, invitationHandler, authMW, rbacService)
		roster.RegisterRoutes(api, rosterHandler, authMW, rbacService, rdb)
		application.RegisterRoutes(api, applicationHandler, authMW, rbacService)
		analytics.RegisterRoutes(api, analyticsHandler, authMW, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
	}

	return nil
}

func healthHandler(in *infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"database": "up", "redis": "up"}
		code := http.StatusOK
		if err := in.sqlDB.PingContext(ctx); err != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := in.rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, status, nil)
	}
}
