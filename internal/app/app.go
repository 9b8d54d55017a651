package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/config"
	httpx "github.com/pearmediallc/symphony-ai/internal/http"
	"github.com/pearmediallc/symphony-ai/internal/http/handlers"
	"github.com/pearmediallc/symphony-ai/internal/http/middleware"
	"github.com/pearmediallc/symphony-ai/internal/infrastructure/auth"
	"github.com/pearmediallc/symphony-ai/internal/infrastructure/repositories"
	"github.com/pearmediallc/symphony-ai/internal/infrastructure/tiktok"
	"github.com/pearmediallc/symphony-ai/internal/services"
)

// Run wires the application together and serves until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	var sessionRepo domain.SessionRepository
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		sessionRepo = repositories.NewRedisSessionRepository(rdb)
		logger.Info("session store: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		sessionRepo = repositories.NewMemorySessionRepository()
		logger.Info("session store: in-memory")
	}

	tokenSvc := auth.NewCookieTokenService(cfg.SecretKey, "symphony-ai")
	authSvc := services.NewAuthService(cfg.AuthUsername, cfg.AuthPassword, sessionRepo, tokenSvc, cfg.SessionTTL, logger)

	client := tiktok.NewClient(cfg.BaseURL, logger)
	defaults := services.UpstreamDefaults{
		AccessToken:  cfg.AccessToken,
		AdvertiserID: cfg.AdvertiserID,
	}
	scriptSvc := services.NewScriptService(client, defaults, logger)
	avatarSvc := services.NewAvatarService(client, defaults, logger)
	videoSvc := services.NewVideoService(client, defaults, logger)

	authH := handlers.NewAuthHandlers(authSvc, cfg.SessionTTL, logger)
	relayH := handlers.NewRelayHandlers(scriptSvc, avatarSvc, videoSvc, defaults, logger)
	sessMW := middleware.NewSessionMW(authSvc, logger)

	r := httpx.BuildRouter(authH, relayH, sessMW, cfg.StaticDir)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
