package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"academy_backend/internal/app/di"
	"academy_backend/internal/app/router"
	authadapters "academy_backend/internal/feature/auth/adapters"
	authhandler "academy_backend/internal/feature/auth/transport/handler"
	authusecase "academy_backend/internal/feature/auth/usecase"
	contenthandler "academy_backend/internal/feature/content/transport/handler"
	contentusecase "academy_backend/internal/feature/content/usecase"
	paymenthandler "academy_backend/internal/feature/payment/transport/handler"
	paymentusecase "academy_backend/internal/feature/payment/usecase"
	"academy_backend/internal/platform/config"
	infradb "academy_backend/internal/platform/db"
	jwtmw "academy_backend/internal/platform/jwt"
	infraredis "academy_backend/internal/platform/redis"
)

func main() {
	// 設定（.env + 環境変数）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis（コンテンツキャッシュ用。無ければキャッシュなしで継続）
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		rdb = nil
	} else if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	contentRepo := di.NewContentRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	contentUC := contentusecase.NewContentUsecase(contentRepo)
	paymentUC := paymentusecase.NewPaymentUsecase(di.NewPaymentGateway(cfg))

	// 管理者アカウントのブートストラップ（冪等）
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		cancel()
		log.Fatal("failed to bootstrap admin user: ", err)
	}
	cancel()

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	contentH := contenthandler.NewContentHandler(contentUC)
	paymentH := paymenthandler.NewPaymentHandler(paymentUC)

	// ルータ生成
	r := router.NewRouter(cfg.FrontendURL, authH, contentH, paymentH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
