// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "academy_backend/internal/feature/auth/transport/handler"
	contenthandler "academy_backend/internal/feature/content/transport/handler"
	paymenthandler "academy_backend/internal/feature/payment/transport/handler"
	platformhandler "academy_backend/internal/platform/http/handler"
	jwtmw "academy_backend/internal/platform/jwt"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
// コンテンツの読み取りと決済開始は公開、ミューテーションはJWT必須です。
func NewRouter(frontendURL string, authH *authhandler.AuthHandler,
	contentH *contenthandler.ContentHandler, paymentH *paymenthandler.PaymentHandler) *gin.Engine {
	r := gin.Default()

	// 公開フロントエンドのオリジンのみ許可
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{frontendURL},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// 認証不要
	// ランディングページが読むコンテンツ
	api.GET("/hero", contentH.GetHero)
	api.GET("/features", contentH.ListFeatures)
	api.GET("/packages", contentH.ListPackages)
	api.GET("/testimonials", contentH.ListTestimonials)
	api.GET("/faqs", contentH.ListFAQs)
	// 管理者ログイン（JWT 発行）
	api.POST("/login", authH.Login)
	// 決済開始
	api.POST("/create-payment", paymentH.CreatePayment)

	// 認証必須のルート（管理パネルからのミューテーション）
	admin := api.Group("/")
	admin.Use(jwtmw.AuthRequired())
	{
		admin.PUT("/hero", contentH.SaveHero)

		admin.POST("/features", contentH.CreateFeature)
		admin.PUT("/features/:id", contentH.UpdateFeature)
		admin.DELETE("/features/:id", contentH.DeleteFeature)

		admin.POST("/packages", contentH.CreatePackage)
		admin.PUT("/packages/:id", contentH.UpdatePackage)
		admin.DELETE("/packages/:id", contentH.DeletePackage)

		admin.POST("/testimonials", contentH.CreateTestimonial)
		admin.PUT("/testimonials/:id", contentH.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", contentH.DeleteTestimonial)

		admin.POST("/faqs", contentH.CreateFAQ)
		admin.PUT("/faqs/:id", contentH.UpdateFAQ)
		admin.DELETE("/faqs/:id", contentH.DeleteFAQ)
	}

	return r
}
