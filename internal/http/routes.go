package http

import (
	"time"

	"rexagon/internal/config"
	"rexagon/internal/http/handlers"
	"rexagon/internal/http/middleware"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, redisClient *redis.Client, fulfillment *service.FulfillmentService, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, fulfillment)
	healthHandler := handlers.NewHealthHandler(db, redisClient, version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authRateWindow := time.Duration(cfg.AuthRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))

	api.GET("/health", healthHandler.Health)

	// Auth, with a tighter limit against credential stuffing
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow)
	api.POST("/auth/kayit", authRL, h.Register)
	api.POST("/auth/giris", authRL, h.Login)
	api.GET("/auth/me", middleware.JWT(), h.Me)

	// Profiles
	api.GET("/users/:kullanici_adi", h.PublicProfile)
	api.PUT("/users/biyografi", middleware.JWT(), h.UpdateBio)
	api.PUT("/users/sifre", middleware.JWT(), h.ChangePassword)
	api.PUT("/users/profil", middleware.JWT(), h.UpdateBackdrop)

	// Wallet
	api.GET("/cuzdan/gecmis", middleware.JWT(), h.WalletHistory)
	api.POST("/cuzdan/yukle", middleware.JWT(), h.TopUp)

	// Market catalog and purchases
	api.GET("/market/kategoriler", h.MarketCategories)
	api.GET("/market/urunler", h.MarketItems)
	api.GET("/market/en-cok-satanlar", h.BestSellers)
	api.GET("/market/urun/:id", h.MarketItem)
	api.GET("/market/:kategori/urunler", h.MarketItemsByCategory)
	api.POST("/market/satin-al/:id", middleware.JWT(), h.Purchase)

	// Themes
	api.GET("/themes", middleware.OptionalJWT(), h.Themes)
	api.POST("/themes/:id/satin-al", middleware.JWT(), h.UnlockTheme)
	api.PUT("/themes/aktif/:id", middleware.JWT(), h.ActivateTheme)
	api.PUT("/themes/kaldir", middleware.JWT(), h.RemoveActiveTheme)

	// Forum
	api.GET("/forum/kategoriler", h.ForumCategories)
	api.GET("/forum/:kategori/konular", h.ForumTopics)
	api.GET("/forum/konu/:id", h.ForumTopic)
	api.POST("/forum/konu", middleware.JWT(), h.CreateForumTopic)
	api.POST("/forum/konu/:id/cevap", middleware.JWT(), h.CreateForumReply)

	// Leaderboards
	api.GET("/leaderboard/kredi", h.TopCredits)
	api.GET("/leaderboard/son-kayitlar", h.LatestRegistrations)
	api.GET("/leaderboard/son-alisverisler", h.LatestPurchases)
	api.GET("/leaderboard/son-kredi-yuklemeler", h.LatestTopUps)

	// News
	api.GET("/haberler", h.News)
	api.GET("/haber/:id", h.NewsDetail)

	// Reports
	api.POST("/reports", middleware.JWT(), h.CreateReport)

	// Server stats
	api.GET("/stats", h.ServerStats)

	// Back office. Role is re-checked from the database on every call.
	admin := api.Group("/admin")
	admin.Use(middleware.JWT(), middleware.AdminOnly(h.UserRepo))
	{
		admin.GET("/kullanicilar", h.AdminUsers)
		admin.PUT("/kullanici/:id", h.AdminUpdateUser)
		admin.DELETE("/kullanici/:id", h.AdminDeleteUser)

		admin.POST("/market/urun", h.AdminCreateMarketItem)
		admin.PUT("/market/urun/:id", h.AdminUpdateMarketItem)
		admin.DELETE("/market/urun/:id", h.AdminDeleteMarketItem)

		admin.POST("/haber", h.AdminCreateNews)
		admin.PUT("/haber/:id", h.AdminUpdateNews)
		admin.DELETE("/haber/:id", h.AdminDeleteNews)

		admin.GET("/reports", h.AdminReports)
		admin.DELETE("/reports/:id", h.AdminDeleteReport)

		admin.POST("/themes", h.AdminCreateTheme)
		admin.DELETE("/themes/:id", h.AdminDeleteTheme)

		admin.DELETE("/forum/konu/:id", h.AdminDeleteForumTopic)
		admin.DELETE("/forum/cevap/:id", h.AdminDeleteForumReply)
	}
}
