package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatterbox/config"
	"chatterbox/handlers"
	"chatterbox/middleware"
	"chatterbox/store"
)

// SetupRouter wires every Chatter Box route onto a gin engine.
func SetupRouter(h *handlers.Handler, db store.Store, cfg config.Config, log *zap.Logger) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Server is Running!"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	limiter := middleware.NewIPRateLimiter(60, time.Minute)

	// Public routes
	router.POST("/authentication", middleware.RateLimit(limiter), h.Authenticate)
	router.GET("/logout", h.Logout)
	router.POST("/users", middleware.RateLimit(limiter), h.Register)
	router.GET("/posts", h.ListPosts)
	router.GET("/posts/:id", h.GetPost)
	router.GET("/comments/:postId", h.ListComments)
	router.GET("/tags", h.ListTags)
	router.GET("/announcements", h.ListAnnouncements)
	router.GET("/announcements/count", h.AnnouncementCount)

	// Session routes
	session := router.Group("/")
	session.Use(middleware.Auth(cfg.JWTSecret))
	session.GET("/me", h.Me)
	session.PUT("/users/:id", h.UpdateUser)
	session.GET("/user/stats", h.UserStats)
	session.GET("/user/posts", h.UserPosts)
	session.PUT("/user/premium", h.GoPremium)
	session.POST("/posts", h.CreatePost)
	session.PUT("/posts/:id", h.UpdatePost)
	session.DELETE("/posts/:id", h.DeletePost)
	session.PUT("/posts/:id/:voteType/:updateType", h.Vote)
	session.POST("/comments", h.CreateComment)
	session.POST("/comments/:id/report", h.ReportComment)
	session.POST("/create-payment-intent", h.CreatePaymentIntent)

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret, db, log))
	admin.GET("/stats", h.AdminStats)
	admin.GET("/users", h.AdminListUsers)
	admin.PUT("/users/make-admin", h.MakeAdmin)
	admin.GET("/reported-comments", h.ReportedComments)
	admin.DELETE("/comments/:id", h.AdminDeleteComment)
	admin.POST("/tags", h.CreateTag)
	admin.DELETE("/tags/:id", h.DeleteTag)
	admin.POST("/announcements", h.CreateAnnouncement)
	admin.DELETE("/announcements/:id", h.DeleteAnnouncement)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})

	return router
}
