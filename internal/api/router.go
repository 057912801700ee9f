// internal/api/router.go
package api

import (
	"context"

	"giftwise/internal/auth"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/logger"
	"giftwise/internal/models"
	"giftwise/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AuthService is the account surface the API exposes.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, client auth.ClientInfo) (*auth.Credentials, error)
	Login(ctx context.Context, email, password string, client auth.ClientInfo) (*auth.Credentials, error)
	Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Recommender produces a gift list for a survey. It never fails; a
// degraded result carries curated picks instead.
type Recommender interface {
	Recommend(ctx context.Context, userID string, survey models.Survey) recommend.Result
}

// RecommendationHistory reads persisted recommendation runs.
type RecommendationHistory interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Recommendation, error)
	Stats(ctx context.Context) (models.RecommendationStats, error)
}

// GiftFinder resolves individual gifts and the full admin listing.
type GiftFinder interface {
	GetByID(ctx context.Context, id string) (*models.Gift, error)
	ListAll(ctx context.Context, limit int) ([]models.Gift, error)
}

// SavedGifts is the per-user wishlist.
type SavedGifts interface {
	Save(ctx context.Context, userID string, gift models.Gift) error
	List(ctx context.Context, userID string) ([]models.Gift, error)
	IsSaved(ctx context.Context, userID, giftID string) (bool, error)
	Remove(ctx context.Context, userID, giftID string) error
}

// UserAdmin is the admin-only user management surface.
type UserAdmin interface {
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, userID, role string) error
}

// CookieConfig controls how the auth cookie is written.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Deps collects everything the router needs.
type Deps struct {
	Auth        AuthService
	Recommender Recommender
	History     RecommendationHistory
	Gifts       GiftFinder
	Saved       SavedGifts
	Users       UserAdmin
	Cookie      CookieConfig
	Logger      logger.Logger
}

// Router holds the HTTP handlers and their dependencies.
type Router struct {
	deps   Deps
	errors *stderrors.ErrorHandler
	logger logger.Logger
}

func NewRouter(deps Deps) *Router {
	return &Router{
		deps:   deps,
		errors: stderrors.NewErrorHandler(deps.Logger),
		logger: deps.Logger,
	}
}

// Engine builds the gin engine with all routes registered.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), r.requestLogger(), r.httpMetrics())

	engine.GET("/health", r.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", r.handleRegister)
	authGroup.POST("/login", r.handleLogin)
	authGroup.POST("/logout", r.requireAuth(), r.handleLogout)
	authGroup.GET("/me", r.requireAuth(), r.handleMe)
	authGroup.POST("/forgot-password", r.handleForgotPassword)
	authGroup.POST("/reset-password", r.handleResetPassword)

	api.POST("/recommendations", r.optionalAuth(), r.handleRecommend)
	api.GET("/recommendations/history", r.requireAuth(), r.handleHistory)

	api.GET("/gift/:id", r.handleGetGift)

	saved := api.Group("/saved-gifts", r.requireAuth())
	saved.GET("", r.handleListSavedGifts)
	saved.POST("", r.handleSaveGift)
	saved.GET("/:id", r.handleIsGiftSaved)
	saved.DELETE("/:id", r.handleRemoveSavedGift)

	admin := api.Group("/admin", r.requireAuth(), r.requireAdmin())
	admin.GET("/stats", r.handleAdminStats)
	admin.GET("/users", r.handleAdminUsers)
	admin.POST("/users/change-role", r.handleChangeRole)
	admin.GET("/gifts", r.handleAdminGifts)

	return engine
}

func (r *Router) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
