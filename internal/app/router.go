package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"youquote/internal/database"
	"youquote/internal/domain"
	"youquote/internal/middleware"
	"youquote/internal/modules/admin"
	"youquote/internal/modules/auth"
	"youquote/internal/modules/quote"
	"youquote/internal/modules/reaction"
	"youquote/internal/modules/taxonomy"
	jwtsvc "youquote/internal/pkg/jwt"
	"youquote/internal/pkg/response"
	"youquote/internal/repository"
)

// Deps is everything the HTTP layer needs from the outside world.
type Deps struct {
	DB      *gorm.DB
	JWT     *jwtsvc.Service
	Revoked repository.RevokedTokenStore

	Cookie      auth.CookieSettings
	CORSOrigins []string
	Debug       bool
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(d Deps) *gin.Engine {
	if d.Revoked == nil {
		d.Revoked = repository.NewRevokedTokenRepository(d.DB)
	}

	userRepo := repository.NewUserRepository(d.DB)
	quoteRepo := repository.NewQuoteRepository(d.DB)
	categoryRepo := repository.NewTaxonomyRepository(d.DB, domain.TaxonomyCategory)
	tagRepo := repository.NewTaxonomyRepository(d.DB, domain.TaxonomyTag)
	reactionRepo := repository.NewReactionRepository(d.DB)
	statsRepo := repository.NewStatsRepository(d.DB)

	authHandler := auth.NewHandler(auth.NewService(userRepo, d.JWT, d.Revoked), d.Cookie)
	quoteHandler := quote.NewHandler(quote.NewService(quoteRepo, categoryRepo, tagRepo))

	reactionService := reaction.NewService(reactionRepo, quoteRepo)
	likeHandler := reaction.NewLikeHandler(reactionService)
	favoriteHandler := reaction.NewFavoriteHandler(reactionService)

	categoryHandler := taxonomy.NewHandler(taxonomy.NewService(categoryRepo))
	tagHandler := taxonomy.NewHandler(taxonomy.NewService(tagRepo))

	adminHandler := admin.NewHandler(admin.NewService(quoteRepo, statsRepo))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(response.ExposeInternalErrors(d.Debug))
	r.Use(middleware.Recovery(d.Debug))
	r.Use(middleware.CORS(d.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), d.DB); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(d.JWT, d.Revoked, userRepo, d.Cookie.Name))
	{
		authHandler.RegisterProtectedRoutes(protected)
		quoteHandler.RegisterRoutes(protected)
		likeHandler.RegisterRoutes(protected, "/likes")
		favoriteHandler.RegisterRoutes(protected, "/favorites")
		categoryHandler.RegisterRoutes(protected, "/categories")
		tagHandler.RegisterRoutes(protected, "/tags")
		adminHandler.RegisterRoutes(protected)
	}

	return r
}
