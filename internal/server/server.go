package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/octolab/storefront/internal/cart"
	cartdomain "github.com/octolab/storefront/internal/cart/domain"
	"github.com/octolab/storefront/internal/catalog"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/config"
	"github.com/octolab/storefront/internal/contact"
	contactdomain "github.com/octolab/storefront/internal/contact/domain"
	"github.com/octolab/storefront/internal/finder"
	finderdomain "github.com/octolab/storefront/internal/finder/domain"
	"github.com/octolab/storefront/internal/guide"
	guidedomain "github.com/octolab/storefront/internal/guide/domain"
	"github.com/octolab/storefront/internal/observability"
	obsmiddleware "github.com/octolab/storefront/internal/observability/logger"
	obsmetrics "github.com/octolab/storefront/internal/observability/metrics"
	obstracing "github.com/octolab/storefront/internal/observability/tracing"
	"github.com/octolab/storefront/internal/providers/email"
	"github.com/octolab/storefront/internal/ratelimit"
	"github.com/octolab/storefront/internal/session"
	sessiondomain "github.com/octolab/storefront/internal/session/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	catalog.Module,
	cart.Module,
	session.Module,
	guide.Module,
	finder.Module,
	contact.Module,
	email.Module,
	ratelimit.Module,
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
		s.RegisterUIRoutes()
		s.RegisterFallback()
	}),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine  *gin.Engine
	cfg     config.Config
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	limiter *ratelimit.ContactLimiter

	storefront *config.StorefrontConfigHolder

	catalogSvc catalogdomain.Service
	cartSvc    cartdomain.Service
	sessionSvc sessiondomain.Service
	guideSvc   guidedomain.Service
	finderSvc  finderdomain.Service
	contactSvc contactdomain.Service
}

type ServerParams struct {
	fx.In

	Engine  *gin.Engine
	Cfg     config.Config
	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Limiter *ratelimit.ContactLimiter `optional:"true"`

	Storefront *config.StorefrontConfigHolder

	CatalogSvc catalogdomain.Service
	CartSvc    cartdomain.Service
	SessionSvc sessiondomain.Service
	GuideSvc   guidedomain.Service
	FinderSvc  finderdomain.Service
	ContactSvc contactdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Engine,
		cfg:        p.Cfg,
		db:         p.DB,
		log:        p.Log.Named("http.server"),
		genID:      p.GenID,
		limiter:    p.Limiter,
		storefront: p.Storefront,
		catalogSvc: p.CatalogSvc,
		cartSvc:    p.CartSvc,
		sessionSvc: p.SessionSvc,
		guideSvc:   p.GuideSvc,
		finderSvc:  p.FinderSvc,
		contactSvc: p.ContactSvc,
	}
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/storefront", s.GetStorefrontConfig)

	api.GET("/catalog", s.ListCatalog)
	api.GET("/catalog/categories", s.GetCatalogCategories)
	api.GET("/catalog/:slug", s.GetProductBySlug)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:productId", s.UpdateCartItemQuantity)
	api.DELETE("/cart/items/:productId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/open", s.OpenCart)
	api.POST("/cart/close", s.CloseCart)

	api.GET("/session", s.GetSession)
	api.POST("/session/navigate", s.Navigate)
	api.POST("/session/select-product", s.SelectProduct)

	api.GET("/guides", s.ListGuides)
	api.GET("/guides/:slug", s.GetGuideBySlug)

	api.GET("/finder/questions", s.FinderQuestions)
	api.POST("/finder/recommend", s.FinderRecommend)

	api.POST("/contact", s.SubmitContact)
	api.GET("/contact/:id", s.GetContact)
	api.POST("/contact/:id/retry", s.RetryContact)
}
