package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"advocacia_elite/config"
	"advocacia_elite/db"
	"advocacia_elite/handlers"
	"advocacia_elite/middleware"
	"advocacia_elite/models"
	"advocacia_elite/services"
	"advocacia_elite/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const pageSweepInterval = time.Minute

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(models.ContentModels()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed content. A content file replaces whatever is stored.
	if cfg.ContentFile != "" {
		data, err := services.ReadContentFile(cfg.ContentFile)
		if err != nil {
			log.Fatalf("Failed to read content file: %v", err)
		}
		if err := services.ReplaceContent(db.DB, data); err != nil {
			log.Fatalf("Failed to load content file: %v", err)
		}
	} else if err := services.SeedContent(db.DB, services.DefaultContent()); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	catalog, err := services.LoadCatalog(db.DB)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Content cannot be displayed: %v", err)
	}

	services.InitializeMedia(cfg)
	middleware.InitAssetVersions("static")

	registry := services.NewPageRegistry(catalog, services.PageConfig{
		HeroInterval:        cfg.HeroInterval,
		TestimonialInterval: cfg.TestimonialInterval,
		TTL:                 cfg.PageTTL,
		MaxPages:            cfg.MaxPages,
	})
	site := handlers.NewSite(cfg, registry, services.Media)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = site.ErrorHandler(e)

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + middleware.CSRFHeader,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(middleware.CSRFToContext())
	e.Use(middleware.CSPNonce(middleware.DefaultCSP.WithImageOrigins(cfg.R2PublicURL)))
	e.Use(middleware.Visitor(middleware.VisitorConfig{
		Secure: cfg.IsProduction(),
	}))

	// Static files
	e.Static("/static", "static")
	e.GET("/media/*", site.Media)

	// Pages
	e.GET("/", site.Landing)
	e.GET("/blog/:slug", site.BlogPost)
	e.GET("/sitemap.xml", site.Sitemap)
	e.GET("/robots.txt", site.Robots)
	e.GET("/health", site.Health)

	// Live carousel stream
	e.GET("/events", site.Events, middleware.StreamRateLimiter.Middleware(), middleware.Page())

	// HTMX fragments acting on one page's state
	fragments := e.Group("/htmx")
	fragments.Use(middleware.FragmentRateLimiter.Middleware(), middleware.Page())
	{
		for _, section := range []services.Section{services.SectionHero, services.SectionTestimonials} {
			base := "/" + string(section)
			fragments.GET(base, site.CarouselCurrent(section))
			fragments.POST(base+"/next", site.CarouselNext(section))
			fragments.POST(base+"/prev", site.CarouselPrev(section))
			fragments.POST(base+"/select/:index", site.CarouselSelect(section))
		}

		fragments.GET("/blog", site.BlogFilter)
		fragments.POST("/menu/toggle", site.MenuToggle)
		fragments.POST("/menu/close", site.MenuClose)
		fragments.POST("/nav/:id/toggle", site.NavToggle)
		fragments.DELETE("/page", site.Unmount)
	}

	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Release page states of tabs that closed without unmounting
	go jobs.RunPageSweep(ctx, registry, pageSweepInterval)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Streams only end once their page state is released
	registry.Shutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
	middleware.FragmentRateLimiter.Stop()
	middleware.StreamRateLimiter.Stop()
}
