package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"search-manager/core/config"
	"search-manager/core/database"
	"search-manager/core/engine"
	"search-manager/core/loader"
	"search-manager/core/logger"
	"search-manager/core/middleware/auth"
	"search-manager/core/middleware/rayid"
	"search-manager/core/reconcile"
	"search-manager/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var prepareOnStart bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the search manager server",
	Long:  `Starts the HTTP admin API and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, only the ACL endpoints need it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to portal database")
		}

		// 4. Initialize Search Engine Client
		client, err := engine.NewClient(cfg.Search)
		if err != nil {
			logg.Fatal("Failed to create search engine client", zap.Error(err))
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		reconciler := reconcile.NewReconciler(client, logg, reconcile.NewMetrics(reg), reconcile.ReconcileOptions{CreateMissing: true})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		searchFeature := search.NewFeature(client, reconciler, db, cfg.Search.IndexPrefix, cfg.Server.RolesHeader, logg)
		mgr.Register(searchFeature)

		if prepareOnStart {
			if _, err := searchFeature.Service().Prepare(context.Background(), ""); err != nil {
				logg.Fatal("Failed to prepare search indexes", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{
			ApiKey:      cfg.Server.ApiKey,
			PublicPaths: cfg.Server.PublicPathList(),
		}))

		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().BoolVar(&prepareOnStart, "prepare", false, "Prepare all search indexes before serving")
	RootCmd.AddCommand(startCmd)
}
