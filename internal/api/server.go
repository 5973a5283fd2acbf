package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/allinwom/storefront/config"
	"github.com/allinwom/storefront/infra/queue"
	"github.com/allinwom/storefront/internal/api/rest/handlers"
	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/clients/instagram"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/cloudinary"
	"github.com/allinwom/storefront/pkg/log"
	"github.com/allinwom/storefront/pkg/utils"
)

// one fixed id so only one instance runs the migration at a time
const migrateLockID int64 = 20260301

func StartServer(cfg config.Config) {
	logger := log.New(cfg.AppEnv)
	dev := !cfg.IsProduction()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			ae := apperr.From(err)
			if ae.Kind == apperr.KindInternal {
				logger.Error().Err(err).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Msg("request failed")
			}
			return utils.Fail(c, err, dev)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection error")
	}
	logger.Info().Msg("database connected")

	// ---------- Migration (guarded by advisory lock) ----------
	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		logger.Fatal().Err(err).Msg("migration lock error")
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Brand{},
		&domain.Store{},
		&domain.Category{},
		&domain.Product{},
		&domain.ProductDetailImage{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migration error")
	}
	if cfg.SeedDemoData {
		if err := repository.SeedDemoCatalog(db); err != nil {
			logger.Warn().Err(err).Msg("demo seed failed")
		}
	}
	if err := db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error; err != nil {
		logger.Warn().Err(err).Msg("migration unlock error")
	}

	// ---------- Infra ----------
	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	defer producer.Close()

	if cfg.KafkaBroker != "" {
		consumerCtx, stopConsumer := context.WithCancel(context.Background())
		defer stopConsumer()
		consumer := queue.NewKafkaConsumer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID, queue.EventLogger{})
		go consumer.Listen(consumerCtx)
	}

	cld, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("cloudinary init error")
	}
	uploader := cloudinary.NewCloudinaryUploader(cld)
	igClient := instagram.New(cfg.InstagramAPIBase)

	authHelper := helper.SetupAuth(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, authHelper, producer)
	userSvc := services.NewUserService(db, userRepo, storeRepo, brandRepo, authHelper, cfg.FrontendPort)
	storeSvc := services.NewStoreService(storeRepo)
	onboardingSvc := services.NewOnboardingService(db, producer)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)

	// ---------- Middleware ----------
	authMW := middleware.NewAuthMiddleware(authHelper, userRepo)
	tenantMW := middleware.NewTenantMiddleware(storeRepo, dev)

	// ---------- Handlers ----------
	authHandler := handlers.NewAuthHandler(authSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	storeHandler := handlers.NewStoreHandler(storeSvc)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingSvc)
	productHandler := handlers.NewProductHandler(catalogSvc)
	categoryHandler := handlers.NewCategoryHandler(catalogSvc)
	instagramHandler := handlers.NewInstagramHandler(igClient, uploader)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// ---------- Routes ----------
	v1 := app.Group("/api/v1", tenantMW.ParseSubdomain())

	v1.Get("/health", func(c *fiber.Ctx) error {
		return utils.Success(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	auth := v1.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/check-email", authHandler.CheckEmail)
	auth.Get("/validate", authMW.RequireAuth(), authHandler.Validate)

	users := v1.Group("/users", authMW.RequireAuth())
	users.Get("/me", userHandler.Me)
	users.Get("/me/store-url", userHandler.StoreURL)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Put("/me/password", userHandler.ChangePassword)
	users.Delete("/me", userHandler.DeleteAccount)

	onboarding := v1.Group("/onboarding", authMW.RequireAuth())
	onboarding.Post("/complete", onboardingHandler.Complete)
	onboarding.Get("/status", onboardingHandler.Status)
	onboarding.Post("/brand", onboardingHandler.CreateBrand)
	onboarding.Post("/store", onboardingHandler.CreateStore)
	onboarding.Post("/publish", onboardingHandler.Publish)

	store := v1.Group("/store")
	store.Get("/my", authMW.RequireAuth(), storeHandler.MyStore)
	store.Get("/current", tenantMW.LoadStore(), storeHandler.CurrentStore)
	store.Get("/public", storeHandler.PublicStores)
	store.Get("/by-subdomain/:subdomain", storeHandler.BySubdomain)
	store.Get("/by-template/:templateType", storeHandler.ByTemplate)

	products := v1.Group("/products")
	products.Get("/current", tenantMW.LoadStore(), productHandler.CurrentStoreProducts)
	products.Get("/store/:storeId", productHandler.ByStore)
	products.Get("/:productId", productHandler.Detail)

	categories := v1.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:categoryId", categoryHandler.Detail)
	categories.Get("/:categoryId/products", categoryHandler.Products)

	ig := v1.Group("/instagram")
	ig.Post("/media", instagramHandler.PublishMedia)
	ig.Get("/media", instagramHandler.ListMedia)
	ig.Get("/comments", instagramHandler.ListComments)
	ig.Post("/comments/:commentId/reply", instagramHandler.ReplyToComment)

	uploads := v1.Group("/uploads", authMW.RequireAuth())
	uploads.Post("/image", uploadHandler.UploadImage)

	app.Use(func(c *fiber.Ctx) error {
		return apperr.New(apperr.KindNotFound, apperr.CodeRouteNotFound, "route not found")
	})

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
