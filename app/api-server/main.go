package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/infoaidtech/backend/config"
	"github.com/infoaidtech/backend/internal/api/handlers"
	"github.com/infoaidtech/backend/internal/api/middleware"
	"github.com/infoaidtech/backend/internal/api/routes"
	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/cache"
	"github.com/infoaidtech/backend/internal/logger"
	"github.com/infoaidtech/backend/internal/providers/llm"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := config.InitMongo(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("mongodb init failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(db); err != nil {
		log.WithError(err).Fatal("mongodb index setup failed")
	}
	log.Info("mongodb connected")

	// Redis backs the logout denylist. Without it tokens stay valid
	// until expiry.
	var denylist cache.Denylist
	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		defer func() { _ = rdb.Close() }()
		denylist = cache.NewRedisDenylist(rdb)
		log.Info("redis connected")
	} else {
		log.Warn("REDIS_ADDR not set, logout revocation disabled")
	}

	var provider llm.Provider
	switch cfg.ChatProvider {
	case "hf":
		if cfg.HFToken != "" {
			provider = llm.NewHuggingFace(cfg.HFToken, cfg.HFModels)
		} else {
			log.Warn("HF_TOKEN not set, chat runs in fallback mode")
		}
	default:
		if cfg.GeminiProject != "" {
			gem, err := llm.NewVertexGemini(context.Background(), cfg.GeminiProject, cfg.GeminiLocation, cfg.GeminiModel)
			if err != nil {
				log.WithError(err).Fatal("vertex ai init failed")
			}
			defer func() { _ = gem.Close() }()
			provider = gem
		} else {
			log.Warn("GEMINI_PROJECT not set, chat runs in fallback mode")
		}
	}

	var uploader storage.Uploader
	if cfg.CVBucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), cfg.CVBucket)
		if err != nil {
			log.WithError(err).Fatal("gcs init failed")
		}
		defer func() { _ = gcs.Close() }()
		uploader = gcs
	} else {
		log.Warn("CV_BUCKET not set, CV upload disabled")
	}

	users := mongorepo.NewUserRepo(db)
	blogs := mongorepo.NewBlogRepo(db)
	categories := mongorepo.NewCategoryRepo(db)
	servicesRepo := mongorepo.NewServiceRepo(db)
	jobs := mongorepo.NewJobRepo(db)
	applications := mongorepo.NewApplicationRepo(db)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := services.NewAuthService(users, issuer, denylist)
	blogSvc := services.NewBlogService(blogs)
	categorySvc := services.NewCategoryService(categories)
	serviceSvc := services.NewServiceService(servicesRepo)
	jobSvc := services.NewJobService(jobs)
	applicationSvc := services.NewApplicationService(applications, jobs)
	cvSvc := services.NewCVFileService(uploader)
	chatSvc := services.NewChatService(provider, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSDomain))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:         handlers.NewAuthHandler(authSvc),
		Blog:         handlers.NewBlogHandler(blogSvc),
		Category:     handlers.NewCategoryHandler(categorySvc),
		Service:      handlers.NewServiceHandler(serviceSvc),
		Job:          handlers.NewJobHandler(jobSvc),
		Application:  handlers.NewApplicationHandler(applicationSvc),
		CV:           handlers.NewCVHandler(cvSvc),
		Chat:         handlers.NewChatHandler(chatSvc),
		RequireAuth:  middleware.RequireAuth(issuer, users, denylist),
		RequireAdmin: middleware.RequireAdmin(),
		OptionalAuth: middleware.OptionalAuth(issuer, users, denylist),
	})

	log.WithField("port", cfg.Port).Info("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
