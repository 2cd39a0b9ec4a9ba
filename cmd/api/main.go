package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Princessdada/Blogging-API/internal/config"
	"github.com/Princessdada/Blogging-API/internal/domain"
	"github.com/Princessdada/Blogging-API/internal/handler"
	"github.com/Princessdada/Blogging-API/internal/repository"
	"github.com/Princessdada/Blogging-API/internal/service"
	"github.com/Princessdada/Blogging-API/pkg/middleware"
	"github.com/Princessdada/Blogging-API/pkg/token"
)

func main() {
	conf := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(conf.PostgresDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Blog{}, &domain.Tag{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis backs the token denylist; without it, logout is disabled and
	// token verification is purely stateless.
	var redisClient *redis.Client
	if conf.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
		})
	}

	tokens := token.NewManager(conf.JWTSecretKey, time.Duration(conf.AccessTokenTTL)*time.Minute, redisClient)

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	tagRepo := repository.NewTagRepository(db)

	authService := service.NewAuthService(userRepo, tokens, logger)
	blogService := service.NewBlogService(blogRepo, tagRepo, userRepo, logger)

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)

	requireAuth := middleware.Auth(tokens)

	r := gin.Default()

	auth := r.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", requireAuth, authHandler.Logout)

	blogs := r.Group("/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/me", requireAuth, blogHandler.ListMine)
	blogs.GET("/:id", blogHandler.Get)
	blogs.POST("", requireAuth, blogHandler.Create)
	blogs.PUT("/:id", requireAuth, blogHandler.Update)
	blogs.PATCH("/:id", requireAuth, blogHandler.Update)
	blogs.DELETE("/:id", requireAuth, blogHandler.Delete)

	logger.Info("starting server", zap.String("port", conf.ServerPort))
	if err := r.Run(":" + conf.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
