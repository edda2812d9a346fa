package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"zyppr/config"
	"zyppr/database"
	"zyppr/database/repository"
	"zyppr/handlers"
	"zyppr/middleware"
	"zyppr/routes"
	"zyppr/services/assistant"
	"zyppr/services/business"
	"zyppr/services/storage"
	"zyppr/services/user"
	"zyppr/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := repository.NewMongoUserRepo()
	businessRepo := repository.NewMongoBusinessRepo()

	// services.
	geminiClient, err := assistant.NewGeminiClient(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		config.AppConfig.GeminiImgModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}

	assistantService := &assistant.DefaultAssistantService{
		Model:       geminiClient,
		Images:      geminiClient,
		HorizonDays: config.AppConfig.SlotHorizonDays,
	}
	businessService := business.NewDefaultBusinessService(userRepo, businessRepo)
	userService := user.NewDefaultUserService(userRepo, businessRepo, utils.GetSessionCacheClient())
	conversationStore := assistant.NewRedisConversationStore(utils.GetCacheClient(), 30*time.Minute)

	handlerBundle := &handlers.HandlerBundle{
		Users:         userService,
		Businesses:    businessService,
		Assistant:     assistantService,
		Storage:       storageService,
		Conversations: conversationStore,
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
