package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"voyager/config"
	"voyager/handlers"
	"voyager/services"
	"voyager/utils"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dir := services.NewDirectory()

	var opts []services.Option
	if config.AppConfig.MockDelays {
		opts = append(opts, services.WithSimulatedDelays(
			time.Duration(config.AppConfig.MockDelayMinMS)*time.Millisecond,
			time.Duration(config.AppConfig.MockDelayMaxMS)*time.Millisecond,
		))
		logger.Info("simulated GDS latency enabled",
			zap.Int("minMs", config.AppConfig.MockDelayMinMS),
			zap.Int("maxMs", config.AppConfig.MockDelayMaxMS))
	}
	gds := services.NewMockGDS(dir, logger, opts...)
	resolver := services.NewResolver(dir, logger)

	r := gin.Default()
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(config.AppConfig.FrontendURL, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(gds, resolver, logger)
	h.RegisterRoutes(r)

	port := config.AppConfig.AppPort
	logger.Info("voyager mock GDS starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
