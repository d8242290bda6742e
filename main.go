package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rolemap/api-go/config"
	"github.com/rolemap/api-go/email"
	"github.com/rolemap/api-go/middleware"
	"github.com/rolemap/api-go/routes"
	"github.com/rolemap/api-go/storage"
	"github.com/rolemap/api-go/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment")
	}

	utils.RegisterValidators()

	db := config.InitDB()

	store, localCfg := buildStorage()
	mailer := email.NewMailer(config.GetMailConfig())

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.LogRequest())

	// Local uploads are served statically; R2 serves from its public URL.
	if localCfg != nil {
		r.Static("/uploads", localCfg.Dir)
	}

	routes.SetupRoutes(r, db, store, mailer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Starting server on port ", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func buildStorage() (storage.Storage, *config.LocalStorageConfig) {
	r2Cfg := config.GetR2Config()
	if r2Cfg.Enabled() {
		log.Info("Using R2 object storage for uploads")
		return storage.NewR2Storage(r2Cfg), nil
	}

	localCfg := config.GetLocalStorageConfig()
	local, err := storage.NewLocalStorage(localCfg)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	log.Info("Using local uploads directory: ", localCfg.Dir)
	return local, localCfg
}
