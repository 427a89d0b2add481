package main

import (
	"log"

	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"
	"api/storage"

	_ "api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Olympiads API
// @version 1.0
// @description REST API for the olympiad, contest and conference registration site
// @BasePath /api/v1
func main() {
	config.Init()

	var store storage.Store = storage.NewMemoryStore()
	if config.PostgresHost != "" {
		database.InitDB()
		store = database.NewStore()
	} else {
		log.Println("POSTGRES_HOST not set, using in-memory storage")
	}
	database.InitRedis()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	v1.Register(r, store)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()

	log.Printf("Server listening on port %s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
